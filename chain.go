package hashmap

// chainStore resolves collisions with a singly-linked list per bucket.
// Chains are unbounded: with a fixed capacity they simply get longer.
type chainStore[K comparable, V any] struct {
	buckets []*entry[K, V]
	size    int
}

func newChainStore[K comparable, V any](capacity int) *chainStore[K, V] {
	return &chainStore[K, V]{buckets: make([]*entry[K, V], capacity)}
}

func (s *chainStore[K, V]) capacity() int { return len(s.buckets) }
func (s *chainStore[K, V]) len() int      { return s.size }

func (s *chainStore[K, V]) get(hash uint64, key K) (V, bool) {
	for e := s.buckets[bucketIndex(hash, len(s.buckets))]; e != nil; e = e.next {
		if e.matches(hash, key) {
			return e.value, true
		}
	}

	var zero V
	return zero, false
}

func (s *chainStore[K, V]) put(hash uint64, key K, value V) (V, bool) {
	idx := bucketIndex(hash, len(s.buckets))

	var tail *entry[K, V]
	for e := s.buckets[idx]; e != nil; tail, e = e, e.next {
		if e.matches(hash, key) {
			prev := e.value
			e.value = value

			return prev, true
		}
	}

	// No match, append to the end of the chain
	n := &entry[K, V]{hash: hash, key: key, value: value}
	if tail == nil {
		s.buckets[idx] = n
	} else {
		tail.next = n
	}
	s.size++

	var zero V
	return zero, false
}

func (s *chainStore[K, V]) remove(hash uint64, key K) (V, bool) {
	idx := bucketIndex(hash, len(s.buckets))

	var prev *entry[K, V]
	for e := s.buckets[idx]; e != nil; prev, e = e, e.next {
		if !e.matches(hash, key) {
			continue
		}

		if prev == nil {
			s.buckets[idx] = e.next
		} else {
			prev.next = e.next
		}
		e.next = nil
		s.size--

		return e.value, true
	}

	var zero V
	return zero, false
}

func (s *chainStore[K, V]) drain(cursor, limit int, fn func(hash uint64, key K, value V)) (int, int) {
	moved := 0
	for moved < limit && cursor < len(s.buckets) {
		e := s.buckets[cursor]
		if e == nil {
			cursor++
			continue
		}

		// Pop the head, the rest of the chain stays in place.
		s.buckets[cursor] = e.next
		e.next = nil
		s.size--
		moved++

		fn(e.hash, e.key, e.value)
	}

	return cursor, moved
}

func (s *chainStore[K, V]) each(fn func(key K, value V) bool) bool {
	for _, e := range s.buckets {
		for ; e != nil; e = e.next {
			if !fn(e.key, e.value) {
				return false
			}
		}
	}

	return true
}

func (s *chainStore[K, V]) stats() (empty, longest int) {
	for _, e := range s.buckets {
		if e == nil {
			empty++
			continue
		}

		n := 0
		for ; e != nil; e = e.next {
			n++
		}
		longest = max(longest, n)
	}

	return empty, longest
}
