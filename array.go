package hashmap

// Length of a dynamic-array bucket when it receives its first entry.
const initialChainSize = 4

// arrayStore resolves collisions with a small slice per bucket.
//
// A bucket is sparse: remove leaves a nil hole behind instead of compacting,
// so every scan has to look at the whole bucket. When a bucket has no hole
// left, its length doubles. Bucket growth is independent of the table.
type arrayStore[K comparable, V any] struct {
	buckets [][]*entry[K, V]
	size    int
}

func newArrayStore[K comparable, V any](capacity int) *arrayStore[K, V] {
	return &arrayStore[K, V]{buckets: make([][]*entry[K, V], capacity)}
}

func (s *arrayStore[K, V]) capacity() int { return len(s.buckets) }
func (s *arrayStore[K, V]) len() int      { return s.size }

func (s *arrayStore[K, V]) get(hash uint64, key K) (V, bool) {
	for _, e := range s.buckets[bucketIndex(hash, len(s.buckets))] {
		if e != nil && e.matches(hash, key) {
			return e.value, true
		}
	}

	var zero V
	return zero, false
}

func (s *arrayStore[K, V]) put(hash uint64, key K, value V) (V, bool) {
	var (
		idx    = bucketIndex(hash, len(s.buckets))
		bucket = s.buckets[idx]
		hole   = -1
	)

	// The key may sit behind a hole, so a free slot alone does not end the scan.
	for i, e := range bucket {
		if e == nil {
			if hole < 0 {
				hole = i
			}
			continue
		}

		if e.matches(hash, key) {
			prev := e.value
			e.value = value

			return prev, true
		}
	}

	if hole < 0 {
		hole = len(bucket)
		bucket = growBucket(bucket)
		s.buckets[idx] = bucket
	}

	bucket[hole] = &entry[K, V]{hash: hash, key: key, value: value}
	s.size++

	var zero V
	return zero, false
}

func growBucket[K comparable, V any](bucket []*entry[K, V]) []*entry[K, V] {
	if len(bucket) == 0 {
		return make([]*entry[K, V], initialChainSize)
	}

	grown := make([]*entry[K, V], len(bucket)*2)
	copy(grown, bucket)

	return grown
}

func (s *arrayStore[K, V]) remove(hash uint64, key K) (V, bool) {
	bucket := s.buckets[bucketIndex(hash, len(s.buckets))]
	for i, e := range bucket {
		if e != nil && e.matches(hash, key) {
			bucket[i] = nil
			s.size--

			return e.value, true
		}
	}

	var zero V
	return zero, false
}

func (s *arrayStore[K, V]) drain(cursor, limit int, fn func(hash uint64, key K, value V)) (int, int) {
	moved := 0
	for moved < limit && cursor < len(s.buckets) {
		bucket := s.buckets[cursor]

		i := 0
		for i < len(bucket) && bucket[i] == nil {
			i++
		}

		if i == len(bucket) {
			// Bucket is drained, release its slice.
			s.buckets[cursor] = nil
			cursor++
			continue
		}

		e := bucket[i]
		bucket[i] = nil
		s.size--
		moved++

		fn(e.hash, e.key, e.value)
	}

	return cursor, moved
}

func (s *arrayStore[K, V]) each(fn func(key K, value V) bool) bool {
	for _, bucket := range s.buckets {
		for _, e := range bucket {
			if e != nil && !fn(e.key, e.value) {
				return false
			}
		}
	}

	return true
}

func (s *arrayStore[K, V]) stats() (empty, longest int) {
	for _, bucket := range s.buckets {
		n := 0
		for _, e := range bucket {
			if e != nil {
				n++
			}
		}

		if n == 0 {
			empty++
		}
		longest = max(longest, n)
	}

	return empty, longest
}
