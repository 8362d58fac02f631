package hashmap

// probeStore is an open-addressed table with linear probing.
//
// Deletion does not leave tombstones. Instead, the entries following the
// freed slot are shifted back (backward-shift deletion), which keeps the
// probe invariant: every slot between the home of a key and the slot that
// actually holds it is occupied.
type probeStore[K comparable, V any] struct {
	slots []*entry[K, V]
	size  int
}

func newProbeStore[K comparable, V any](capacity int) *probeStore[K, V] {
	return &probeStore[K, V]{slots: make([]*entry[K, V], capacity)}
}

func (s *probeStore[K, V]) capacity() int { return len(s.slots) }
func (s *probeStore[K, V]) len() int      { return s.size }

// find returns the slot holding key, or -1 together with the first empty
// slot on its probe path (-1 as well when the table is full).
func (s *probeStore[K, V]) find(hash uint64, key K) (int, int) {
	n := len(s.slots)

	for p, i := 0, bucketIndex(hash, n); p < n; p++ {
		e := s.slots[i]
		if e == nil {
			return -1, i
		}
		if e.matches(hash, key) {
			return i, -1
		}

		i++
		if i == n {
			i = 0
		}
	}

	return -1, -1
}

func (s *probeStore[K, V]) get(hash uint64, key K) (V, bool) {
	if i, _ := s.find(hash, key); i >= 0 {
		return s.slots[i].value, true
	}

	var zero V
	return zero, false
}

func (s *probeStore[K, V]) put(hash uint64, key K, value V) (V, bool) {
	i, free := s.find(hash, key)
	if i >= 0 {
		e := s.slots[i]
		prev := e.value
		e.value = value

		return prev, true
	}

	if free < 0 {
		panic(ErrTableFull)
	}

	s.slots[free] = &entry[K, V]{hash: hash, key: key, value: value}
	s.size++

	var zero V
	return zero, false
}

func (s *probeStore[K, V]) remove(hash uint64, key K) (V, bool) {
	i, _ := s.find(hash, key)
	if i < 0 {
		var zero V
		return zero, false
	}

	e := s.slots[i]
	s.removeAt(i)

	return e.value, true
}

// removeAt clears slot i and re-packs the cluster that follows it.
func (s *probeStore[K, V]) removeAt(i int) {
	var (
		n   = len(s.slots)
		gap = i
	)

	s.slots[gap] = nil
	s.size--

	// An empty slot ends every probe sequence passing through it, so nothing
	// past the first empty slot can depend on the gap.
	for j := (gap + 1) % n; s.slots[j] != nil; j = (j + 1) % n {
		home := bucketIndex(s.slots[j].hash, n)

		// The entry is reachable from its home without crossing the gap.
		if cyclicBetween(gap, home, j) {
			continue
		}

		s.slots[gap] = s.slots[j]
		s.slots[j] = nil
		gap = j
	}
}

// cyclicBetween reports whether x lies in the circular interval (lo, hi].
//
//go:inline
func cyclicBetween(lo, x, hi int) bool {
	if lo <= hi {
		return lo < x && x <= hi
	}

	return lo < x || x <= hi
}

func (s *probeStore[K, V]) drain(cursor, limit int, fn func(hash uint64, key K, value V)) (int, int) {
	moved := 0
	for moved < limit && cursor < len(s.slots) {
		e := s.slots[cursor]
		if e == nil {
			cursor++
			continue
		}

		// Slots before the cursor are empty, so the shift never moves an
		// entry behind it and the rest of the store stays probeable.
		s.removeAt(cursor)
		moved++

		fn(e.hash, e.key, e.value)
	}

	return cursor, moved
}

func (s *probeStore[K, V]) each(fn func(key K, value V) bool) bool {
	for _, e := range s.slots {
		if e != nil && !fn(e.key, e.value) {
			return false
		}
	}

	return true
}

// stats reports the longest probe sequence, that is the largest distance
// between the home of a key and its slot, plus one.
func (s *probeStore[K, V]) stats() (empty, longest int) {
	n := len(s.slots)

	for i, e := range s.slots {
		if e == nil {
			empty++
			continue
		}

		dist := i - bucketIndex(e.hash, n)
		if dist < 0 {
			dist += n
		}
		longest = max(longest, dist+1)
	}

	return empty, longest
}
