package hashmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type strategy struct {
	name      string
	collision Collision
	resize    Resize
}

// Every supported combination. Fixed linear probing is rejected by Validate.
var strategies = []strategy{
	{"linked-list/fixed", LinkedList, Fixed},
	{"linked-list/full-copy", LinkedList, FullCopy},
	{"linked-list/incremental", LinkedList, Incremental},
	{"dynamic-array/fixed", DynamicArray, Fixed},
	{"dynamic-array/full-copy", DynamicArray, FullCopy},
	{"dynamic-array/incremental", DynamicArray, Incremental},
	{"linear-probing/full-copy", LinearProbing, FullCopy},
	{"linear-probing/incremental", LinearProbing, Incremental},
}

func (s strategy) config(capacity int) Config {
	return Config{
		InitialCapacity: capacity,
		Collision:       s.collision,
		Resize:          s.resize,
	}
}

func newTestMap[K comparable, V any](t testing.TB, cfg Config, opts ...Option[K, V]) *Map[K, V] {
	t.Helper()

	m, err := New[K, V](cfg, opts...)
	require.NoError(t, err)

	return m
}

// checkInvariants verifies that no key is stored twice, that the sizes add
// up, that the old store only exists while it has entries and that every
// probe store is free of gaps.
func checkInvariants[K comparable, V any](t *testing.T, m *Map[K, V]) {
	t.Helper()

	seen := make(map[K]struct{}, m.Len())
	m.each(func(k K, _ V) bool {
		_, dup := seen[k]
		require.Falsef(t, dup, "duplicate key %v", k)
		seen[k] = struct{}{}

		return true
	})
	require.Len(t, seen, m.Len())

	checkStore(t, m.cur)
	if m.old != nil {
		require.Positive(t, m.old.len(), "old store kept after migration")
		checkStore(t, m.old)
	} else {
		require.Zero(t, m.oldCursor)
	}
}

func checkStore[K comparable, V any](t *testing.T, s store[K, V]) {
	t.Helper()

	count := 0
	s.each(func(K, V) bool {
		count++
		return true
	})
	require.Equal(t, s.len(), count)

	if p, ok := s.(*probeStore[K, V]); ok {
		checkProbeChains(t, p)
	}
}

// checkProbeChains fails if any slot between the home of a key and the slot
// holding it is empty.
func checkProbeChains[K comparable, V any](t *testing.T, s *probeStore[K, V]) {
	t.Helper()

	n := len(s.slots)
	for i, e := range s.slots {
		if e == nil {
			continue
		}

		for j := bucketIndex(e.hash, n); j != i; j = (j + 1) % n {
			require.NotNilf(t, s.slots[j], "gap at %d on the probe path of %v (slot %d)", j, e.key, i)
		}
	}
}

func requirePanicsWithErrorIs(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()

	fn()
}
