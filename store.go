package hashmap

// store is one generation of bucket storage together with the collision
// resolution algorithm that operates on it.
type store[K comparable, V any] interface {
	// Number of buckets (or slots for open addressing).
	capacity() int
	// Number of live entries.
	len() int

	get(hash uint64, key K) (V, bool)
	// put inserts or overwrites, returning the previous value if the key
	// was already present.
	put(hash uint64, key K, value V) (V, bool)
	remove(hash uint64, key K) (V, bool)

	// drain removes up to limit entries, starting at bucket cursor, and
	// hands each one to fn. It returns the cursor to resume from and the
	// number of entries removed. All buckets before the returned cursor are
	// empty.
	drain(cursor, limit int, fn func(hash uint64, key K, value V)) (int, int)
	// each calls fn for every live entry until fn returns false.
	each(fn func(key K, value V) bool) bool

	// stats reports empty buckets and the longest chain or probe sequence.
	stats() (empty, longest int)
}

func newStore[K comparable, V any](c Collision, capacity int) store[K, V] {
	switch c {
	case DynamicArray:
		return newArrayStore[K, V](capacity)
	case LinearProbing:
		return newProbeStore[K, V](capacity)
	default:
		return newChainStore[K, V](capacity)
	}
}
