package hashmap

// entry is a single key/value mapping owned by exactly one store.
// The hash is cached at insert time, so resizing and backward shifting
// never call the hash function again.
type entry[K comparable, V any] struct {
	hash  uint64
	key   K
	value V

	// Linked-list chaining only.
	next *entry[K, V]
}

//go:inline
func (e *entry[K, V]) matches(hash uint64, key K) bool {
	return e.hash == hash && e.key == key
}
