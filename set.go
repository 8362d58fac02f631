package hashmap

// Set is a set of keys backed by a Map with empty values. It shares the
// collision and resize strategies of Map.
type Set[K comparable] struct {
	m *Map[K, struct{}]
}

func NewSet[K comparable](cfg Config, opts ...Option[K, struct{}]) (*Set[K], error) {
	m, err := New[K, struct{}](cfg, opts...)
	if err != nil {
		return nil, err
	}

	return &Set[K]{m: m}, nil
}

// Add puts a key in the set. Returns whether the key is new.
func (s *Set[K]) Add(key K) bool {
	_, existed := s.m.Put(key, struct{}{})
	return !existed
}

// Checks whether a key is in the set.
func (s *Set[K]) Has(key K) bool {
	return s.m.ContainsKey(key)
}

// Deletes a key from the set. Returns whether the key was present.
func (s *Set[K]) Delete(key K) bool {
	_, ok := s.m.Delete(key)
	return ok
}

func (s *Set[K]) Len() int     { return s.m.Len() }
func (s *Set[K]) Clear()       { s.m.Clear() }
func (s *Set[K]) Keys() []K    { return s.m.Keys() }
func (s *Set[K]) Stats() Stats { return s.m.Stats() }
