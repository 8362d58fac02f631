package hashmap

import (
	"iter"
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Map is a hash map with a configurable collision strategy and resize policy.
//
// During an incremental resize the map owns two stores: cur receives every
// insert, old only shrinks. A key is never present in both.
//
// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	cfg Config

	cur       store[K, V]
	old       store[K, V]
	oldCursor int

	resizer resizer[K, V]

	hashFunc hashFunc[K]
	equal    func(a, b V) bool
	isNil    func(K) bool

	logger *zap.Logger
}

type Option[K comparable, V any] func(m *Map[K, V])

// WithLogger sets the logger resize events are reported to.
func WithLogger[K comparable, V any](l *zap.Logger) Option[K, V] {
	return func(m *Map[K, V]) {
		m.logger = l
	}
}

// Tests use this to force collisions.
func withHashFunc[K comparable, V any](f hashFunc[K]) Option[K, V] {
	return func(m *Map[K, V]) {
		m.hashFunc = f
	}
}

// New returns an empty map built from cfg. Zero fields of cfg take their
// defaults, see DefaultConfig.
func New[K comparable, V any](cfg Config, opts ...Option[K, V]) (*Map[K, V], error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Map[K, V]{
		cfg:     cfg,
		resizer: newResizer[K, V](cfg.Resize),
		equal:   makeEqualFunc[V](),
		isNil:   makeNilCheck[K](),
	}
	m.cur = newStore[K, V](cfg.Collision, cfg.InitialCapacity)

	for _, opt := range opts {
		opt(m)
	}

	if m.hashFunc == nil {
		m.hashFunc = makeDefaultHashFunc[K]()
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	m.logger = m.logger.Named("hashmap")

	return m, nil
}

// makeNilCheck returns nil when K has no nil value.
func makeNilCheck[K comparable]() func(K) bool {
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Interface:
		return func(k K) bool { return any(k) == nil }
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return func(k K) bool { return reflect.ValueOf(any(k)).IsNil() }
	default:
		return nil
	}
}

func makeEqualFunc[V any]() func(a, b V) bool {
	t := reflect.TypeFor[V]()
	if t.Comparable() && t.Kind() != reflect.Interface {
		return func(a, b V) bool { return any(a) == any(b) }
	}

	return func(a, b V) bool { return reflect.DeepEqual(a, b) }
}

// hash validates the key and returns its hash. Nil keys panic.
func (m *Map[K, V]) hash(key K) uint64 {
	if m.isNil != nil && m.isNil(key) {
		panic(errors.Wrapf(ErrNilKey, "key of type %s", reflect.TypeFor[K]()))
	}

	return m.hashFunc(key)
}

// Config returns the config the map was built with, defaults applied.
func (m *Map[K, V]) Config() Config {
	return m.cfg
}

// Put maps key to value. It returns the previous value and true if key was
// already present.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	h := m.hash(key)

	m.resizer.beforePut(m)
	prev, ok := m.put(h, key, value)
	m.resizer.afterPut(m)

	return prev, ok
}

func (m *Map[K, V]) put(hash uint64, key K, value V) (V, bool) {
	// A key still waiting in the old store moves over now, otherwise the
	// migration would later bring back a stale copy.
	if m.old != nil {
		if prev, ok := m.old.remove(hash, key); ok {
			m.cur.put(hash, key, value)
			return prev, true
		}
	}

	return m.cur.put(hash, key, value)
}

// Get returns the value mapped to key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	h := m.hash(key)

	if v, ok := m.cur.get(h, key); ok {
		return v, true
	}
	if m.old != nil {
		return m.old.get(h, key)
	}

	var zero V
	return zero, false
}

// Delete removes key and returns the value it was mapped to.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	h := m.hash(key)

	if v, ok := m.cur.remove(h, key); ok {
		return v, true
	}

	if m.old != nil {
		v, ok := m.old.remove(h, key)
		m.releaseOld()

		return v, ok
	}

	var zero V
	return zero, false
}

func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// ContainsValue reports whether any key maps to value. It scans the whole map.
// Values are compared with == if V is comparable, reflect.DeepEqual otherwise.
func (m *Map[K, V]) ContainsValue(value V) bool {
	return m.ContainsValueFunc(func(v V) bool {
		return m.equal(v, value)
	})
}

// ContainsValueFunc reports whether fn returns true for any value.
func (m *Map[K, V]) ContainsValueFunc(fn func(V) bool) bool {
	found := false
	m.each(func(_ K, v V) bool {
		found = fn(v)
		return !found
	})

	return found
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	if m.old != nil {
		return m.cur.len() + m.old.len()
	}

	return m.cur.len()
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Clear drops every entry and shrinks the map back to its initial capacity.
func (m *Map[K, V]) Clear() {
	m.cur = newStore[K, V](m.cfg.Collision, m.cfg.InitialCapacity)
	m.old = nil
	m.oldCursor = 0
}

// Keys returns a snapshot of all keys, in no particular order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	m.each(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})

	return keys
}

// Values returns a snapshot of all values, in no particular order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.Len())
	m.each(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})

	return values
}

// All returns an iterator over a snapshot of the map taken when All is
// called. The map may be modified while iterating.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	type pair struct {
		k K
		v V
	}

	pairs := make([]pair, 0, m.Len())
	m.each(func(k K, v V) bool {
		pairs = append(pairs, pair{k, v})
		return true
	})

	return func(yield func(K, V) bool) {
		for _, p := range pairs {
			if !yield(p.k, p.v) {
				return
			}
		}
	}
}

// PutAll puts every pair of seq, in the order seq yields them.
func (m *Map[K, V]) PutAll(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Put(k, v)
	}
}

func (m *Map[K, V]) each(fn func(K, V) bool) {
	if !m.cur.each(fn) {
		return
	}
	if m.old != nil {
		m.old.each(fn)
	}
}

func (m *Map[K, V]) Stats() Stats {
	empty, longest := m.cur.stats()

	s := Stats{
		Size:         m.Len(),
		Capacity:     m.cur.capacity(),
		EmptyBuckets: empty,
		LongestChain: longest,
	}
	s.LoadFactor = float64(s.Size) / float64(s.Capacity)

	if m.old != nil {
		s.Migrating = true
		s.OldSize = m.old.len()
		s.OldCapacity = m.old.capacity()
	}

	return s
}
