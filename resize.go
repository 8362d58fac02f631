package hashmap

import "go.uber.org/zap"

// resizer decides when and how the current store is replaced.
// beforePut runs ahead of every insert, afterPut right after it.
type resizer[K comparable, V any] interface {
	beforePut(m *Map[K, V])
	afterPut(m *Map[K, V])
}

func newResizer[K comparable, V any](r Resize) resizer[K, V] {
	switch r {
	case Fixed:
		return fixedResizer[K, V]{}
	case Incremental:
		return incrementalResizer[K, V]{}
	default:
		return fullCopyResizer[K, V]{}
	}
}

// overloaded reports whether one more entry would reach the max load factor.
func (m *Map[K, V]) overloaded() bool {
	return float64(m.Len()+1)/float64(m.cur.capacity()) >= m.cfg.MaxLoadFactor
}

type fixedResizer[K comparable, V any] struct{}

func (fixedResizer[K, V]) beforePut(*Map[K, V]) {}
func (fixedResizer[K, V]) afterPut(*Map[K, V])  {}

// fullCopyResizer rehashes everything into a store of double capacity
// on the put that crosses the threshold.
type fullCopyResizer[K comparable, V any] struct{}

func (fullCopyResizer[K, V]) beforePut(m *Map[K, V]) {
	if !m.overloaded() {
		return
	}

	from := m.cur
	to := newStore[K, V](m.cfg.Collision, from.capacity()*2)

	// Cursor 0 with a limit of len empties the whole store.
	from.drain(0, from.len(), func(hash uint64, key K, value V) {
		to.put(hash, key, value)
	})
	m.cur = to

	m.logger.Debug("resized",
		zap.Int("from", from.capacity()),
		zap.Int("to", to.capacity()),
		zap.Int("entries", to.len()),
	)
}

func (fullCopyResizer[K, V]) afterPut(*Map[K, V]) {}

// incrementalResizer keeps the previous store alive as m.old and moves its
// entries over a batch at a time.
type incrementalResizer[K comparable, V any] struct{}

func (incrementalResizer[K, V]) beforePut(m *Map[K, V]) {
	// Only one migration at a time.
	if m.old != nil || !m.overloaded() {
		return
	}

	from := m.cur
	m.cur = newStore[K, V](m.cfg.Collision, from.capacity()*2)

	if from.len() == 0 {
		return
	}

	m.old = from
	m.oldCursor = 0

	m.logger.Debug("migration started",
		zap.Int("from", from.capacity()),
		zap.Int("to", m.cur.capacity()),
		zap.Int("entries", from.len()),
	)
}

func (incrementalResizer[K, V]) afterPut(m *Map[K, V]) {
	if m.old == nil {
		return
	}

	m.oldCursor, _ = m.old.drain(m.oldCursor, m.cfg.MigrationBatch, func(hash uint64, key K, value V) {
		m.cur.put(hash, key, value)
	})

	m.releaseOld()
}

// releaseOld drops the old store once it holds nothing.
func (m *Map[K, V]) releaseOld() {
	if m.old == nil || m.old.len() > 0 {
		return
	}

	m.logger.Debug("migration finished", zap.Int("capacity", m.cur.capacity()))

	m.old = nil
	m.oldCursor = 0
}
