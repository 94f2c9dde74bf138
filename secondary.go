package genarena

import "iter"

// assoc is one row of a SecondaryMap: a value tagged with the entity
// generation it was stored under. Unlike an arena slot, any generation
// can be written here, so occupancy needs its own flag.
type assoc[V any] struct {
	generation uint32
	value      V
	occupied   bool
}

// SecondaryMap attaches auxiliary values to entities minted by an
// Arena. The map does not own or track entity lifecycle: associations
// survive the removal of their entity from the source arena and are
// only ever changed by an explicit Insert or Remove on the map itself.
// Staleness is detected purely by comparing generations at lookup time,
// so an entity whose index was recycled by the arena reads back absent
// here until a value is stored under the new generation.
//
// A SecondaryMap is not safe for concurrent use.
type SecondaryMap[V any] struct {
	rows []assoc[V]
}

// NewSecondaryMap creates an empty map from entities to values of
// type V.
func NewSecondaryMap[V any](opts ...Option) *SecondaryMap[V] {
	cfg := resolveSettings(opts)
	return &SecondaryMap[V]{
		rows: make([]assoc[V], 0, cfg.capacity),
	}
}

// Insert associates value with e, overwriting whatever association the
// index held before, regardless of the generation it was stored under.
// The backing store grows as needed to address e.Index, filling any
// intermediate rows as empty.
func (m *SecondaryMap[V]) Insert(e Entity, value V) {
	if n := int(e.Index) + 1; n > len(m.rows) {
		m.rows = extendSlice(m.rows, n-len(m.rows))
	}
	m.rows[e.Index] = assoc[V]{generation: e.Generation, value: value, occupied: true}
}

// Get returns a pointer to the value associated with e, or (nil, false)
// if the index holds no association or holds one stored under a
// different generation. The pointer stays valid until the next call
// that can grow the backing store.
func (m *SecondaryMap[V]) Get(e Entity) (*V, bool) {
	if int(e.Index) >= len(m.rows) {
		return nil, false
	}
	r := &m.rows[e.Index]
	if !r.occupied || r.generation != e.Generation {
		return nil, false
	}
	return &r.value, true
}

// Contains reports whether e currently has an association in the map.
func (m *SecondaryMap[V]) Contains(e Entity) bool {
	_, ok := m.Get(e)
	return ok
}

// Remove clears the association for e and returns the removed value.
// It returns (zero, false) and leaves the map unchanged if e has no
// current association.
func (m *SecondaryMap[V]) Remove(e Entity) (V, bool) {
	var zero V
	if int(e.Index) >= len(m.rows) {
		return zero, false
	}
	r := &m.rows[e.Index]
	if !r.occupied || r.generation != e.Generation {
		return zero, false
	}
	value := r.value
	m.rows[e.Index] = assoc[V]{}
	return value, true
}

// Clear drops every association. The backing store keeps its size.
func (m *SecondaryMap[V]) Clear() {
	for i := range m.rows {
		m.rows[i] = assoc[V]{}
	}
}

// All returns an iterator over every (entity, value) association in
// ascending index order. Entity generations are reconstructed from the
// rows themselves, not cross-checked against any arena. Each call
// yields a fresh traversal; the map must not be mutated while a
// traversal is in progress.
func (m *SecondaryMap[V]) All() iter.Seq2[Entity, *V] {
	return func(yield func(Entity, *V) bool) {
		for i := range m.rows {
			r := &m.rows[i]
			if !r.occupied {
				continue
			}
			if !yield(Entity{Index: uint32(i), Generation: r.generation}, &r.value) {
				return
			}
		}
	}
}

// Len reports the number of associations, derived by the same walk All
// performs.
func (m *SecondaryMap[V]) Len() int {
	n := 0
	for i := range m.rows {
		if m.rows[i].occupied {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the map holds no associations.
func (m *SecondaryMap[V]) IsEmpty() bool {
	return m.Len() == 0
}
