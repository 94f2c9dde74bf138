package genarena

import (
	"iter"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// maxGeneration is the largest value a slot's generation counter can
// hold. A removal that drives a slot's counter here retires the slot:
// its index is never recycled again, so the counter cannot wrap and
// resurrect an old entity.
const maxGeneration = math.MaxUint32

// slot is one storage cell of the arena. The generation's parity
// encodes occupancy: even means occupied, odd means vacant. A fresh
// slot starts at generation 0, removal bumps it to odd, reuse bumps it
// back to even — so every generation ever issued for an index is
// strictly below the one issued next.
type slot[T any] struct {
	generation uint32
	value      T
}

func (s *slot[T]) occupied() bool {
	return s.generation&1 == 0
}

// Arena is a generational arena over values of type T. It owns a
// growing table of slots, issues an Entity per insertion and recycles
// vacated slots for later insertions, always reusing the lowest vacant
// index first.
//
// An Arena is not safe for concurrent use.
type Arena[T any] struct {
	slots  []slot[T]
	vacant *roaring.Bitmap
}

// New creates an empty Arena for values of type T.
func New[T any](opts ...Option) *Arena[T] {
	cfg := resolveSettings(opts)
	return &Arena[T]{
		slots:  make([]slot[T], 0, cfg.capacity),
		vacant: roaring.New(),
	}
}

// Insert stores value in the arena and returns the entity that refers
// to it. The lowest-index vacant slot is reused when one exists;
// otherwise the slot table grows by one. Insert cannot fail.
func (a *Arena[T]) Insert(value T) Entity {
	if !a.vacant.IsEmpty() {
		idx := a.vacant.Minimum()
		a.vacant.Remove(idx)
		s := &a.slots[idx]
		s.generation++
		s.value = value
		return Entity{Index: idx, Generation: s.generation}
	}
	a.slots = append(a.slots, slot[T]{value: value})
	return Entity{Index: uint32(len(a.slots) - 1)}
}

// InsertMany stores a batch of values and returns their entities in
// matching order.
func (a *Arena[T]) InsertMany(values []T) []Entity {
	if len(values) == 0 {
		return nil
	}
	if grow := len(values) - int(a.vacant.GetCardinality()); grow > 0 {
		a.slots = slices.Grow(a.slots, grow)
	}
	entities := make([]Entity, len(values))
	for i, v := range values {
		entities[i] = a.Insert(v)
	}
	return entities
}

// Get returns a pointer to the value e refers to, for reading or
// in-place mutation. It returns (nil, false) if e is stale: index out
// of bounds, slot since vacated, or generation mismatch. The pointer
// stays valid until the next call that can grow the slot table.
func (a *Arena[T]) Get(e Entity) (*T, bool) {
	if int(e.Index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[e.Index]
	if !s.occupied() || s.generation != e.Generation {
		return nil, false
	}
	return &s.value, true
}

// Contains reports whether e currently refers to a live value.
func (a *Arena[T]) Contains(e Entity) bool {
	_, ok := a.Get(e)
	return ok
}

// Remove vacates the slot e refers to and returns the value that was
// stored there, transferring ownership to the caller. It returns
// (zero, false) and leaves the arena unchanged if e is stale; removing
// the same entity twice is therefore harmless.
func (a *Arena[T]) Remove(e Entity) (T, bool) {
	var zero T
	if int(e.Index) >= len(a.slots) {
		return zero, false
	}
	s := &a.slots[e.Index]
	if !s.occupied() || s.generation != e.Generation {
		return zero, false
	}
	value := s.value
	s.value = zero // drop the arena's reference so the value can be collected
	s.generation++
	if s.generation != maxGeneration {
		a.vacant.Add(e.Index)
	}
	return value, true
}

// Clear removes every value from the arena. All slots are vacated with
// the same generation discipline as Remove, so every entity issued so
// far becomes stale while the slot table and its indices remain
// available for reuse.
func (a *Arena[T]) Clear() {
	var zero T
	for i := range a.slots {
		s := &a.slots[i]
		if !s.occupied() {
			continue
		}
		s.value = zero
		s.generation++
		if s.generation != maxGeneration {
			a.vacant.Add(uint32(i))
		}
	}
}

// All returns an iterator over every live (entity, value) pair in
// ascending index order. Each call yields a fresh traversal; breaking
// out early is allowed. The arena must not be mutated while a
// traversal is in progress.
func (a *Arena[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.occupied() {
				continue
			}
			if !yield(Entity{Index: uint32(i), Generation: s.generation}, &s.value) {
				return
			}
		}
	}
}

// Len reports the number of live values. It is derived by traversal,
// the same walk All performs, and is not cached.
func (a *Arena[T]) Len() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].occupied() {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the arena holds no live values.
func (a *Arena[T]) IsEmpty() bool {
	return a.Len() == 0
}
