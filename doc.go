// Package genarena provides a generational arena: stable, reusable
// references into a growable collection of values, without the dangling
// reference and slot-reuse hazards of raw slice indices.
//
// An [Arena] owns values and issues an [Entity] for each insertion. An
// entity is an (index, generation) pair; it stays valid exactly until
// the value it refers to is removed, even if the underlying slot is
// later recycled for a different value. Stale entities never resolve —
// lookups against them simply report absence.
//
//	arena := genarena.New[string]()
//	e := arena.Insert("hello")
//	if v, ok := arena.Get(e); ok {
//		fmt.Println(*v)
//	}
//	arena.Remove(e)
//	_, ok := arena.Get(e) // ok == false, forever
//
// A [SecondaryMap] attaches auxiliary values to entities minted by an
// arena without owning their lifecycle. It detects staleness purely by
// generation comparison at lookup time, so any number of maps can hang
// extra data off the same set of entities:
//
//	owners := genarena.NewSecondaryMap[string]()
//	owners.Insert(e, "alice")
//	owner, ok := owners.Get(e)
//
// Neither structure is safe for concurrent use; callers sharing one
// across goroutines must supply their own locking.
package genarena
