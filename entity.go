package genarena

// Entity is a handle to a value stored in an Arena. It combines a slot
// index with a generation counter so that recycled slots are not
// confused with the values they used to hold.
//
// Entities are plain values: copyable, comparable with ==, and usable
// as map keys. An entity is only meaningful relative to the arena (or
// the secondary maps keyed from it) that produced it; two arenas will
// happily issue equal entities for unrelated values.
type Entity struct {
	// Index is the slot position inside the arena.
	Index uint32
	// Generation is the slot's generation at the time the entity was
	// issued. The slot's counter moves past it when the value is
	// removed, which is what invalidates stale handles.
	Generation uint32
}
