/*
Package arena provides a fixed-capacity, index-addressed pool allocator
for uniformly sized values.

An Arena pre-allocates a contiguous slice of N slots once, up front, and
hands out slots by bumping a single counter. There is no per-slot free:
the whole arena is discarded at once, by dropping the slice. This makes
allocation O(1), keeps related nodes close together in memory, and
replaces self-referential pointers with 32-bit slot numbers so a tree of
values built on top of an Arena can be released in bulk instead of being
walked and freed node by node.

Slot 0 is reserved: it is never handed out by Allocate, so a zero Index
can always be used as a "no such slot" sentinel by the type built on top
of the arena (the zero value of Index is exactly that sentinel).

Use Cases:
  - Building pointer-free trees (tries, arenas of AST nodes, game-object
    pools) where millions of small, same-shaped nodes need cheap,
    cache-friendly allocation and bulk release.
  - Any structure that is built once per "run" and discarded as a whole
    between runs, rather than mutated node-by-node over its lifetime.

Example usage:

	a := arena.New[myNode](1024)
	idx, err := a.Allocate()
	if err != nil {
	    // capacity exceeded
	}
	node := a.Get(idx)
	node.Value = 42

Implementation Details:
  - Backed by a single pre-sized slice; no per-slot free, no concurrent
    allocation (one Arena is meant to be owned by a single goroutine at a
    time — callers that need per-worker pools should construct one Arena
    per worker, not share one across goroutines).
  - Get returns a pointer into the backing slice; because the slice is
    sized once at construction and never grown, those pointers stay
    valid for the Arena's whole lifetime.

Time Complexity:
  - Allocate: O(1)
  - Get: O(1)
  - Reset: O(capacity) (drops the backing slice and allocates a fresh,
    zeroed one of the same size)

Space Complexity:
  - O(capacity * sizeof(T))
*/
package arena

import "errors"

// Index addresses a slot inside an Arena. The zero value, Null, never
// refers to an allocated slot and is reserved as the "absent" sentinel.
type Index uint32

// Null is the reserved empty/root sentinel. Slot 0 of every Arena is
// never returned by Allocate, so comparing an Index against Null is a
// constant-time way to test "no such slot" without an extra bool.
const Null Index = 0

// ErrCapacityExceeded is returned by Allocate once every slot beyond the
// reserved Null slot has been handed out.
var ErrCapacityExceeded = errors.New("arena: capacity exceeded")

// Arena is a generic, fixed-capacity bump allocator for values of type T.
//
// Type parameter:
//
//	T - the value type stored in each slot.
type Arena[T any] struct {
	slots []T
	next  Index
}

// New reserves a backing slice holding capacity slots (plus the reserved
// Null slot) and returns an Arena ready to allocate from. capacity must
// be large enough for every node the caller expects to insert; Allocate
// returns ErrCapacityExceeded once it is exhausted.
//
// Time Complexity: O(capacity) to zero-initialize the backing slice.
func New[T any](capacity uint32) *Arena[T] {
	return &Arena[T]{
		slots: make([]T, capacity+1),
		next:  1,
	}
}

// Allocate reserves the next free slot and returns its Index. The slot's
// value is the zero value of T; callers that need to seed fields (such
// as a parent link) should do so through Get immediately after
// allocating.
//
// Returns ErrCapacityExceeded if every slot has already been handed out.
//
// Time Complexity: O(1)
func (a *Arena[T]) Allocate() (Index, error) {
	if int(a.next) >= len(a.slots) {
		return Null, ErrCapacityExceeded
	}
	idx := a.next
	a.next++
	return idx, nil
}

// Get returns a pointer to the value stored at idx, letting the caller
// read or mutate it in place. Passing Null or an index that was never
// returned by Allocate is a programmer error and will panic via the
// normal slice bounds check.
//
// Time Complexity: O(1)
func (a *Arena[T]) Get(idx Index) *T {
	return &a.slots[idx]
}

// Len returns the number of slots handed out so far, including the
// reserved Null slot (so Len() - 1 is the number of allocated values).
//
// Time Complexity: O(1)
func (a *Arena[T]) Len() Index {
	return a.next
}

// Cap returns the total number of slots available for allocation,
// excluding the reserved Null slot.
//
// Time Complexity: O(1)
func (a *Arena[T]) Cap() int {
	return len(a.slots) - 1
}

// Reset releases the backing slice and rewinds the allocator so the next
// Allocate call starts a fresh arena of the same capacity it was
// constructed with.
//
// Time Complexity: O(capacity) to zero-initialize the new backing slice.
func (a *Arena[T]) Reset() {
	capacity := len(a.slots)
	a.slots = make([]T, capacity)
	a.next = 1
}
