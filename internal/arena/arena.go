// Package arena provides a fixed-capacity slot allocator that hands out
// generational handles instead of pointers.
//
// Storage is reserved once at construction and never grows, so a pointer
// returned by Get stays valid for as long as its slot is live. Inserting into
// a full arena panics rather than reallocating.
package arena

import (
	"errors"
	"fmt"
	"iter"
	"unsafe"
)

var (
	// ErrOutOfRange is returned by Lookup when the handle's slot was never allocated.
	ErrOutOfRange = errors.New("arena: handle out of range")
	// ErrFreed is returned by Lookup when the handle's slot has been removed or flushed.
	ErrFreed = errors.New("arena: value was freed")
	// ErrStale is returned by Lookup when the slot was reused by a newer insert.
	ErrStale = errors.New("arena: generation mismatch")
)

// Handle references a value stored in an Arena[T]. Two handles are equal
// when both the slot index and the generation match.
//
// The zero Handle is never returned by Insert and can be used as "no handle".
type Handle[T any] struct {
	index      int
	generation uint64
}

// Index returns the slot index the handle points to.
func (h Handle[T]) Index() int {
	return h.index
}

// Generation returns the insert generation the handle was minted with.
func (h Handle[T]) Generation() uint64 {
	return h.generation
}

// IsZero reports whether h is the zero handle.
func (h Handle[T]) IsZero() bool {
	return h.generation == 0
}

// String renders the handle for debug output.
func (h Handle[T]) String() string {
	if h.IsZero() {
		return "Handle(none)"
	}
	return fmt.Sprintf("Handle(%d:%d)", h.index, h.generation)
}

// slot is the per-index bookkeeping kept alongside data.
type slot struct {
	generation uint64
	dirty      bool
}

// Arena is a fixed-capacity pool of T values addressed by Handle[T].
//
// Arena is not safe for concurrent use; it is meant to be driven by a single
// frame loop.
type Arena[T any] struct {
	data    []T
	slots   []slot
	free    []int
	version uint64
	live    int
}

// New reserves storage for exactly capacity values.
func New[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("arena: negative capacity %d", capacity))
	}
	return &Arena[T]{
		data:  make([]T, 0, capacity),
		slots: make([]slot, 0, capacity),
	}
}

// NewSized reserves storage for as many values as fit in sizeInMB megabytes
// (1 MB = 1,000,000 bytes). Zero-sized types are counted as one byte each.
func NewSized[T any](sizeInMB int) *Arena[T] {
	var zero T
	elem := int(unsafe.Sizeof(zero))
	if elem == 0 {
		elem = 1
	}
	return New[T]((sizeInMB * 1_000_000) / elem)
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.live
}

// Cap returns the fixed number of slots.
func (a *Arena[T]) Cap() int {
	return cap(a.data)
}

// Insert stores value and returns a handle to it. Freed slots are reused
// before fresh storage is consumed. Insert panics when every slot is in use.
func (a *Arena[T]) Insert(value T) Handle[T] {
	if len(a.free) == 0 && len(a.data) >= cap(a.data) {
		panic(fmt.Sprintf("arena: capacity of %d exceeded", cap(a.data)))
	}

	a.version++
	a.live++

	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]
		a.data[index] = value
		a.slots[index] = slot{generation: a.version}
		return Handle[T]{index: index, generation: a.version}
	}

	a.data = append(a.data, value)
	a.slots = append(a.slots, slot{generation: a.version})
	return Handle[T]{index: len(a.data) - 1, generation: a.version}
}

// Lookup resolves h without panicking. It returns ErrOutOfRange, ErrFreed or
// ErrStale when h does not refer to a live value.
func (a *Arena[T]) Lookup(h Handle[T]) (*T, error) {
	if h.index < 0 || h.index >= len(a.slots) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfRange, h)
	}
	s := a.slots[h.index]
	if s.generation != h.generation {
		return nil, fmt.Errorf("%w: %s (slot is at generation %d)", ErrStale, h, s.generation)
	}
	if s.dirty {
		return nil, fmt.Errorf("%w: %s", ErrFreed, h)
	}
	return &a.data[h.index], nil
}

// Get returns a pointer to the value h refers to. The pointer may be used to
// mutate the value in place. Get panics if h is freed, stale or was never
// issued by this arena.
func (a *Arena[T]) Get(h Handle[T]) *T {
	v, err := a.Lookup(h)
	if err != nil {
		panic(err)
	}
	return v
}

// Contains reports whether h refers to a live value.
func (a *Arena[T]) Contains(h Handle[T]) bool {
	_, err := a.Lookup(h)
	return err == nil
}

// Remove frees the slot h refers to. Other handles stay valid. Remove panics
// if h is not live.
func (a *Arena[T]) Remove(h Handle[T]) {
	a.Get(h)
	a.slots[h.index].dirty = true
	a.free = append(a.free, h.index)
	a.live--
}

// Flush frees every live slot at once.
func (a *Arena[T]) Flush() {
	for i := range a.slots {
		if a.slots[i].dirty {
			continue
		}
		a.slots[i].dirty = true
		a.free = append(a.free, i)
	}
	a.live = 0
}

// All yields every live value with its handle, in slot order.
func (a *Arena[T]) All() iter.Seq2[Handle[T], *T] {
	return func(yield func(Handle[T], *T) bool) {
		for i := range a.slots {
			s := a.slots[i]
			if s.dirty {
				continue
			}
			if !yield(Handle[T]{index: i, generation: s.generation}, &a.data[i]) {
				return
			}
		}
	}
}

// Handles returns the handles of all live values, in slot order.
func (a *Arena[T]) Handles() []Handle[T] {
	handles := make([]Handle[T], 0, a.live)
	for h := range a.All() {
		handles = append(handles, h)
	}
	return handles
}
