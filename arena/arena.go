// Package arena issues stable integer handles for fixed-size records.
//
// An Arena owns a contiguous, growable slice of records. Handles are indices
// into that slice; handle 0 is reserved and never issued, so the zero value
// of Handle always means "no resource". Handles are never reused.
//
// Growth copies the backing slice, so a pointer obtained from Update must not
// outlive the callback. Callers resolve a handle again on every use.
package arena

import (
	"errors"
	"fmt"
)

// Handle identifies a record inside one Arena. 0 means none.
type Handle uint32

var (
	// ErrInvalidHandle is returned when a handle was never issued by the arena.
	ErrInvalidHandle = errors.New("arena: invalid handle")
	// ErrFull is returned by Bump on a fixed arena whose slots are all issued.
	ErrFull = errors.New("arena: capacity exhausted")
	// ErrDestroyed is returned by Bump after Destroy.
	ErrDestroyed = errors.New("arena: destroyed")
)

const minCapacity = 2

// Arena is a bump allocator of T records addressed by Handle.
type Arena[T any] struct {
	records  []T
	position uint32
	fixed    bool
}

// New creates a growable arena. Capacities below 2 are raised to 2.
func New[T any](initialCapacity int) *Arena[T] {
	if initialCapacity < minCapacity {
		initialCapacity = minCapacity
	}
	return &Arena[T]{
		records:  make([]T, initialCapacity),
		position: 1,
	}
}

// NewFixed creates an arena that never grows. It can issue capacity-1 handles
// because slot 0 is reserved.
func NewFixed[T any](capacity int) *Arena[T] {
	a := New[T](capacity)
	a.fixed = true
	return a
}

// Bump reserves the next slot and returns its handle. A growable arena
// doubles its capacity when the next slot would fall outside the buffer.
func (a *Arena[T]) Bump() (Handle, error) {
	if a.records == nil {
		return 0, ErrDestroyed
	}
	if int(a.position) == len(a.records) {
		if a.fixed {
			return 0, ErrFull
		}
		a.grow()
	}
	h := Handle(a.position)
	a.position++
	return h, nil
}

func (a *Arena[T]) grow() {
	next := make([]T, 2*len(a.records))
	copy(next, a.records)
	a.records = next
}

// Valid reports whether h was issued by this arena.
func (a *Arena[T]) Valid(h Handle) bool {
	return h != 0 && uint32(h) < a.position
}

// Get returns a copy of the record for h.
func (a *Arena[T]) Get(h Handle) (T, error) {
	if !a.Valid(h) {
		var zero T
		return zero, fmt.Errorf("%w: %d (issued 1..%d)", ErrInvalidHandle, h, a.position-1)
	}
	return a.records[h], nil
}

// Set overwrites the record for h.
func (a *Arena[T]) Set(h Handle, v T) error {
	if !a.Valid(h) {
		return fmt.Errorf("%w: %d (issued 1..%d)", ErrInvalidHandle, h, a.position-1)
	}
	a.records[h] = v
	return nil
}

// Update calls fn with a pointer to the record for h. The pointer is only
// valid for the duration of fn; fn must not call Bump.
func (a *Arena[T]) Update(h Handle, fn func(*T)) error {
	if !a.Valid(h) {
		return fmt.Errorf("%w: %d (issued 1..%d)", ErrInvalidHandle, h, a.position-1)
	}
	fn(&a.records[h])
	return nil
}

// At returns slot i directly, issued or not. It panics if i is outside
// [0, Cap()).
func (a *Arena[T]) At(i int) T { return a.records[i] }

// Each calls fn for every issued handle in issue order.
func (a *Arena[T]) Each(fn func(h Handle, v T)) {
	for i := uint32(1); i < a.position; i++ {
		fn(Handle(i), a.records[i])
	}
}

// Position is the next handle Bump will issue.
func (a *Arena[T]) Position() uint32 { return a.position }

// Cap is the number of slots in the backing buffer, including slot 0.
func (a *Arena[T]) Cap() int { return len(a.records) }

// Len is the number of handles issued so far.
func (a *Arena[T]) Len() int { return int(a.position) - 1 }

// Reset zeroes every slot and restarts issuing at 1 without shrinking.
// Previously issued handles become invalid.
func (a *Arena[T]) Reset() {
	clear(a.records)
	a.position = 1
}

// Destroy releases the backing buffer. The arena cannot be used afterwards.
func (a *Arena[T]) Destroy() {
	a.records = nil
	a.position = 1
}
