package renderer

import (
	"errors"
	"fmt"

	"vgfx/arena"
)

var (
	// ErrFrameNotBegun is returned by draw calls and EndFrame outside a
	// BeginFrame/EndFrame bracket.
	ErrFrameNotBegun = errors.New("renderer: draw outside BeginFrame/EndFrame")
	// ErrFrameInProgress is returned by BeginFrame when the previous frame
	// was not ended.
	ErrFrameInProgress = errors.New("renderer: frame already begun")
	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("renderer: context closed")
	// ErrLightCapacity matches any CapacityError.
	ErrLightCapacity = errors.New("renderer: light capacity exhausted")
)

// CapacityError reports that a light kind has no free slot left.
type CapacityError struct {
	Kind     string
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("renderer: too many %s lights (capacity %d, slot 0 reserved)", e.Kind, e.Capacity)
}

func (e *CapacityError) Unwrap() []error {
	return []error{ErrLightCapacity, arena.ErrFull}
}
