package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned when a fixed-capacity container is asked
	// to hold more elements than its capacity.
	ErrCapacityExceeded = errors.New("vector: capacity exceeded")
	// ErrAllocation is returned when the allocator cannot provide a block.
	ErrAllocation = errors.New("vector: allocation failed")
	// ErrIndexOverflow is returned when a size or capacity cannot be
	// represented by the container's index type.
	ErrIndexOverflow = errors.New("vector: index type overflow")
	// ErrOutOfRange is returned by checked element access.
	ErrOutOfRange = errors.New("vector: index out of range")
)

// CapacityError reports a request beyond a fixed capacity.
// The container is left unchanged.
type CapacityError struct {
	Requested uint64
	Capacity  uint64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("vector: capacity exceeded: requested %d, capacity %d", e.Requested, e.Capacity)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacityExceeded }

// AllocationError reports an allocator failure.
//
// The allocator's error can be accessed via errors.Unwrap.
type AllocationError struct {
	Elements int
	cause    error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("vector: allocation of %d elements failed: %v", e.Elements, e.cause)
}

func (e *AllocationError) Is(target error) bool { return target == ErrAllocation }

func (e *AllocationError) Unwrap() error { return e.cause }

// OverflowError reports a count that does not fit an index type.
type OverflowError struct {
	Value uint64
	Max   uint64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("vector: %d does not fit index type (max %d)", e.Value, e.Max)
}

func (e *OverflowError) Is(target error) bool { return target == ErrIndexOverflow }

// BoundsError reports a checked access outside [0, Len).
type BoundsError struct {
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *BoundsError) Is(target error) bool { return target == ErrOutOfRange }
