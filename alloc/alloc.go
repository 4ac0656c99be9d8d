// Package alloc defines the allocator contract consumed by the vector
// containers and a few concrete allocators:
//
//   - Heap: plain Go heap blocks, the default.
//   - Arena: a typed chunked bump allocator that can grow its most recent
//     block in place.
//   - SafeArena: a mutex-protected Arena for sharing between goroutines.
//   - Limited: a byte budget in front of any other allocator.
//   - Mmap: anonymous memory mappings for pointer-free element types, grown
//     with mremap on Linux.
//
// A block is a []T whose length is the element count that was requested.
// Blocks handed back to Deallocate or Reallocate must be the exact slices
// returned by the allocator.
package alloc

import (
	"errors"
	"math"
	"unsafe"
)

var (
	// ErrOutOfMemory is returned when an allocator cannot provide a block.
	ErrOutOfMemory = errors.New("alloc: out of memory")
	// ErrBudgetExceeded is returned by Limited when a request would exceed its budget.
	ErrBudgetExceeded = errors.New("alloc: memory budget exceeded")
	// ErrUnsupported is returned when an allocator is not available on this platform.
	ErrUnsupported = errors.New("alloc: unsupported on this platform")
	// ErrPointerType is returned when an off-heap allocator is asked to hold a type containing Go pointers.
	ErrPointerType = errors.New("alloc: element type contains pointers")
)

// Allocator provides blocks of n elements.
type Allocator[T any] interface {
	// Allocate returns a zeroed block with len == n.
	Allocate(n int) ([]T, error)
	// Deallocate returns a block obtained from Allocate or Reallocate. It never fails.
	Deallocate(block []T)
}

// Reallocator is implemented by allocators that can resize a block, possibly
// without moving it. The first min(len(block), n) elements are preserved
// bytewise, so callers only use it for element types that may be relocated
// by a raw copy.
type Reallocator[T any] interface {
	Allocator[T]
	Reallocate(block []T, n int) ([]T, error)
}

// Heap allocates blocks on the Go heap. The zero value is ready to use.
type Heap[T any] struct{}

// Allocate returns make([]T, n), or ErrOutOfMemory when n elements cannot be
// addressed.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if !fits[T](n) {
		return nil, ErrOutOfMemory
	}
	return make([]T, n), nil
}

// Deallocate drops the block and leaves it to the garbage collector.
func (Heap[T]) Deallocate([]T) {}

// fits reports whether n elements of T can be addressed in one block.
func fits[T any](n int) bool {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return true
	}
	return uint64(n) <= uint64(math.MaxInt)/uint64(size)
}

// reallocateByCopy is the fallback used by wrappers around allocators
// without a native Reallocate.
func reallocateByCopy[T any](a Allocator[T], block []T, n int) ([]T, error) {
	if n == len(block) {
		return block, nil
	}
	nb, err := a.Allocate(n)
	if err != nil {
		return nil, err
	}
	copy(nb, block)
	a.Deallocate(block)
	return nb, nil
}

// Reallocate resizes block with a's native Reallocate when it has one and
// falls back to allocate, copy and deallocate otherwise.
func Reallocate[T any](a Allocator[T], block []T, n int) ([]T, error) {
	if r, ok := a.(Reallocator[T]); ok {
		return r.Reallocate(block, n)
	}
	return reallocateByCopy(a, block, n)
}

// sizeOf returns the size in bytes of n elements of T.
func sizeOf[T any](n int) int64 {
	var zero T
	return int64(unsafe.Sizeof(zero)) * int64(n)
}
