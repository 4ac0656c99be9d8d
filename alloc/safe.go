package alloc

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// It lets several vectors living on different goroutines share one arena.
type SafeArena[T any] struct {
	mu sync.Mutex
	a  *Arena[T]
}

// NewSafeArena creates a new thread-safe arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewSafeArena[T any](chunkSize int) *SafeArena[T] {
	return &SafeArena[T]{a: NewArena[T](chunkSize)}
}

// Allocate thread-safely allocates a block of n elements.
func (s *SafeArena[T]) Allocate(n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(n)
}

// Deallocate thread-safely returns a block to the arena.
func (s *SafeArena[T]) Deallocate(block []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Deallocate(block)
}

// Reallocate thread-safely resizes a block.
func (s *SafeArena[T]) Reallocate(block []T, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Reallocate(block, n)
}

// EnsureCapacity thread-safely ensures the current chunk has at least n free elements.
func (s *SafeArena[T]) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Reset thread-safely rewinds the arena for reuse.
func (s *SafeArena[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all chunks and makes the arena unusable.
func (s *SafeArena[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}
