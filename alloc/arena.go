package alloc

// DefaultChunkSize is the default chunk size, in elements, for new arenas.
const DefaultChunkSize = 1 << 12

// chunk represents a single memory chunk within an arena.
type chunk[T any] struct {
	buf    []T // backing memory
	offset int // next free element within buf
}

// Arena is a typed chunked bump allocator. Not goroutine-safe.
// Use SafeArena for concurrent access.
//
// Deallocate only reclaims the most recent block of the current chunk; any
// other block is reclaimed in bulk by Reset. Reallocate grows or shrinks the
// most recent block in place when the chunk has room, which makes an Arena a
// cheap backing store for a single growing vector.
type Arena[T any] struct {
	chunks    []chunk[T]
	chunkSize int
	current   int // index of the chunk serving allocations
}

// NewArena creates a new Arena with the specified chunk size in elements.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena[T]{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// Allocate returns a zeroed block of n elements carved from the current chunk.
// Returns nil if n <= 0.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	a.panicIfReleased()

	// Fast path: current chunk has room
	c := &a.chunks[a.current]
	if n <= len(c.buf)-c.offset {
		start := c.offset
		c.offset += n
		return c.buf[start:c.offset:c.offset], nil
	}
	return a.allocateSlow(n)
}

// allocateSlow handles allocation when the fast path fails.
func (a *Arena[T]) allocateSlow(n int) ([]T, error) {
	if !fits[T](n) {
		return nil, ErrOutOfMemory
	}
	// Reuse a later chunk left over from before a Reset.
	for i := a.current + 1; i < len(a.chunks); i++ {
		if len(a.chunks[i].buf) >= n {
			a.current = i
			c := &a.chunks[i]
			c.offset = n
			return c.buf[0:n:n], nil
		}
	}
	a.grow(n)
	c := &a.chunks[a.current]
	c.offset = n
	return c.buf[0:n:n], nil
}

// Deallocate rolls the bump pointer back when block is the most recent
// allocation of the current chunk. Other blocks stay in use until Reset.
func (a *Arena[T]) Deallocate(block []T) {
	if len(block) == 0 || a.chunks == nil {
		return
	}
	c := &a.chunks[a.current]
	if start, ok := c.tail(block); ok {
		clear(c.buf[start:c.offset])
		c.offset = start
	}
}

// Reallocate resizes block. The most recent block of the current chunk is
// resized in place when the chunk has room; other blocks are copied into a
// fresh allocation.
func (a *Arena[T]) Reallocate(block []T, n int) ([]T, error) {
	if len(block) == 0 {
		return a.Allocate(n)
	}
	if n <= 0 {
		a.Deallocate(block)
		return nil, nil
	}
	a.panicIfReleased()
	c := &a.chunks[a.current]
	if start, ok := c.tail(block); ok && n <= len(c.buf)-start {
		if n < len(block) {
			clear(c.buf[start+n : c.offset])
		}
		c.offset = start + n
		return c.buf[start:c.offset:c.offset], nil
	}
	return reallocateByCopy[T](a, block, n)
}

// EnsureCapacity ensures the current chunk has at least n free elements.
// If not, it grows the arena with a new chunk.
func (a *Arena[T]) EnsureCapacity(n int) {
	a.panicIfReleased()
	c := &a.chunks[a.current]
	if n > len(c.buf)-c.offset {
		a.grow(n)
	}
}

// Reset rewinds every chunk but keeps them for reuse. All blocks handed out
// so far become invalid.
func (a *Arena[T]) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		c := &a.chunks[i]
		clear(c.buf[:c.offset])
		c.offset = 0
	}
	a.current = 0
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent allocation will panic.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.current = 0
}

// grow appends a new chunk of at least min elements and makes it current.
func (a *Arena[T]) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk[T]{buf: make([]T, size)})
	a.current = len(a.chunks) - 1
}

// panicIfReleased panics if the arena has been released.
func (a *Arena[T]) panicIfReleased() {
	if a.chunks == nil {
		panic("alloc: arena used after Release()")
	}
}

// tail reports whether block ends at the chunk's bump pointer and returns
// its start offset.
func (c *chunk[T]) tail(block []T) (int, bool) {
	start := c.offset - len(block)
	if start < 0 {
		return 0, false
	}
	return start, &c.buf[start] == &block[0]
}
