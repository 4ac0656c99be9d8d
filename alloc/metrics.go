package alloc

// InUse returns the number of elements currently handed out by the arena.
func (a *Arena[T]) InUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += c.offset
	}
	return sum
}

// NumChunks returns the number of chunks currently held by the arena.
func (a *Arena[T]) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total capacity, in elements, of all chunks in the arena.
func (a *Arena[T]) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of elements in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.InUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size, in elements, used by this arena.
func (a *Arena[T]) ChunkSize() int {
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		InUse:       a.InUse(),
		InUseBytes:  sizeOf[T](a.InUse()),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.ChunkSize(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	InUse       int     // Elements currently handed out
	InUseBytes  int64   // Bytes currently handed out
	Capacity    int     // Total capacity in elements
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Default chunk size in elements
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena[T]) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
