package vector

import "unsafe"

// counters are the running capacity statistics of one container.
type counters struct {
	grows     uint64
	shrinks   uint64
	allocs    uint64
	frees     uint64
	reallocs  uint64
	relocated uint64
	toLarge   uint64
	toSmall   uint64
}

// Metrics contains statistical information about a container.
type Metrics struct {
	Kind        Kind    // Storage strategy
	Len         int     // Number of elements
	Cap         int     // Current capacity in elements
	InlineCap   int     // Inline capacity (fixed capacity for fixed containers)
	Small       bool    // Elements live in the inline buffer
	Utilization float64 // Ratio of Len to Cap (0.0-1.0)
	HeapBytes   int     // Size of the heap block in bytes

	Grows     uint64 // Capacity increases
	Shrinks   uint64 // Capacity decreases
	Allocs    uint64 // Blocks obtained from the allocator
	Frees     uint64 // Blocks returned to the allocator
	Reallocs  uint64 // Resizes served by the allocator's Reallocate
	Relocated uint64 // Elements relocated between buffers
	ToLarge   uint64 // Inline to heap transitions
	ToSmall   uint64 // Heap to inline transitions
}

// Metrics returns a snapshot of the container's statistics.
func (v *Vector[T, S]) Metrics() Metrics {
	n, c := v.Len(), v.Cap()
	m := Metrics{
		Kind:      v.Kind(),
		Len:       n,
		Cap:       c,
		InlineCap: v.InlineCap(),
		Small:     v.IsSmall(),
		Grows:     v.e.stats.grows,
		Shrinks:   v.e.stats.shrinks,
		Allocs:    v.e.stats.allocs,
		Frees:     v.e.stats.frees,
		Reallocs:  v.e.stats.reallocs,
		Relocated: v.e.stats.relocated,
		ToLarge:   v.e.stats.toLarge,
		ToSmall:   v.e.stats.toSmall,
	}
	if block := v.st.heapBlock(); len(block) > 0 {
		var zero T
		m.HeapBytes = len(block) * int(unsafe.Sizeof(zero))
	}
	if c > 0 {
		m.Utilization = float64(n) / float64(c)
	}
	return m
}
