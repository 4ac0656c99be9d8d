package vector

// hybridStorage keeps up to len(inline) elements in its inline buffer
// (small) and switches to an allocator block beyond that (large). The
// inline buffer is sized once at construction and never comes from the
// allocator.
type hybridStorage[T any, S Index] struct {
	e      *env[T]
	inline []T
	heap   []T
	large  bool
	n      S
}

func (h *hybridStorage[T, S]) kind() Kind       { return KindHybrid }
func (h *hybridStorage[T, S]) size() S          { return h.n }
func (h *hybridStorage[T, S]) setSize(n S)      { h.n = n }
func (h *hybridStorage[T, S]) inlineCap() int   { return len(h.inline) }
func (h *hybridStorage[T, S]) heapBacked() bool { return h.large }

func (h *hybridStorage[T, S]) data() []T {
	if h.large {
		return h.heap
	}
	return h.inline
}

func (h *hybridStorage[T, S]) heapBlock() []T {
	if h.large {
		return h.heap
	}
	return nil
}

func (h *hybridStorage[T, S]) setHeapBlock(block []T) {
	h.heap = block
	h.large = block != nil
}

func (h *hybridStorage[T, S]) adjust(need uint64, exact bool) error {
	old := len(h.data())
	if need <= uint64(old) {
		return nil
	}
	c, err := nextCapacity(uint64(old), need, exact, maxIndex[S]())
	if err != nil {
		return err
	}
	if h.large {
		nb, err := h.e.reallocate(h.heap, int(h.n), int(c))
		h.e.logGrow(old, int(c), err)
		if err != nil {
			return err
		}
		h.heap = nb
		h.e.stats.grows++
		return nil
	}

	nb, err := h.e.allocate(int(c))
	if err != nil {
		h.e.logGrow(old, int(c), err)
		return err
	}
	if err := relocate(h.e.traits, nb[:h.n], h.inline[:h.n]); err != nil {
		h.e.deallocate(nb)
		return err
	}
	h.e.stats.relocated += uint64(h.n)
	h.heap, h.large = nb, true
	h.e.stats.grows++
	h.e.stats.toLarge++
	h.e.logGrow(old, int(c), nil)
	h.e.logTransition(true, int(c))
	return nil
}

// shrink moves the elements back inline when they fit there and otherwise
// reduces the heap block to exactly the size.
func (h *hybridStorage[T, S]) shrink() error {
	if !h.large {
		return nil
	}
	old, n := len(h.heap), int(h.n)
	if n <= len(h.inline) {
		if err := relocate(h.e.traits, h.inline[:n], h.heap[:n]); err != nil {
			return err
		}
		h.e.stats.relocated += uint64(n)
		h.e.deallocate(h.heap)
		h.heap, h.large = nil, false
		h.e.stats.shrinks++
		h.e.stats.toSmall++
		h.e.logShrink(old, len(h.inline))
		h.e.logTransition(false, len(h.inline))
		return nil
	}
	if n == old {
		return nil
	}
	nb, err := h.e.reallocate(h.heap, n, n)
	if err != nil {
		return err
	}
	h.heap = nb
	h.e.stats.shrinks++
	h.e.logShrink(old, n)
	return nil
}

func (h *hybridStorage[T, S]) release() {
	if h.large {
		h.e.deallocate(h.heap)
	}
	h.heap, h.large = nil, false
	h.n = 0
}
