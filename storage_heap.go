package vector

// heapStorage keeps its elements in one allocator block. A zero capacity
// container holds no block.
type heapStorage[T any, S Index] struct {
	e     *env[T]
	block []T
	n     S
}

func (h *heapStorage[T, S]) kind() Kind             { return KindHeap }
func (h *heapStorage[T, S]) data() []T              { return h.block }
func (h *heapStorage[T, S]) size() S                { return h.n }
func (h *heapStorage[T, S]) setSize(n S)            { h.n = n }
func (h *heapStorage[T, S]) inlineCap() int         { return 0 }
func (h *heapStorage[T, S]) heapBacked() bool       { return true }
func (h *heapStorage[T, S]) heapBlock() []T         { return h.block }
func (h *heapStorage[T, S]) setHeapBlock(block []T) { h.block = block }

func (h *heapStorage[T, S]) adjust(need uint64, exact bool) error {
	old := len(h.block)
	if need <= uint64(old) {
		return nil
	}
	c, err := nextCapacity(uint64(old), need, exact, maxIndex[S]())
	if err != nil {
		return err
	}
	nb, err := h.e.reallocate(h.block, int(h.n), int(c))
	h.e.logGrow(old, int(c), err)
	if err != nil {
		return err
	}
	h.block = nb
	h.e.stats.grows++
	return nil
}

// shrink reduces the block to exactly the size, or frees it when empty.
func (h *heapStorage[T, S]) shrink() error {
	old, n := len(h.block), int(h.n)
	if n == old {
		return nil
	}
	if n == 0 {
		h.e.deallocate(h.block)
		h.block = nil
	} else {
		nb, err := h.e.reallocate(h.block, n, n)
		if err != nil {
			return err
		}
		h.block = nb
	}
	h.e.stats.shrinks++
	h.e.logShrink(old, n)
	return nil
}

func (h *heapStorage[T, S]) release() {
	h.e.deallocate(h.block)
	h.block = nil
	h.n = 0
}
