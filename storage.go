package vector

// Kind identifies a container's storage strategy.
type Kind uint8

const (
	// KindFixed keeps elements in a buffer sized once at construction and
	// never allocates afterwards.
	KindFixed Kind = iota
	// KindHeap keeps elements in a single allocator block.
	KindHeap
	// KindHybrid keeps up to an inline count of elements in a buffer sized at
	// construction and moves to an allocator block beyond that.
	KindHybrid
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindHeap:
		return "heap"
	case KindHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// storage owns a container's buffer and its size. It knows how to make room
// but never touches elements beyond relocating them between buffers.
type storage[T any, S Index] interface {
	kind() Kind
	// data returns the active buffer; len(data()) is the capacity.
	data() []T
	size() S
	setSize(n S)
	inlineCap() int
	// adjust makes room for need elements. Growth goes to exactly need when
	// exact is set and follows the growth formula otherwise.
	adjust(need uint64, exact bool) error
	shrink() error
	// release returns the heap block, if any. Elements must already be
	// destroyed. The storage ends in its initial state.
	release()

	// heapBacked reports whether the elements live in an allocator block.
	heapBacked() bool
	heapBlock() []T
	// setHeapBlock installs block as the active buffer. A hybrid storage
	// handed a nil block goes back to its inline buffer.
	setHeapBlock(block []T)
}

// fixedStorage never allocates after construction. Requests beyond the
// buffer go to the growth policy.
type fixedStorage[T any, S Index] struct {
	e   *env[T]
	buf []T
	n   S
}

func (f *fixedStorage[T, S]) kind() Kind       { return KindFixed }
func (f *fixedStorage[T, S]) data() []T        { return f.buf }
func (f *fixedStorage[T, S]) size() S          { return f.n }
func (f *fixedStorage[T, S]) setSize(n S)      { f.n = n }
func (f *fixedStorage[T, S]) inlineCap() int   { return len(f.buf) }
func (f *fixedStorage[T, S]) shrink() error    { return nil }
func (f *fixedStorage[T, S]) release()         { f.n = 0 }
func (f *fixedStorage[T, S]) heapBacked() bool { return false }
func (f *fixedStorage[T, S]) heapBlock() []T   { return nil }

func (f *fixedStorage[T, S]) adjust(need uint64, _ bool) error {
	if need <= uint64(len(f.buf)) {
		return nil
	}
	return f.e.policy.Check(need, uint64(len(f.buf)))
}

func (f *fixedStorage[T, S]) setHeapBlock([]T) {
	panic("vector: fixed storage has no heap block")
}
