package vector

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"github.com/pavanmanishd/vector/alloc"
)

// Vector is a resizable contiguous sequence of T whose size and capacity are
// counted with the index type S. Its storage strategy is chosen by the
// constructor and never changes. Not goroutine-safe.
//
// Positions passed to mutators must lie in [0, Len()] (or [0, Len()) where an
// element is addressed); violations panic, like slice indexing.
type Vector[T any, S Index] struct {
	st storage[T, S]
	e  *env[T]
}

// NewFixed returns a container with room for exactly capacity elements. It
// never allocates after construction; operations that need more room report
// the growth policy's error.
func NewFixed[T any, S Index](capacity int, opts ...Option[T]) (*Vector[T, S], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("vector: negative capacity %d", capacity)
	}
	if _, err := toIndex[S](uint64(capacity)); err != nil {
		return nil, err
	}
	e := newEnv(opts)
	return &Vector[T, S]{st: &fixedStorage[T, S]{e: e, buf: make([]T, capacity)}, e: e}, nil
}

// NewHeap returns an empty container that keeps its elements in a single
// allocator block. It does not allocate until the first element arrives.
func NewHeap[T any, S Index](opts ...Option[T]) *Vector[T, S] {
	e := newEnv(opts)
	return &Vector[T, S]{st: &heapStorage[T, S]{e: e}, e: e}
}

// NewSmall returns a container that holds up to inline elements without
// touching the allocator. NewSmall with inline 0 behaves exactly like
// NewHeap. inline must be smaller than the largest value of S.
func NewSmall[T any, S Index](inline int, opts ...Option[T]) (*Vector[T, S], error) {
	if inline < 0 {
		return nil, fmt.Errorf("vector: negative inline capacity %d", inline)
	}
	if inline == 0 {
		return NewHeap[T, S](opts...), nil
	}
	if uint64(inline) >= maxIndex[S]() {
		return nil, &OverflowError{Value: uint64(inline), Max: maxIndex[S]() - 1}
	}
	e := newEnv(opts)
	return &Vector[T, S]{st: &hybridStorage[T, S]{e: e, inline: make([]T, inline)}, e: e}, nil
}

// NewFixedOf returns a fixed container of the given capacity holding copies
// of src. Use AppendN or AppendNWith on an empty container to start from a
// count of elements instead.
func NewFixedOf[T any, S Index](capacity int, src []T, opts ...Option[T]) (*Vector[T, S], error) {
	v, err := NewFixed[T, S](capacity, opts...)
	if err != nil {
		return nil, err
	}
	return v.initFrom(src)
}

// NewHeapOf returns a heap container holding copies of src, with capacity
// exactly len(src).
func NewHeapOf[T any, S Index](src []T, opts ...Option[T]) (*Vector[T, S], error) {
	return NewHeap[T, S](opts...).initFrom(src)
}

// NewSmallOf returns a hybrid container with the given inline capacity
// holding copies of src.
func NewSmallOf[T any, S Index](inline int, src []T, opts ...Option[T]) (*Vector[T, S], error) {
	v, err := NewSmall[T, S](inline, opts...)
	if err != nil {
		return nil, err
	}
	return v.initFrom(src)
}

func (v *Vector[T, S]) initFrom(src []T) (*Vector[T, S], error) {
	if err := v.Reserve(len(src)); err != nil {
		return nil, err
	}
	if err := v.Append(src...); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

// newLike returns an empty container with v's configuration.
func (v *Vector[T, S]) newLike() *Vector[T, S] {
	e := v.e.derive()
	switch v.st.kind() {
	case KindFixed:
		return &Vector[T, S]{st: &fixedStorage[T, S]{e: e, buf: make([]T, v.st.inlineCap())}, e: e}
	case KindHybrid:
		return &Vector[T, S]{st: &hybridStorage[T, S]{e: e, inline: make([]T, v.st.inlineCap())}, e: e}
	default:
		return &Vector[T, S]{st: &heapStorage[T, S]{e: e}, e: e}
	}
}

// sameConfig reports whether v and o use the same storage strategy and
// inline (or fixed) capacity.
func (v *Vector[T, S]) sameConfig(o *Vector[T, S]) bool {
	return v.st.kind() == o.st.kind() && v.st.inlineCap() == o.st.inlineCap()
}

// Len returns the number of elements.
func (v *Vector[T, S]) Len() int { return int(v.st.size()) }

// Cap returns the number of elements the container can hold without growing.
func (v *Vector[T, S]) Cap() int { return len(v.st.data()) }

// MaxSize returns the largest element count the container can ever hold.
func (v *Vector[T, S]) MaxSize() int {
	if v.st.kind() == KindFixed {
		return v.st.inlineCap()
	}
	return int(maxIndex[S]())
}

// Empty reports whether the container has no elements.
func (v *Vector[T, S]) Empty() bool { return v.st.size() == 0 }

// Kind returns the storage strategy.
func (v *Vector[T, S]) Kind() Kind { return v.st.kind() }

// IsSmall reports whether the elements live in the container's own buffer
// rather than an allocator block. Fixed containers are always small, heap
// containers never.
func (v *Vector[T, S]) IsSmall() bool {
	return v.st.kind() != KindHeap && !v.st.heapBacked()
}

// InlineCap returns the inline capacity: the fixed capacity for fixed
// containers and 0 for heap containers.
func (v *Vector[T, S]) InlineCap() int { return v.st.inlineCap() }

// Allocator returns the allocator heap blocks come from.
func (v *Vector[T, S]) Allocator() alloc.Allocator[T] { return v.e.alloc }

// Data returns the elements as a slice sharing the container's buffer. The
// slice is valid until the next operation that changes the capacity.
func (v *Vector[T, S]) Data() []T {
	n := v.Len()
	return v.st.data()[:n:n]
}

// At returns a pointer to element i, or a *BoundsError when i is out of range.
func (v *Vector[T, S]) At(i int) (*T, error) {
	if n := v.Len(); i < 0 || i >= n {
		return nil, &BoundsError{Index: i, Len: n}
	}
	return &v.st.data()[i], nil
}

// Index returns a pointer to element i. It panics when i is out of range.
func (v *Vector[T, S]) Index(i int) *T {
	return &v.Data()[i]
}

// Front returns a pointer to the first element. It panics on an empty container.
func (v *Vector[T, S]) Front() *T {
	v.mustNotBeEmpty("Front")
	return &v.st.data()[0]
}

// Back returns a pointer to the last element. It panics on an empty container.
func (v *Vector[T, S]) Back() *T {
	v.mustNotBeEmpty("Back")
	return &v.st.data()[v.Len()-1]
}

// All returns an iterator over index-value pairs in order.
func (v *Vector[T, S]) All() iter.Seq2[int, T] {
	return slices.All(v.Data())
}

// Values returns an iterator over the elements in order.
func (v *Vector[T, S]) Values() iter.Seq[T] {
	return slices.Values(v.Data())
}

// Backward returns an iterator over index-value pairs in reverse order.
func (v *Vector[T, S]) Backward() iter.Seq2[int, T] {
	return slices.Backward(v.Data())
}

func (v *Vector[T, S]) String() string {
	return fmt.Sprintf("%s%v", v.st.kind(), v.Data())
}

// Equal reports whether a and b hold equal elements in the same order. The
// containers may differ in index type and storage strategy.
func Equal[T comparable, S1, S2 Index](a *Vector[T, S1], b *Vector[T, S2]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// Compare compares the elements of a and b lexicographically.
func Compare[T cmp.Ordered, S1, S2 Index](a *Vector[T, S1], b *Vector[T, S2]) int {
	return slices.Compare(a.Data(), b.Data())
}

func (v *Vector[T, S]) mustNotBeEmpty(op string) {
	if v.st.size() == 0 {
		panic("vector: " + op + " on empty vector")
	}
}

// checkPos panics unless pos is a valid insertion position.
func (v *Vector[T, S]) checkPos(pos int) {
	if n := v.Len(); pos < 0 || pos > n {
		panic(fmt.Sprintf("vector: position %d out of range [0, %d]", pos, n))
	}
}

// checkRange panics unless [first, last) is a valid range of elements.
func (v *Vector[T, S]) checkRange(first, last int) {
	if n := v.Len(); first < 0 || first > last || last > n {
		panic(fmt.Sprintf("vector: range [%d, %d) out of range [0, %d]", first, last, n))
	}
}

// aliases reports whether p points into the container's buffer.
func (v *Vector[T, S]) aliases(p *T) bool {
	lo, hi := v.span()
	addr := uintptr(unsafe.Pointer(p))
	return lo != hi && addr >= lo && addr < hi
}

// overlaps reports whether src shares memory with the container's buffer.
func (v *Vector[T, S]) overlaps(src []T) bool {
	if len(src) == 0 {
		return false
	}
	lo, hi := v.span()
	if lo == hi {
		return false
	}
	var zero T
	slo := uintptr(unsafe.Pointer(unsafe.SliceData(src)))
	shi := slo + uintptr(len(src))*unsafe.Sizeof(zero)
	return slo < hi && lo < shi
}

// span returns the address range of the buffer. It is empty for zero-size
// element types, which cannot alias.
func (v *Vector[T, S]) span() (uintptr, uintptr) {
	b := v.st.data()
	var zero T
	size := unsafe.Sizeof(zero)
	if len(b) == 0 || size == 0 {
		return 0, 0
	}
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return lo, lo + uintptr(len(b))*size
}
