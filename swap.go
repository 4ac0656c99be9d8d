package vector

import (
	"reflect"

	"github.com/pavanmanishd/vector/alloc"
)

// Swap exchanges the contents of v and o. Containers with the same strategy
// and inline capacity trade their whole state, allocator and metrics
// included, without touching an element; this never fails. Otherwise Swap
// behaves like Swap2.
func (v *Vector[T, S]) Swap(o *Vector[T, S]) error {
	if v == o {
		return nil
	}
	if v.sameConfig(o) {
		*v, *o = *o, *v
		return nil
	}
	return Swap2(v, o)
}

// Swap2 exchanges the contents of two containers of any configuration. Each
// keeps its strategy, allocator and index type.
//
// When neither is fixed, both keep their elements in heap blocks from the
// same allocator, and each side's capacity fits the other's index type, the
// blocks are exchanged without touching an element. Otherwise each side
// first grows to hold the other's elements, which is the only step that can
// fail on relocatable types, and the elements are swapped one by one with
// a's traits, so both containers must use the same Traits. A size that
// does not fit the other side's index type is
// reported as an *OverflowError before anything changes.
func Swap2[T any, S1, S2 Index](a *Vector[T, S1], b *Vector[T, S2]) error {
	if any(a) == any(b) {
		return nil
	}
	na, nb := a.Len(), b.Len()
	if _, err := toIndex[S2](uint64(na)); err != nil {
		return err
	}
	if _, err := toIndex[S1](uint64(nb)); err != nil {
		return err
	}

	if canExchangeHeap(a, b) {
		ab, bb := a.st.heapBlock(), b.st.heapBlock()
		a.st.setHeapBlock(bb)
		b.st.setHeapBlock(ab)
		a.st.setSize(S1(nb))
		b.st.setSize(S2(na))
		return nil
	}

	if err := a.st.adjust(uint64(nb), false); err != nil {
		return err
	}
	if err := b.st.adjust(uint64(na), false); err != nil {
		return err
	}
	if err := swapDeep(a.e.traits, a.st.data(), na, b.st.data(), nb); err != nil {
		return err
	}
	a.st.setSize(S1(nb))
	b.st.setSize(S2(na))
	return nil
}

func canExchangeHeap[T any, S1, S2 Index](a *Vector[T, S1], b *Vector[T, S2]) bool {
	if a.st.kind() == KindFixed || b.st.kind() == KindFixed {
		return false
	}
	if !a.st.heapBacked() || !b.st.heapBacked() {
		return false
	}
	if !sameAllocator(a.e.alloc, b.e.alloc) {
		return false
	}
	return uint64(a.Cap()) <= maxIndex[S2]() && uint64(b.Cap()) <= maxIndex[S1]()
}

// sameAllocator reports whether blocks from x may be returned to y: both
// have the same dynamic type and compare equal.
func sameAllocator[T any](x, y alloc.Allocator[T]) bool {
	tx, ty := reflect.TypeOf(x), reflect.TypeOf(y)
	if tx != ty || tx == nil || !tx.Comparable() {
		return false
	}
	return x == y
}

// MoveFrom replaces v's contents with o's elements and leaves o empty.
//
// With the same configuration the two containers trade their whole state,
// as in Swap, after v's elements are released. Otherwise v adopts o's heap
// block when o has one from the same allocator and v is not fixed, and
// falls back to moving the elements one by one. On failure of the element
// path both containers stay valid.
func (v *Vector[T, S]) MoveFrom(o *Vector[T, S]) error {
	if v == o {
		return nil
	}
	if v.sameConfig(o) {
		v.Release()
		*v, *o = *o, *v
		return nil
	}
	if v.st.kind() != KindFixed && o.st.heapBacked() && sameAllocator(v.e.alloc, o.e.alloc) {
		v.Release()
		n := o.st.size()
		v.st.setHeapBlock(o.st.heapBlock())
		v.st.setSize(n)
		o.st.setHeapBlock(nil)
		o.st.setSize(0)
		return nil
	}

	n, dn := o.Len(), v.Len()
	if err := v.st.adjust(uint64(n), true); err != nil {
		return err
	}
	if err := moveN(v.e.traits, o.st.data(), n, v.st.data(), dn); err != nil {
		return err
	}
	v.st.setSize(S(n))
	o.st.setSize(0)
	return nil
}
