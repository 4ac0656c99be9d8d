package vector

import "fmt"

// Mutators. Unless documented otherwise, a failing operation on a container
// whose traits are relocatable leaves it unchanged; with hooks that can fail
// mid-move it leaves a valid container holding some of its elements.

// PushBack appends x. The container takes x over as is; no copy hook runs.
func (v *Vector[T, S]) PushBack(x T) error {
	if err := v.room(1); err != nil {
		return err
	}
	n := v.Len()
	v.st.data()[n] = x
	v.st.setSize(S(n + 1))
	return nil
}

// PushBackFrom appends a copy of *p. p may point into the container itself,
// even when the append has to grow the buffer. On failure the container is
// unchanged.
func (v *Vector[T, S]) PushBackFrom(p *T) error {
	tr := v.e.traits
	n := v.Len()
	if n < v.Cap() {
		if err := copyAt(tr, &v.st.data()[n], p); err != nil {
			return err
		}
		v.st.setSize(S(n + 1))
		return nil
	}
	var tmp T
	if err := copyAt(tr, &tmp, p); err != nil {
		return err
	}
	return v.placeBack(&tmp)
}

// EmplaceBack appends an element built in place by ctor. ctor receives an
// unconstructed slot and may read the container's elements. On failure the
// container is unchanged.
func (v *Vector[T, S]) EmplaceBack(ctor func(p *T) error) error {
	n := v.Len()
	if n < v.Cap() {
		if err := build(&v.st.data()[n], ctor); err != nil {
			return err
		}
		v.st.setSize(S(n + 1))
		return nil
	}
	var tmp T
	if err := build(&tmp, ctor); err != nil {
		return err
	}
	return v.placeBack(&tmp)
}

// placeBack grows the buffer and relocates the temporary *tmp to the end.
// tmp is destroyed on failure.
func (v *Vector[T, S]) placeBack(tmp *T) error {
	tr := v.e.traits
	if err := v.room(1); err != nil {
		destroyAt(tr, tmp)
		return err
	}
	n := v.Len()
	if err := relocateAt(tr, &v.st.data()[n], tmp); err != nil {
		destroyAt(tr, tmp)
		return err
	}
	v.st.setSize(S(n + 1))
	return nil
}

// Insert inserts x before position pos. The container takes x over as is.
func (v *Vector[T, S]) Insert(pos int, x T) error {
	v.checkPos(pos)
	tr := v.e.traits
	return v.insertOne(pos, func(dst *T, built bool) error {
		if built {
			destroyAt(tr, dst)
		}
		*dst = x
		return nil
	})
}

// InsertFrom inserts a copy of *p before position pos. p may point into the
// container itself.
func (v *Vector[T, S]) InsertFrom(pos int, p *T) error {
	v.checkPos(pos)
	tr := v.e.traits
	if v.aliases(p) {
		var tmp T
		if err := copyAt(tr, &tmp, p); err != nil {
			return err
		}
		return v.insertOwned(pos, &tmp)
	}
	return v.insertOne(pos, func(dst *T, built bool) error {
		if built {
			return tr.Assign(dst, p)
		}
		return copyAt(tr, dst, p)
	})
}

// Emplace inserts an element built by ctor before position pos. ctor runs
// before the container changes, so it may read any element.
func (v *Vector[T, S]) Emplace(pos int, ctor func(p *T) error) error {
	v.checkPos(pos)
	var tmp T
	if err := build(&tmp, ctor); err != nil {
		return err
	}
	return v.insertOwned(pos, &tmp)
}

// insertOwned inserts the temporary *tmp and destroys what is left of it.
func (v *Vector[T, S]) insertOwned(pos int, tmp *T) error {
	tr := v.e.traits
	err := v.insertOne(pos, func(dst *T, built bool) error {
		if built {
			return tr.MoveAssign(dst, tmp)
		}
		return moveAt(tr, dst, tmp)
	})
	destroyAt(tr, tmp)
	return err
}

// insertOne opens a one-slot gap at pos and lets place fill it. built tells
// place whether the gap slot holds a moved-from element. If place fails the
// gap is closed again.
func (v *Vector[T, S]) insertOne(pos int, place func(dst *T, built bool) error) error {
	if err := v.room(1); err != nil {
		return err
	}
	tr := v.e.traits
	b := v.st.data()
	n := v.Len()
	tail := n - pos
	if err := shiftRight(tr, b, pos, tail, 1); err != nil {
		return err
	}
	if err := place(&b[pos], gapBuilt(tr, pos, tail, 1) > pos); err != nil {
		unshiftOne(tr, b, pos, tail)
		return err
	}
	v.st.setSize(S(n + 1))
	return nil
}

// InsertN inserts count copies of x before position pos.
func (v *Vector[T, S]) InsertN(pos, count int, x T) error {
	v.checkPos(pos)
	mustCount(count)
	if count == 0 {
		return nil
	}
	if err := v.room(count); err != nil {
		return err
	}
	tr := v.e.traits
	b := v.st.data()
	n := v.Len()
	tail := n - pos
	if err := shiftRight(tr, b, pos, tail, count); err != nil {
		return err
	}
	if built, err := fillAfterShift(tr, b, pos, tail, count, &x); err != nil {
		v.abandonGap(pos, count, tail, built)
		return err
	}
	v.st.setSize(S(n + count))
	return nil
}

// InsertRange inserts copies of src before position pos. src may overlap the
// container's own elements.
func (v *Vector[T, S]) InsertRange(pos int, src []T) error {
	v.checkPos(pos)
	if len(src) == 0 {
		return nil
	}
	tr := v.e.traits
	if v.overlaps(src) {
		snap, err := v.snapshot(src)
		if err != nil {
			return err
		}
		defer destroyN(tr, snap)
		src = snap
	}
	count := len(src)
	if err := v.room(count); err != nil {
		return err
	}
	b := v.st.data()
	n := v.Len()
	tail := n - pos
	if err := shiftRight(tr, b, pos, tail, count); err != nil {
		return err
	}
	if built, err := copyAfterShift(tr, b, pos, tail, src); err != nil {
		v.abandonGap(pos, count, tail, built)
		return err
	}
	v.st.setSize(S(n + count))
	return nil
}

// abandonGap undoes a failed fill of the gap b[pos:pos+count] whose
// constructed prefix ends at built, moving the tail of n elements back. The
// size is set to what survived.
func (v *Vector[T, S]) abandonGap(pos, count, n, built int) {
	tr := v.e.traits
	b := v.st.data()
	destroyN(tr, b[pos:built])
	kept := closeGap(tr, b, pos, count, n)
	v.st.setSize(S(pos + kept))
}

// Append appends copies of src. src may overlap the container's own
// elements. On failure the container is unchanged.
func (v *Vector[T, S]) Append(src ...T) error {
	if len(src) == 0 {
		return nil
	}
	tr := v.e.traits
	if v.overlaps(src) {
		snap, err := v.snapshot(src)
		if err != nil {
			return err
		}
		defer destroyN(tr, snap)
		src = snap
	}
	if err := v.room(len(src)); err != nil {
		return err
	}
	n := v.Len()
	if err := uninitCopy(tr, v.st.data()[n:n+len(src)], src); err != nil {
		return err
	}
	v.st.setSize(S(n + len(src)))
	return nil
}

// AppendN appends count value-initialized elements.
func (v *Vector[T, S]) AppendN(count int) error {
	mustCount(count)
	if err := v.room(count); err != nil {
		return err
	}
	n := v.Len()
	if err := uninitInit(v.e.traits, v.st.data()[n:n+count]); err != nil {
		return err
	}
	v.st.setSize(S(n + count))
	return nil
}

// AppendNWith appends count copies of x.
func (v *Vector[T, S]) AppendNWith(count int, x T) error {
	mustCount(count)
	if err := v.room(count); err != nil {
		return err
	}
	n := v.Len()
	if err := uninitFill(v.e.traits, v.st.data()[n:n+count], &x); err != nil {
		return err
	}
	v.st.setSize(S(n + count))
	return nil
}

// Erase removes the element at pos.
func (v *Vector[T, S]) Erase(pos int) error {
	v.checkRange(pos, pos+1)
	n := v.Len()
	if err := eraseAt(v.e.traits, v.st.data(), pos, n-pos-1); err != nil {
		return err
	}
	v.st.setSize(S(n - 1))
	return nil
}

// EraseRange removes the elements in [first, last).
func (v *Vector[T, S]) EraseRange(first, last int) error {
	v.checkRange(first, last)
	n := v.Len()
	count := last - first
	if err := eraseN(v.e.traits, v.st.data(), first, count, n-last); err != nil {
		return err
	}
	v.st.setSize(S(n - count))
	return nil
}

// AssignN replaces the contents with count copies of x.
func (v *Vector[T, S]) AssignN(count int, x T) error {
	mustCount(count)
	tr := v.e.traits
	n := v.Len()
	if count > n {
		if err := v.st.adjust(uint64(count), false); err != nil {
			return err
		}
		b := v.st.data()
		if err := uninitFill(tr, b[n:count], &x); err != nil {
			return err
		}
		v.st.setSize(S(count))
		return assignFill(tr, b[:n], &x)
	}
	b := v.st.data()
	if err := assignFill(tr, b[:count], &x); err != nil {
		return err
	}
	destroyN(tr, b[count:n])
	v.st.setSize(S(count))
	return nil
}

// AssignRange replaces the contents with copies of src. src may overlap the
// container's own elements.
func (v *Vector[T, S]) AssignRange(src []T) error {
	tr := v.e.traits
	if v.overlaps(src) {
		snap, err := v.snapshot(src)
		if err != nil {
			return err
		}
		defer destroyN(tr, snap)
		src = snap
	}
	count := len(src)
	n := v.Len()
	if count > n {
		if err := v.st.adjust(uint64(count), false); err != nil {
			return err
		}
		b := v.st.data()
		if err := assignRange(tr, b[:n], src[:n]); err != nil {
			return err
		}
		if err := uninitCopy(tr, b[n:count], src[n:]); err != nil {
			return err
		}
		v.st.setSize(S(count))
		return nil
	}
	b := v.st.data()
	if err := assignRange(tr, b[:count], src); err != nil {
		return err
	}
	destroyN(tr, b[count:n])
	v.st.setSize(S(count))
	return nil
}

// Resize changes the size to count, value-initializing new elements or
// destroying trailing ones.
func (v *Vector[T, S]) Resize(count int) error {
	return v.resize(count, func(dst []T) error {
		return uninitInit(v.e.traits, dst)
	})
}

// ResizeWith changes the size to count, filling new slots with copies of x.
func (v *Vector[T, S]) ResizeWith(count int, x T) error {
	return v.resize(count, func(dst []T) error {
		return uninitFill(v.e.traits, dst, &x)
	})
}

func (v *Vector[T, S]) resize(count int, fill func(dst []T) error) error {
	mustCount(count)
	n := v.Len()
	if count <= n {
		destroyN(v.e.traits, v.st.data()[count:n])
		v.st.setSize(S(count))
		return nil
	}
	if err := v.st.adjust(uint64(count), false); err != nil {
		return err
	}
	if err := fill(v.st.data()[n:count]); err != nil {
		return err
	}
	v.st.setSize(S(count))
	return nil
}

// Reserve makes room for at least capacity elements, growing to exactly
// that capacity when growth is needed. Fixed containers only check it
// against their capacity.
func (v *Vector[T, S]) Reserve(capacity int) error {
	if capacity <= v.Cap() {
		return nil
	}
	return v.st.adjust(uint64(capacity), true)
}

// ShrinkToFit releases unused capacity. A hybrid container whose elements
// fit inline moves them back into its inline buffer. No-op for fixed
// containers.
func (v *Vector[T, S]) ShrinkToFit() error {
	return v.st.shrink()
}

// Clear destroys all elements and keeps the capacity.
func (v *Vector[T, S]) Clear() {
	destroyN(v.e.traits, v.Data())
	v.st.setSize(0)
}

// PopBack destroys the last element. It panics on an empty container.
func (v *Vector[T, S]) PopBack() {
	v.mustNotBeEmpty("PopBack")
	n := v.Len()
	destroyAt(v.e.traits, &v.st.data()[n-1])
	v.st.setSize(S(n - 1))
}

// PopBackVal removes the last element and returns it. It panics on an empty
// container. On failure the container is unchanged.
func (v *Vector[T, S]) PopBackVal() (T, error) {
	v.mustNotBeEmpty("PopBackVal")
	n := v.Len()
	var out T
	if err := relocateAt(v.e.traits, &out, &v.st.data()[n-1]); err != nil {
		return out, err
	}
	v.st.setSize(S(n - 1))
	return out, nil
}

// Release destroys all elements and returns the heap block to the
// allocator. The container stays usable and starts over empty.
func (v *Vector[T, S]) Release() {
	v.Clear()
	v.st.release()
}

// Clone returns a container with v's configuration holding copies of v's
// elements. The clone starts with fresh metrics.
func (v *Vector[T, S]) Clone() (*Vector[T, S], error) {
	c := v.newLike()
	if err := c.Append(v.Data()...); err != nil {
		return nil, err
	}
	return c, nil
}

// room makes space for extra more elements.
func (v *Vector[T, S]) room(extra int) error {
	return v.st.adjust(uint64(v.Len())+uint64(extra), false)
}

// snapshot copies src into a temporary slice outside the container's buffer.
func (v *Vector[T, S]) snapshot(src []T) ([]T, error) {
	tmp := make([]T, len(src))
	if err := uninitCopy(v.e.traits, tmp, src); err != nil {
		return nil, err
	}
	return tmp, nil
}

// build runs ctor on the unconstructed slot p and leaves p unconstructed
// when ctor fails.
func build[T any](p *T, ctor func(p *T) error) error {
	if err := ctor(p); err != nil {
		var zero T
		*p = zero
		return err
	}
	return nil
}

func mustCount(count int) {
	if count < 0 {
		panic(fmt.Sprintf("vector: negative count %d", count))
	}
}
