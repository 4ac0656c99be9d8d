package vector

// Relocation primitives. They work on slots of a buffer: a slot is either
// constructed (holds a live element) or unconstructed (holds the zero value).
// Unless noted otherwise, destination and source ranges are disjoint.

// destroyAt ends the lifetime of *p and zeroes the slot.
func destroyAt[T any](tr Traits[T], p *T) {
	tr.Destroy(p)
	var zero T
	*p = zero
}

// destroyN destroys every element of s.
func destroyN[T any](tr Traits[T], s []T) {
	if isPlain(tr) {
		clear(s)
		return
	}
	for i := range s {
		destroyAt(tr, &s[i])
	}
}

// copyAt copy-constructs *src into the unconstructed slot dst. A failed hook
// leaves dst unconstructed.
func copyAt[T any](tr Traits[T], dst, src *T) error {
	if err := tr.Copy(dst, src); err != nil {
		var zero T
		*dst = zero
		return err
	}
	return nil
}

// moveAt move-constructs *src into the unconstructed slot dst.
func moveAt[T any](tr Traits[T], dst, src *T) error {
	if err := tr.Move(dst, src); err != nil {
		var zero T
		*dst = zero
		return err
	}
	return nil
}

// initAt value-initializes the unconstructed slot p.
func initAt[T any](tr Traits[T], p *T) error {
	if err := tr.Init(p); err != nil {
		var zero T
		*p = zero
		return err
	}
	return nil
}

// relocateAt moves *src into the unconstructed slot dst and leaves src
// unconstructed. On failure src is untouched and dst unconstructed.
func relocateAt[T any](tr Traits[T], dst, src *T) error {
	if tr.Relocatable() {
		*dst = *src
		var zero T
		*src = zero
		return nil
	}
	if err := moveAt(tr, dst, src); err != nil {
		return err
	}
	destroyAt(tr, src)
	return nil
}

// uninitCopy copy-constructs src into the unconstructed prefix of dst.
// On failure the constructed prefix is destroyed again.
func uninitCopy[T any](tr Traits[T], dst, src []T) error {
	if isPlain(tr) {
		copy(dst, src)
		return nil
	}
	for i := range src {
		if err := copyAt(tr, &dst[i], &src[i]); err != nil {
			destroyN(tr, dst[:i])
			return err
		}
	}
	return nil
}

// uninitFill copy-constructs *v into every slot of dst.
func uninitFill[T any](tr Traits[T], dst []T, v *T) error {
	if isPlain(tr) {
		for i := range dst {
			dst[i] = *v
		}
		return nil
	}
	for i := range dst {
		if err := copyAt(tr, &dst[i], v); err != nil {
			destroyN(tr, dst[:i])
			return err
		}
	}
	return nil
}

// uninitInit value-initializes every slot of dst.
func uninitInit[T any](tr Traits[T], dst []T) error {
	if isPlain(tr) {
		return nil
	}
	for i := range dst {
		if err := initAt(tr, &dst[i]); err != nil {
			destroyN(tr, dst[:i])
			return err
		}
	}
	return nil
}

// uninitMove move-constructs src into the unconstructed prefix of dst. On
// failure the moved prefix is assigned back to src and destroyed at dst, so
// src holds its original values again.
func uninitMove[T any](tr Traits[T], dst, src []T) error {
	for i := range src {
		if err := moveAt(tr, &dst[i], &src[i]); err != nil {
			unwindMove(tr, dst[:i], src[:i])
			return err
		}
	}
	return nil
}

// unwindMove undoes a partial uninitMove of src into dst.
func unwindMove[T any](tr Traits[T], dst, src []T) {
	for j := range dst {
		_ = tr.MoveAssign(&src[j], &dst[j])
		destroyAt(tr, &dst[j])
	}
}

// relocate moves the constructed src into the unconstructed dst and leaves
// src unconstructed. dst and src must not overlap; moveRaw handles shifts
// within one buffer. Relocatable types are moved with a raw copy. On failure
// src keeps all of its elements and dst stays unconstructed.
func relocate[T any](tr Traits[T], dst, src []T) error {
	if len(src) == 0 {
		return nil
	}
	if tr.Relocatable() {
		copy(dst, src)
		clear(src)
		return nil
	}
	if err := uninitMove(tr, dst, src); err != nil {
		return err
	}
	destroyN(tr, src)
	return nil
}

// moveRaw relocates b[from:from+n] to b[to:to+n] with a raw copy; the ranges
// may overlap. Vacated slots are zeroed.
func moveRaw[T any](b []T, from, to, n int) {
	if n == 0 || from == to {
		return
	}
	copy(b[to:to+n], b[from:from+n])
	if to > from {
		clear(b[from:min(to, from+n)])
	} else {
		clear(b[max(to+n, from) : from+n])
	}
}

// swapAt exchanges two constructed elements.
func swapAt[T any](tr Traits[T], x, y *T) error {
	if tr.Relocatable() {
		*x, *y = *y, *x
		return nil
	}
	var tmp T
	if err := moveAt(tr, &tmp, x); err != nil {
		return err
	}
	if err := tr.MoveAssign(x, y); err != nil {
		_ = tr.MoveAssign(x, &tmp)
		destroyAt(tr, &tmp)
		return err
	}
	err := tr.MoveAssign(y, &tmp)
	destroyAt(tr, &tmp)
	return err
}
