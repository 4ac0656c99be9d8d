package vector

// In-buffer shifting helpers. b is the full buffer of a container, with its
// constructed elements in a prefix.

// shiftRight moves the n elements at b[pos:] count slots to the right, into
// the unconstructed slots following them. b[pos:pos+count] becomes the gap
// to fill: for relocatable types every gap slot is unconstructed; otherwise
// the first min(n, count) gap slots hold moved-from elements and the rest
// are unconstructed (see gapBuilt). On failure the original sequence is
// restored.
func shiftRight[T any](tr Traits[T], b []T, pos, n, count int) error {
	if n == 0 || count == 0 {
		return nil
	}
	if tr.Relocatable() {
		moveRaw(b, pos, pos+count, n)
		return nil
	}
	last := pos + n
	if count >= n {
		return uninitMove(tr, b[pos+count:last+count], b[pos:last])
	}
	// The last count elements land on unconstructed slots, the rest are
	// move-assigned backward over constructed ones.
	if err := uninitMove(tr, b[last:last+count], b[last-count:last]); err != nil {
		return err
	}
	for i := last - count - 1; i >= pos; i-- {
		if err := tr.MoveAssign(&b[i+count], &b[i]); err != nil {
			for j := i + 1; j < last-count; j++ {
				_ = tr.MoveAssign(&b[j], &b[j+count])
			}
			unwindMove(tr, b[last:last+count], b[last-count:last])
			return err
		}
	}
	return nil
}

// gapBuilt returns the end of the constructed prefix of the gap left by
// shiftRight(pos, n, count).
func gapBuilt[T any](tr Traits[T], pos, n, count int) int {
	if tr.Relocatable() {
		return pos
	}
	return pos + min(n, count)
}

// unshiftOne undoes shiftRight(pos, n, 1) when the gap slot b[pos] is in the
// state shiftRight left it.
func unshiftOne[T any](tr Traits[T], b []T, pos, n int) {
	if n == 0 {
		return
	}
	if tr.Relocatable() {
		moveRaw(b, pos+1, pos, n)
		return
	}
	for i := pos; i < pos+n; i++ {
		_ = tr.MoveAssign(&b[i], &b[i+1])
	}
	destroyAt(tr, &b[pos+n])
}

// closeGap relocates the n elements at b[pos+count:] back to b[pos:] once
// the gap is entirely unconstructed. It returns how many elements made it
// back; any element that could not be moved is destroyed.
func closeGap[T any](tr Traits[T], b []T, pos, count, n int) int {
	if tr.Relocatable() {
		moveRaw(b, pos+count, pos, n)
		return n
	}
	for i := 0; i < n; i++ {
		if err := relocateAt(tr, &b[pos+i], &b[pos+count+i]); err != nil {
			destroyN(tr, b[pos+count+i:pos+count+n])
			return i
		}
	}
	return n
}

// fillAfterShift fills the gap b[pos:pos+count] left by shiftRight with
// copies of *v. It returns the end of the constructed prefix of the gap,
// which on failure tells the caller what to destroy.
func fillAfterShift[T any](tr Traits[T], b []T, pos, n, count int, v *T) (int, error) {
	if tr.Relocatable() {
		if err := uninitFill(tr, b[pos:pos+count], v); err != nil {
			return pos, err
		}
		return pos + count, nil
	}
	if n < count {
		if err := uninitFill(tr, b[pos+n:pos+count], v); err != nil {
			return pos + n, err
		}
		return pos + count, assignFill(tr, b[pos:pos+n], v)
	}
	return pos + count, assignFill(tr, b[pos:pos+count], v)
}

// copyAfterShift copies src into the gap left by shiftRight(pos, n, len(src)).
func copyAfterShift[T any](tr Traits[T], b []T, pos, n int, src []T) (int, error) {
	count := len(src)
	if tr.Relocatable() {
		if err := uninitCopy(tr, b[pos:pos+count], src); err != nil {
			return pos, err
		}
		return pos + count, nil
	}
	if n < count {
		if err := assignRange(tr, b[pos:pos+n], src[:n]); err != nil {
			return pos + n, err
		}
		if err := uninitCopy(tr, b[pos+n:pos+count], src[n:]); err != nil {
			return pos + n, err
		}
		return pos + count, nil
	}
	return pos + count, assignRange(tr, b[pos:pos+count], src)
}

// assignFill copy-assigns *v over every constructed element of dst.
func assignFill[T any](tr Traits[T], dst []T, v *T) error {
	if isPlain(tr) {
		for i := range dst {
			dst[i] = *v
		}
		return nil
	}
	for i := range dst {
		if err := tr.Assign(&dst[i], v); err != nil {
			return err
		}
	}
	return nil
}

// assignRange copy-assigns src over the constructed prefix of dst.
func assignRange[T any](tr Traits[T], dst, src []T) error {
	if isPlain(tr) {
		copy(dst, src)
		return nil
	}
	for i := range src {
		if err := tr.Assign(&dst[i], &src[i]); err != nil {
			return err
		}
	}
	return nil
}

// eraseAt removes b[pos] and shifts the count elements after it one slot
// left. On failure every slot up to pos+count is still constructed.
func eraseAt[T any](tr Traits[T], b []T, pos, count int) error {
	if tr.Relocatable() {
		destroyAt(tr, &b[pos])
		moveRaw(b, pos+1, pos, count)
		return nil
	}
	for i := pos; i < pos+count; i++ {
		if err := tr.MoveAssign(&b[i], &b[i+1]); err != nil {
			return err
		}
	}
	destroyAt(tr, &b[pos+count])
	return nil
}

// eraseN removes the n elements at b[first:] and shifts the count elements
// after them left.
func eraseN[T any](tr Traits[T], b []T, first, n, count int) error {
	if n == 0 {
		return nil
	}
	if tr.Relocatable() {
		destroyN(tr, b[first:first+n])
		moveRaw(b, first+n, first, count)
		return nil
	}
	for i := 0; i < count; i++ {
		if err := tr.MoveAssign(&b[first+i], &b[first+n+i]); err != nil {
			return err
		}
	}
	destroyN(tr, b[first+count:first+count+n])
	return nil
}

// moveN moves the n constructed elements of src over dst, whose first dn
// slots are constructed. Afterwards dst holds exactly n elements and src is
// unconstructed.
func moveN[T any](tr Traits[T], src []T, n int, dst []T, dn int) error {
	if tr.Relocatable() {
		destroyN(tr, dst[:dn])
		return relocate(tr, dst[:n], src[:n])
	}
	common := min(n, dn)
	for i := 0; i < common; i++ {
		if err := tr.MoveAssign(&dst[i], &src[i]); err != nil {
			return err
		}
	}
	if dn < n {
		if err := uninitMove(tr, dst[dn:n], src[dn:n]); err != nil {
			return err
		}
	} else {
		destroyN(tr, dst[n:dn])
	}
	destroyN(tr, src[:n])
	return nil
}

// swapDeep exchanges the contents of a (n1 elements) and b (n2 elements)
// element by element over their common prefix, then relocates the longer
// side's surplus into the shorter side's buffer. Both buffers must already
// be large enough.
func swapDeep[T any](tr Traits[T], a []T, n1 int, b []T, n2 int) error {
	common := min(n1, n2)
	for i := 0; i < common; i++ {
		if err := swapAt(tr, &a[i], &b[i]); err != nil {
			return err
		}
	}
	if n1 < n2 {
		return relocate(tr, a[n1:n2], b[n1:n2])
	}
	return relocate(tr, b[n2:n1], a[n2:n1])
}
