package vector

// Traits describes how a container creates, moves and ends the lifetime of
// its elements. Every slot a container has not constructed holds the zero
// value of T.
//
// Hooks that return an error abort the current operation; the container then
// restores the guarantee documented for that operation before returning the
// error unchanged. Destroy must not fail.
type Traits[T any] interface {
	// Relocatable reports whether move-construct followed by destroy of the
	// source is equivalent to a raw copy of the value. When true, the
	// container moves elements with the builtin copy and fires no hooks.
	Relocatable() bool
	// Init value-initializes the unconstructed slot p.
	Init(p *T) error
	// Copy constructs a copy of *src in the unconstructed slot dst.
	Copy(dst, src *T) error
	// Move constructs *src into the unconstructed slot dst. src stays
	// constructed, in a moved-from state.
	Move(dst, src *T) error
	// Assign copies *src over the constructed element dst.
	Assign(dst, src *T) error
	// MoveAssign moves *src over the constructed element dst.
	MoveAssign(dst, src *T) error
	// Destroy ends the lifetime of *p and leaves the zero value behind.
	Destroy(p *T)
}

// Plain is the default Traits: every hook is a plain assignment, nothing
// fails and elements are relocatable. Containers recognize Plain and copy
// whole ranges with the builtin copy.
type Plain[T any] struct{}

func (Plain[T]) Relocatable() bool { return true }

func (Plain[T]) Init(p *T) error {
	var zero T
	*p = zero
	return nil
}

func (Plain[T]) Copy(dst, src *T) error {
	*dst = *src
	return nil
}

func (Plain[T]) Move(dst, src *T) error {
	*dst = *src
	return nil
}

func (Plain[T]) Assign(dst, src *T) error {
	*dst = *src
	return nil
}

func (Plain[T]) MoveAssign(dst, src *T) error {
	*dst = *src
	return nil
}

func (Plain[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// Funcs builds a Traits from optional hooks. A nil hook behaves like Plain.
// Types are not relocatable unless TriviallyRelocatable is set, so a custom
// Move or Destroy hook is honored by default.
type Funcs[T any] struct {
	TriviallyRelocatable bool

	InitFn       func(p *T) error
	CopyFn       func(dst, src *T) error
	MoveFn       func(dst, src *T) error
	AssignFn     func(dst, src *T) error
	MoveAssignFn func(dst, src *T) error
	DestroyFn    func(p *T)
}

func (f Funcs[T]) Relocatable() bool { return f.TriviallyRelocatable }

func (f Funcs[T]) Init(p *T) error {
	if f.InitFn != nil {
		return f.InitFn(p)
	}
	return Plain[T]{}.Init(p)
}

func (f Funcs[T]) Copy(dst, src *T) error {
	if f.CopyFn != nil {
		return f.CopyFn(dst, src)
	}
	*dst = *src
	return nil
}

func (f Funcs[T]) Move(dst, src *T) error {
	if f.MoveFn != nil {
		return f.MoveFn(dst, src)
	}
	*dst = *src
	return nil
}

func (f Funcs[T]) Assign(dst, src *T) error {
	if f.AssignFn != nil {
		return f.AssignFn(dst, src)
	}
	*dst = *src
	return nil
}

func (f Funcs[T]) MoveAssign(dst, src *T) error {
	if f.MoveAssignFn != nil {
		return f.MoveAssignFn(dst, src)
	}
	*dst = *src
	return nil
}

func (f Funcs[T]) Destroy(p *T) {
	if f.DestroyFn != nil {
		f.DestroyFn(p)
	}
	var zero T
	*p = zero
}

// isPlain reports whether tr is the hook-free Plain traits, for which whole
// ranges may be copied and filled without calling hooks.
func isPlain[T any](tr Traits[T]) bool {
	_, ok := tr.(Plain[T])
	return ok
}
