package vector

import (
	"errors"
	"testing"
)

var errInjected = errors.New("injected failure")

// item is an element whose lifetime is tracked by a tracker.
type item struct {
	v     int
	alive bool
}

// tracker is a Traits[item] that counts hook calls, reports lifetime
// violations and can fail the k-th fallible hook call once.
type tracker struct {
	t           *testing.T
	relocatable bool

	inits, copies, moves, assigns, moveAssigns, destroys int
	live                                                 int

	calls  int
	failAt int // fail the call with this number; -1 never fails
	failed bool
}

func newTracker(t *testing.T, relocatable bool) *tracker {
	return &tracker{t: t, relocatable: relocatable, failAt: -1}
}

// adopt returns a live element counted by the tracker, for APIs that take
// elements over.
func (tk *tracker) adopt(v int) item {
	tk.live++
	return item{v: v, alive: true}
}

// tmpl returns a live element the tracker does not count, for templates the
// caller keeps.
func tmpl(v int) item { return item{v: v, alive: true} }

func (tk *tracker) failNext(k int) {
	tk.calls = 0
	tk.failAt = k
	tk.failed = false
}

func (tk *tracker) hooks() int {
	return tk.inits + tk.copies + tk.moves + tk.assigns + tk.moveAssigns
}

func (tk *tracker) fail() error {
	n := tk.calls
	tk.calls++
	if n == tk.failAt {
		tk.failAt = -1
		tk.failed = true
		return errInjected
	}
	return nil
}

func (tk *tracker) Relocatable() bool { return tk.relocatable }

func (tk *tracker) Init(p *item) error {
	tk.t.Helper()
	if p.alive {
		tk.t.Errorf("init over live element %d", p.v)
	}
	if err := tk.fail(); err != nil {
		return err
	}
	*p = item{alive: true}
	tk.inits++
	tk.live++
	return nil
}

func (tk *tracker) Copy(dst, src *item) error {
	tk.t.Helper()
	if dst.alive {
		tk.t.Errorf("copy over live element %d", dst.v)
	}
	if !src.alive {
		tk.t.Error("copy from dead element")
	}
	if err := tk.fail(); err != nil {
		return err
	}
	*dst = item{v: src.v, alive: true}
	tk.copies++
	tk.live++
	return nil
}

func (tk *tracker) Move(dst, src *item) error {
	tk.t.Helper()
	if dst.alive {
		tk.t.Errorf("move over live element %d", dst.v)
	}
	if !src.alive {
		tk.t.Error("move from dead element")
	}
	if err := tk.fail(); err != nil {
		return err
	}
	*dst = item{v: src.v, alive: true}
	src.v = -1
	tk.moves++
	tk.live++
	return nil
}

func (tk *tracker) Assign(dst, src *item) error {
	tk.t.Helper()
	if !dst.alive || !src.alive {
		tk.t.Error("assign involving dead element")
	}
	if err := tk.fail(); err != nil {
		return err
	}
	dst.v = src.v
	tk.assigns++
	return nil
}

func (tk *tracker) MoveAssign(dst, src *item) error {
	tk.t.Helper()
	if !dst.alive || !src.alive {
		tk.t.Error("move-assign involving dead element")
	}
	if err := tk.fail(); err != nil {
		return err
	}
	dst.v = src.v
	if dst != src {
		src.v = -1
	}
	tk.moveAssigns++
	return nil
}

func (tk *tracker) Destroy(p *item) {
	tk.t.Helper()
	if !p.alive {
		tk.t.Errorf("double destroy (value %d)", p.v)
	}
	p.alive = false
	tk.destroys++
	tk.live--
}

// checkVector verifies the container's structural invariants: size within
// capacity, a live element in every constructed slot, the zero value in
// every other slot, and no leaked or missing elements.
func checkVector[S Index](t *testing.T, tk *tracker, v *Vector[item, S]) {
	t.Helper()
	n, c := v.Len(), v.Cap()
	if n < 0 || n > c {
		t.Fatalf("size %d outside [0, %d]", n, c)
	}
	b := v.st.data()
	for i := 0; i < n; i++ {
		if !b[i].alive {
			t.Errorf("slot %d of %d not constructed", i, n)
		}
	}
	for i := n; i < c; i++ {
		if b[i] != (item{}) {
			t.Errorf("slot %d beyond size %d not zero: %+v", i, n, b[i])
		}
	}
	if tk.live != n {
		t.Errorf("live elements = %d, want %d", tk.live, n)
	}
}

// values returns the element values of v.
func values[S Index](v *Vector[item, S]) []int {
	out := make([]int, 0, v.Len())
	for x := range v.Values() {
		out = append(out, x.v)
	}
	return out
}

// filled returns a container built by kind holding vals, adopted without
// firing hooks.
func filled[S Index](t *testing.T, tk *tracker, mk func(...Option[item]) *Vector[item, S], vals ...int) *Vector[item, S] {
	t.Helper()
	v := mk(WithTraits[item](tk))
	if err := v.Reserve(len(vals)); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	for _, x := range vals {
		if err := v.PushBack(tk.adopt(x)); err != nil {
			t.Fatalf("push: %v", err)
		}
	}
	return v
}

// kinds lists a constructor per storage strategy, all with room for at
// least 16 elements without allocation in the fixed case.
func kinds[T any]() []struct {
	name string
	mk   func(...Option[T]) *Vector[T, uint32]
} {
	return []struct {
		name string
		mk   func(...Option[T]) *Vector[T, uint32]
	}{
		{"fixed", func(opts ...Option[T]) *Vector[T, uint32] {
			v, err := NewFixed[T, uint32](64, opts...)
			if err != nil {
				panic(err)
			}
			return v
		}},
		{"heap", func(opts ...Option[T]) *Vector[T, uint32] {
			return NewHeap[T, uint32](opts...)
		}},
		{"hybrid", func(opts ...Option[T]) *Vector[T, uint32] {
			v, err := NewSmall[T, uint32](4, opts...)
			if err != nil {
				panic(err)
			}
			return v
		}},
	}
}
