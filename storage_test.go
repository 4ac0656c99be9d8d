package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFixed(t *testing.T) {
	v, err := NewFixed[int, uint8](5)
	require.NoError(t, err)
	assert.Equal(t, KindFixed, v.Kind())
	assert.Equal(t, 5, v.Cap())
	assert.Equal(t, 5, v.MaxSize())
	assert.True(t, v.IsSmall())
	assert.True(t, v.Empty())

	_, err = NewFixed[int, uint8](256)
	require.ErrorIs(t, err, ErrIndexOverflow)

	_, err = NewFixed[int, uint8](-1)
	require.Error(t, err)
}

func TestFixedCapacityExceeded(t *testing.T) {
	v, err := NewFixed[int, uint32](2)
	require.NoError(t, err)
	require.NoError(t, v.PushBack(1))
	require.NoError(t, v.PushBack(2))

	err = v.PushBack(3)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	var ce *CapacityError
	require.ErrorAs(t, err, &ce)
	assert.EqualValues(t, 3, ce.Requested)
	assert.EqualValues(t, 2, ce.Capacity)

	require.ErrorIs(t, v.Reserve(3), ErrCapacityExceeded)
	require.ErrorIs(t, v.Resize(4), ErrCapacityExceeded)
	require.NoError(t, v.Reserve(2))
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 2, v.Cap())
	assert.Equal(t, []int{1, 2}, v.Data())
}

func TestFixedUncheckedGrowth(t *testing.T) {
	v, err := NewFixed[int, uint32](1, WithGrowthPolicy[int](UncheckedGrowth{}))
	require.NoError(t, err)
	require.NoError(t, v.PushBack(1))
	assert.Panics(t, func() { _ = v.PushBack(2) })
}

func TestNewSmall(t *testing.T) {
	v, err := NewSmall[int, uint8](0)
	require.NoError(t, err)
	assert.Equal(t, KindHeap, v.Kind(), "zero inline capacity is a heap container")

	_, err = NewSmall[int, uint8](255)
	require.ErrorIs(t, err, ErrIndexOverflow)

	v, err = NewSmall[int, uint8](254)
	require.NoError(t, err)
	assert.Equal(t, KindHybrid, v.Kind())
	assert.Equal(t, 254, v.InlineCap())
	assert.Equal(t, 254, v.Cap())
}

func TestHybridTransitions(t *testing.T) {
	v, err := NewSmall[int, uint32](4)
	require.NoError(t, err)

	require.NoError(t, v.Append(1, 2, 3, 4))
	assert.True(t, v.IsSmall())
	assert.Zero(t, v.Metrics().Allocs)
	inline := &v.st.data()[0]

	require.NoError(t, v.PushBack(5))
	assert.False(t, v.IsSmall())
	assert.Equal(t, 6, v.Cap())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, v.Data())
	assert.Equal(t, make([]int, 4), v.st.(*hybridStorage[int, uint32]).inline, "inline slots are vacated")

	// Large capacity that still exceeds the size: shrink trims the block.
	require.NoError(t, v.ShrinkToFit())
	assert.False(t, v.IsSmall())
	assert.Equal(t, 5, v.Cap())

	v.PopBack()
	require.NoError(t, v.ShrinkToFit())
	assert.True(t, v.IsSmall())
	assert.Equal(t, 4, v.Cap())
	assert.Same(t, inline, &v.Data()[0])
	assert.Equal(t, []int{1, 2, 3, 4}, v.Data())

	m := v.Metrics()
	assert.EqualValues(t, 1, m.ToLarge)
	assert.EqualValues(t, 1, m.ToSmall)
	assert.Equal(t, m.Allocs, m.Frees)

	// Idempotent once small.
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 4, v.Cap())
}

func TestHybridReleaseReturnsToSmall(t *testing.T) {
	v, err := NewSmall[int, uint32](2)
	require.NoError(t, err)
	require.NoError(t, v.Append(1, 2, 3))
	require.False(t, v.IsSmall())

	v.Release()
	assert.True(t, v.IsSmall())
	assert.Zero(t, v.Len())
	assert.Equal(t, 2, v.Cap())
	require.NoError(t, v.PushBack(9))
	assert.Equal(t, []int{9}, v.Data())
}

func TestHybridGrowFailureKeepsInline(t *testing.T) {
	tk := newTracker(t, false)
	v, err := NewSmall[item, uint32](2, WithTraits[item](tk))
	require.NoError(t, err)
	require.NoError(t, v.PushBack(tk.adopt(1)))
	require.NoError(t, v.PushBack(tk.adopt(2)))

	tk.failNext(1)
	err = v.AppendNWith(1, tmpl(3))
	require.ErrorIs(t, err, errInjected)
	assert.True(t, v.IsSmall())
	assert.Equal(t, []int{1, 2}, values(v))
	checkVector(t, tk, v)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "fixed", KindFixed.String())
	assert.Equal(t, "heap", KindHeap.String())
	assert.Equal(t, "hybrid", KindHybrid.String())
	assert.Equal(t, "unknown", Kind(9).String())
}

func TestRangeConstructors(t *testing.T) {
	src := []int{1, 2, 3}

	f, err := NewFixedOf[int, uint8](4, src)
	require.NoError(t, err)
	assert.Equal(t, src, f.Data())
	assert.Equal(t, 4, f.Cap())

	_, err = NewFixedOf[int, uint8](2, src)
	require.ErrorIs(t, err, ErrCapacityExceeded)

	h, err := NewHeapOf[int, uint16](src)
	require.NoError(t, err)
	assert.Equal(t, src, h.Data())
	assert.Equal(t, 3, h.Cap())
	assert.Equal(t, uint64(1), h.Metrics().Allocs)

	s, err := NewSmallOf[int, uint32](4, src)
	require.NoError(t, err)
	assert.True(t, s.IsSmall())
	assert.Equal(t, src, s.Data())

	l, err := NewSmallOf[int, uint32](2, src)
	require.NoError(t, err)
	assert.False(t, l.IsSmall())
	assert.Equal(t, 3, l.Cap())

	e, err := NewHeapOf[int, uint32](nil)
	require.NoError(t, err)
	assert.True(t, e.Empty())
	assert.Zero(t, e.Cap())

	src[0] = 9
	assert.Equal(t, 1, *h.Front(), "elements are copies")
}

func TestRangeConstructorCopyFailure(t *testing.T) {
	tk := newTracker(t, false)
	v, err := NewHeapOf[item, uint32]([]item{tmpl(1), tmpl(2), tmpl(3)}, WithTraits[item](tk))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, values(v))
	checkVector(t, tk, v)

	tk2 := newTracker(t, false)
	tk2.failNext(1)
	_, err = NewSmallOf[item, uint32](4, []item{tmpl(1), tmpl(2)}, WithTraits[item](tk2))
	require.ErrorIs(t, err, errInjected)
	assert.Zero(t, tk2.live)
}
