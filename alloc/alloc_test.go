package alloc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	a int64
	b int32
	c int16
	d int8
}

func TestHeapAllocate(t *testing.T) {
	var h Heap[testStruct]

	b, err := h.Allocate(5)
	require.NoError(t, err)
	assert.Len(t, b, 5)
	for _, s := range b {
		assert.Zero(t, s)
	}

	b, err = h.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, b)

	_, err = h.Allocate(math.MaxInt)
	require.ErrorIs(t, err, ErrOutOfMemory)

	h.Deallocate(b)
}

func TestReallocateFallsBackToCopy(t *testing.T) {
	var h Heap[int]
	b, _ := h.Allocate(3)
	copy(b, []int{1, 2, 3})

	nb, err := Reallocate[int](h, b, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 0, 0}, nb)

	same, err := Reallocate[int](h, nb, 5)
	require.NoError(t, err)
	assert.Same(t, &nb[0], &same[0])
}

func TestReallocateUsesNative(t *testing.T) {
	a := NewArena[int](16)
	b, _ := a.Allocate(2)
	nb, err := Reallocate[int](a, b, 6)
	require.NoError(t, err)
	assert.Same(t, &b[0], &nb[0])
}

func TestFits(t *testing.T) {
	assert.True(t, fits[struct{}](math.MaxInt))
	assert.True(t, fits[int64](1024))
	assert.False(t, fits[int64](math.MaxInt/4))
}
