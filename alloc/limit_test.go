package alloc

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitedBudget(t *testing.T) {
	l := NewLimited[int64](nil, 80) // ten elements

	b1, err := l.Allocate(6)
	require.NoError(t, err)
	assert.EqualValues(t, 48, l.Used())

	_, err = l.Allocate(5)
	require.ErrorIs(t, err, ErrBudgetExceeded)
	assert.EqualValues(t, 48, l.Used(), "failed request must not be charged")

	b2, err := l.Allocate(4)
	require.NoError(t, err)
	assert.EqualValues(t, 80, l.Used())

	l.Deallocate(b1)
	l.Deallocate(b2)
	assert.Zero(t, l.Used())
	assert.EqualValues(t, 80, l.Limit())
}

func TestLimitedRequestLargerThanBudget(t *testing.T) {
	l := NewLimited[byte](nil, 16)
	_, err := l.Allocate(17)
	require.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Zero(t, l.Used())
}

func TestLimitedReallocate(t *testing.T) {
	l := NewLimited[int32](NewArena[int32](64), 64) // sixteen elements

	b, err := l.Allocate(4)
	require.NoError(t, err)
	b[0] = 11

	b, err = l.Reallocate(b, 12)
	require.NoError(t, err)
	assert.EqualValues(t, 48, l.Used())
	assert.EqualValues(t, 11, b[0])

	_, err = l.Reallocate(b, 20)
	require.ErrorIs(t, err, ErrBudgetExceeded)
	assert.EqualValues(t, 48, l.Used())

	b, err = l.Reallocate(b, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 8, l.Used())
	assert.Len(t, b, 2)
}

type failingAllocator[T any] struct{}

func (failingAllocator[T]) Allocate(int) ([]T, error) { return nil, ErrOutOfMemory }
func (failingAllocator[T]) Deallocate([]T)            {}

func TestLimitedRefundsOnInnerFailure(t *testing.T) {
	l := NewLimited[int](failingAllocator[int]{}, 1024)
	_, err := l.Allocate(4)
	require.True(t, errors.Is(err, ErrOutOfMemory))
	assert.Zero(t, l.Used())
}

func TestLimitedUnlimitedTracksUsage(t *testing.T) {
	l := NewLimited[int64](nil, 0)
	b, err := l.Allocate(1 << 10)
	require.NoError(t, err)
	assert.EqualValues(t, 8<<10, l.Used())
	l.Deallocate(b)
	assert.Zero(t, l.Used())
}

func TestLimitedConcurrent(t *testing.T) {
	l := NewLimited[int64](NewSafeArena[int64](0), 8*1000)

	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0
	for g := 0; g < 20; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if _, err := l.Allocate(1); err == nil {
					mu.Lock()
					granted++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, granted)
	assert.EqualValues(t, 8*1000, l.Used())
}
