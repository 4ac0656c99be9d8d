package alloc

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Limited puts a byte budget in front of another allocator. Requests that
// would exceed the budget fail with ErrBudgetExceeded instead of blocking.
// It is safe for concurrent use when the wrapped allocator is.
type Limited[T any] struct {
	inner Allocator[T]
	limit int64
	sem   *semaphore.Weighted
	used  atomic.Int64
}

// NewLimited wraps inner with a budget of limitBytes. A non-positive limit
// only tracks usage.
func NewLimited[T any](inner Allocator[T], limitBytes int64) *Limited[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	l := &Limited[T]{inner: inner, limit: limitBytes}
	if limitBytes > 0 {
		l.sem = semaphore.NewWeighted(limitBytes)
	}
	return l
}

// Allocate reserves the block's bytes from the budget and forwards to the
// wrapped allocator.
func (l *Limited[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	bytes := sizeOf[T](n)
	if err := l.acquire(bytes); err != nil {
		return nil, err
	}
	block, err := l.inner.Allocate(n)
	if err != nil {
		l.release(bytes)
		return nil, err
	}
	return block, nil
}

// Deallocate forwards to the wrapped allocator and returns the bytes to the budget.
func (l *Limited[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}
	l.inner.Deallocate(block)
	l.release(sizeOf[T](len(block)))
}

// Reallocate charges or refunds the size difference and forwards to the
// wrapped allocator's Reallocate, or copies when it has none.
func (l *Limited[T]) Reallocate(block []T, n int) ([]T, error) {
	if n < 0 {
		n = 0
	}
	delta := sizeOf[T](n) - sizeOf[T](len(block))
	if delta > 0 {
		if err := l.acquire(delta); err != nil {
			return nil, err
		}
	}
	nb, err := Reallocate(l.inner, block, n)
	if err != nil {
		if delta > 0 {
			l.release(delta)
		}
		return nil, err
	}
	if delta < 0 {
		l.release(-delta)
	}
	return nb, nil
}

// Used returns the number of bytes currently charged to the budget.
func (l *Limited[T]) Used() int64 {
	return l.used.Load()
}

// Limit returns the configured budget in bytes, or 0 when unlimited.
func (l *Limited[T]) Limit() int64 {
	return l.limit
}

func (l *Limited[T]) acquire(bytes int64) error {
	if bytes <= 0 {
		return nil
	}
	if l.sem != nil && (bytes > l.limit || !l.sem.TryAcquire(bytes)) {
		return fmt.Errorf("%w: requested %d bytes, %d of %d in use", ErrBudgetExceeded, bytes, l.used.Load(), l.limit)
	}
	l.used.Add(bytes)
	return nil
}

func (l *Limited[T]) release(bytes int64) {
	if bytes <= 0 {
		return
	}
	l.used.Add(-bytes)
	if l.sem != nil {
		l.sem.Release(bytes)
	}
}
