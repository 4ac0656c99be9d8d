package vector

import (
	"log/slog"

	"github.com/pavanmanishd/vector/alloc"
)

// env is the configuration and bookkeeping shared by a container and its
// storage.
type env[T any] struct {
	traits Traits[T]
	alloc  alloc.Allocator[T]
	policy GrowthPolicy
	logger *slog.Logger
	stats  counters
}

func newEnv[T any](opts []Option[T]) *env[T] {
	o := buildOptions(opts)
	return &env[T]{
		traits: o.traits,
		alloc:  o.allocator,
		policy: o.policy,
		logger: o.logger,
	}
}

// derive returns a fresh env with the same configuration and zeroed counters.
func (e *env[T]) derive() *env[T] {
	return &env[T]{traits: e.traits, alloc: e.alloc, policy: e.policy, logger: e.logger}
}

// nextCapacity computes the capacity to grow to from old so that at least
// need elements fit. Without exact it grows by half of old (rounded up) when
// that is larger, clamped to limit. need beyond limit is an *OverflowError.
func nextCapacity(old, need uint64, exact bool, limit uint64) (uint64, error) {
	if need > limit {
		return 0, &OverflowError{Value: need, Max: limit}
	}
	if exact {
		return need, nil
	}
	// old <= math.MaxInt, so this cannot wrap.
	grown := old + (old+1)/2
	return min(max(grown, need), limit), nil
}

func (e *env[T]) allocate(n int) ([]T, error) {
	block, err := e.alloc.Allocate(n)
	if err != nil {
		return nil, &AllocationError{Elements: n, cause: err}
	}
	e.stats.allocs++
	return block, nil
}

func (e *env[T]) deallocate(block []T) {
	if block == nil {
		return
	}
	e.alloc.Deallocate(block)
	e.stats.frees++
}

// reallocate moves the size live elements of block into a block of n
// elements. Relocatable elements use the allocator's Reallocate when it has
// one; otherwise the elements are relocated into a fresh block and the old
// one is released. On failure block is untouched.
func (e *env[T]) reallocate(block []T, size, n int) ([]T, error) {
	if len(block) > 0 && e.traits.Relocatable() {
		if r, ok := e.alloc.(alloc.Reallocator[T]); ok {
			nb, err := r.Reallocate(block, n)
			if err != nil {
				return nil, &AllocationError{Elements: n, cause: err}
			}
			e.stats.reallocs++
			e.stats.relocated += uint64(size)
			return nb, nil
		}
	}
	nb, err := e.allocate(n)
	if err != nil {
		return nil, err
	}
	if err := relocate(e.traits, nb[:size], block[:size]); err != nil {
		e.deallocate(nb)
		return nil, err
	}
	e.stats.relocated += uint64(size)
	e.deallocate(block)
	return nb, nil
}
