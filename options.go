package vector

import (
	"log/slog"

	"github.com/pavanmanishd/vector/alloc"
)

type options[T any] struct {
	allocator alloc.Allocator[T]
	traits    Traits[T]
	policy    GrowthPolicy
	logger    *slog.Logger
}

// Option configures a container at construction.
type Option[T any] func(*options[T])

// WithAllocator sets the allocator heap blocks come from.
// If nil is passed, alloc.Heap is used.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(o *options[T]) {
		if a == nil {
			a = alloc.Heap[T]{}
		}
		o.allocator = a
	}
}

// WithTraits sets the element lifecycle hooks.
// If nil is passed, Plain is used.
func WithTraits[T any](tr Traits[T]) Option[T] {
	return func(o *options[T]) {
		if tr == nil {
			tr = Plain[T]{}
		}
		o.traits = tr
	}
}

// WithGrowthPolicy sets what a fixed-capacity container does on overflow.
// Growable containers ignore it.
//
// If nil is passed, CheckedGrowth is used.
func WithGrowthPolicy[T any](p GrowthPolicy) Option[T] {
	return func(o *options[T]) {
		if p == nil {
			p = CheckedGrowth{}
		}
		o.policy = p
	}
}

// WithLogger sets the logger that receives capacity events at debug level
// and allocation failures at error level. Containers are silent by default.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = l
	}
}

func buildOptions[T any](opts []Option[T]) options[T] {
	o := options[T]{
		allocator: alloc.Heap[T]{},
		traits:    Plain[T]{},
		policy:    CheckedGrowth{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
