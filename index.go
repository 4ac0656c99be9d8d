package vector

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Index is the unsigned integer type a container stores its size and
// capacity in. Narrow index types shrink the container header; the maximum
// element count is the type's maximum value (capped at math.MaxInt).
type Index interface {
	constraints.Unsigned
}

// maxIndex returns the largest element count representable by S and by Go slices.
func maxIndex[S Index]() uint64 {
	m := uint64(^S(0))
	if m > math.MaxInt {
		m = math.MaxInt
	}
	return m
}

// FitsIndex reports whether n elements can be counted with index type S.
// It is the runtime counterpart of choosing the smallest index type for a
// fixed capacity.
func FitsIndex[S Index](n int) bool {
	return n >= 0 && uint64(n) <= maxIndex[S]()
}

// toIndex converts n to S, failing with an *OverflowError when it does not fit.
func toIndex[S Index](n uint64) (S, error) {
	if n > maxIndex[S]() {
		return 0, &OverflowError{Value: n, Max: maxIndex[S]()}
	}
	return S(n), nil
}
