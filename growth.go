package vector

// GrowthPolicy decides what a fixed-capacity container does when an
// operation needs more room than it has. Growable containers never consult it.
type GrowthPolicy interface {
	// Check returns an error when need elements do not fit in capacity.
	Check(need, capacity uint64) error
}

// CheckedGrowth fails with a *CapacityError (matching ErrCapacityExceeded)
// and leaves the container unchanged. It is the default.
type CheckedGrowth struct{}

func (CheckedGrowth) Check(need, capacity uint64) error {
	if need > capacity {
		return &CapacityError{Requested: need, Capacity: capacity}
	}
	return nil
}

// UncheckedGrowth trusts the caller to stay within capacity. Builds with the
// vectordebug tag panic on violations; other builds skip the check and an
// overflowing operation panics when it indexes past the buffer.
type UncheckedGrowth struct{}

func (UncheckedGrowth) Check(need, capacity uint64) error {
	assertf(need <= capacity, "capacity exceeded: need %d, capacity %d", need, capacity)
	return nil
}
