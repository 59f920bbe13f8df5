package kernel

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Clock is the single timing source of a simulation run. It holds a mutable
// virtual time-of-day that is set explicitly by the scenario driver and
// advanced only by work-completion events; nothing in the core reads a wall
// clock.
//
// A Clock is always passed by reference to the components that read or
// advance time, never held as a package global, so multiple independent
// simulation runs can coexist in one process and tests need no real timer.
//
// Within a run the clock is monotonically non-decreasing: Advance only
// accepts non-negative amounts (wrapping at midnight per time-of-day
// arithmetic), and only the driver may overwrite it via SetTime.
type Clock struct {
	now TimeOfDay
}

// NewClock creates a Clock starting at the given instant.
func NewClock(start TimeOfDay) *Clock {
	return &Clock{now: start}
}

// SetTime overwrites the current instant with no validation.
// Intended for the scenario driver only.
func (c *Clock) SetTime(t TimeOfDay) {
	c.now = t
}

// Now returns the current virtual instant.
func (c *Clock) Now() TimeOfDay {
	return c.now
}

// Advance moves the clock forward by a non-negative number of seconds,
// wrapping at midnight. There is no upper bound; amounts beyond a day wrap
// as many times as they span. Returns an error for negative amounts;
// advancement must never run time backwards.
func (c *Clock) Advance(seconds int) error {
	if seconds < 0 {
		return errs.NewValueIsInvalidErrorWithCause("seconds",
			fmt.Errorf("%d is negative, advancement cannot run time backwards", seconds))
	}

	c.now = c.now.Add(seconds)
	return nil
}
