package worker

import (
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrShiftIsNotConstructed is returned when attempting to use an improperly
// initialized Shift. Shifts must be created via NewShift.
var ErrShiftIsNotConstructed = errs.NewValueIsRequiredError(
	"shift must be created via NewShift constructor")

// Shift is a worker's time-of-day window, inclusive on both ends.
// It is an immutable value object; the zero value is invalid.
type Shift struct {
	start kernel.TimeOfDay
	end   kernel.TimeOfDay
	guard guard.ConstructorGuard
}

// NewShift creates a Shift spanning [start, end] within one day.
// The end must not be earlier than the start; overnight shifts are not modeled.
func NewShift(start kernel.TimeOfDay, end kernel.TimeOfDay) (Shift, error) {
	if end.Before(start) {
		return Shift{}, errs.NewValueIsInvalidErrorWithCause("shift",
			fmt.Errorf("end %s is before start %s", end, start))
	}

	return Shift{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Shift was created through NewShift.
func (s Shift) Validate() error {
	return s.guard.Validate(ErrShiftIsNotConstructed)
}

// Start returns the first on-shift instant.
func (s Shift) Start() kernel.TimeOfDay {
	return s.start
}

// End returns the last on-shift instant.
func (s Shift) End() kernel.TimeOfDay {
	return s.end
}

// Contains reports whether t falls within the window, boundaries included.
func (s Shift) Contains(t kernel.TimeOfDay) bool {
	return !t.Before(s.start) && !t.After(s.end)
}

// WholeHours returns the number of complete hours between shift start and
// end. Salary settlement pays for whole hours only.
func (s Shift) WholeHours() int {
	return s.end.Sub(s.start) / 3600
}

// String returns the window as "start-end".
// This method implements the fmt.Stringer interface.
func (s Shift) String() string {
	return fmt.Sprintf("%s-%s", s.start, s.end)
}
