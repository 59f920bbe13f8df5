package kernel

import (
	"fmt"
	"time"

	"warehouse/internal/pkg/errs"
)

// secondsPerDay is the wrap-around modulus for time-of-day arithmetic.
const secondsPerDay = 24 * 60 * 60

// TimeOfDay is an instant within a single day, stored as whole seconds since
// midnight. It is an immutable value object with no calendar semantics: the
// simulation tracks time-of-day only, and arithmetic wraps at midnight.
//
// The zero value is a valid instant (00:00:00), so TimeOfDay carries no
// constructor guard.
type TimeOfDay struct {
	seconds int
}

// NewTimeOfDay creates a TimeOfDay from hour, minute and second components.
// Returns an error if any component is outside its conventional range.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("second", second, 0, 59)
	}

	return TimeOfDay{seconds: hour*3600 + minute*60 + second}, nil
}

// ParseTimeOfDay parses "HH:MM:SS" or "HH:MM" into a TimeOfDay.
// Used to read shift windows and timeline instants from configuration.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
		}
	}
	return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause(
		"time of day", fmt.Errorf("%q is not in HH:MM[:SS] form", s))
}

// Hour returns the hour component [0..23].
func (t TimeOfDay) Hour() int {
	return t.seconds / 3600
}

// Minute returns the minute component [0..59].
func (t TimeOfDay) Minute() int {
	return (t.seconds % 3600) / 60
}

// Second returns the second component [0..59].
func (t TimeOfDay) Second() int {
	return t.seconds % 60
}

// SecondsOfDay returns the instant as whole seconds since midnight.
func (t TimeOfDay) SecondsOfDay() int {
	return t.seconds
}

// Add returns the instant moved forward by the given number of seconds,
// wrapping at midnight. Negative amounts wrap backwards the same way.
func (t TimeOfDay) Add(seconds int) TimeOfDay {
	s := (t.seconds + seconds) % secondsPerDay
	if s < 0 {
		s += secondsPerDay
	}
	return TimeOfDay{seconds: s}
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.seconds < other.seconds
}

// After reports whether t is strictly later in the day than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.seconds > other.seconds
}

// IsEqual reports whether two instants denote the same second of the day.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.seconds == other.seconds
}

// Sub returns the number of seconds from other to t. The result is negative
// when t is earlier in the day than other.
func (t TimeOfDay) Sub(other TimeOfDay) int {
	return t.seconds - other.seconds
}

// String returns the instant in "HH:MM:SS" form.
// This method implements the fmt.Stringer interface.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}
