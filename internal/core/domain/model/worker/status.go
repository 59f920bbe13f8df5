package worker

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the observable state of a worker.
//
// Busy is transient: it is set when an order is assigned and restored before
// the synchronous work-completion call returns, so between fulfillment
// cycles only NotWorking and ShiftEnded are durably observable.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// NotWorking means the worker holds no order. It says nothing about the
	// shift window; on-shift eligibility is a separate clock check.
	NotWorking

	// Busy means the worker currently holds an order.
	Busy

	// ShiftEnded means the worker's salary has been settled. Settlement is a
	// manual end-of-shift action, not automatic at shift-end time.
	ShiftEnded
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		NotWorking: "NotWorking",
		Busy:       "Busy",
		ShiftEnded: "ShiftEnded",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != NotWorking && s != Busy && s != ShiftEnded {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
