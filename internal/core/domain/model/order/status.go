package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the fulfillment workflow.
//
// State transitions:
//
//	Created ──> Processing ──> Delivered
//	   ^            │
//	   └────────────┘
//	  (reset for retry)
//
// An order may stay Created across several fulfillment cycles while it waits
// for stock or an on-shift picker; ResetForRetry on the aggregate moves a
// stalled order back to Created.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first submitted.
	// Orders in this status wait in the queue for stock and a picker.
	Created

	// Processing indicates a picker has assembled the order; it now waits
	// for a courier.
	Processing

	// Delivered indicates the courier has handed the order to the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		Processing: "Processing",
		Delivered:  "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "Created",
		Processing: "Processing",
		Delivered:  "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Created, Processing and Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
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

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Created -> Processing (picker completed assembly)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) StartProcessing() (Status, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to start processing", s))
	}

	return Processing, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Processing -> Delivered (courier completed delivery)
//
// Delivered is a final state; nothing transitions out of it.
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Deliver() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver", s))
	}

	return Delivered, nil
}
