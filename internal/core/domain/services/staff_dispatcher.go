package services

import (
	"warehouse/internal/core/domain/model/worker"
)

// StaffDispatcher is a domain service that selects workers for fulfillment
// work. Selection policy is strict first-fit in roster-registration order:
// the first worker that is on shift and holds no order wins. There is no
// load balancing and no priority by order age or size.
//
// Example usage:
//
//	dispatcher := services.NewStaffDispatcher()
//	picker := dispatcher.FindFreePicker(pickers)
//	if picker == nil {
//	    // no eligible picker this cycle
//	}
type StaffDispatcher struct{}

// NewStaffDispatcher creates a new StaffDispatcher instance.
func NewStaffDispatcher() StaffDispatcher {
	return StaffDispatcher{}
}

// FindFreePicker returns the first picker in roster order that is on shift
// and idle, or nil when none is eligible.
func (d StaffDispatcher) FindFreePicker(pickers []*worker.Picker) *worker.Picker {
	for _, p := range pickers {
		if p.IsOnShift() && p.IsIdle() {
			return p
		}
	}
	return nil
}

// FindFreeCourier returns the first courier in roster order that is on shift
// and idle, or nil when none is eligible.
func (d StaffDispatcher) FindFreeCourier(couriers []*worker.Courier) *worker.Courier {
	for _, c := range couriers {
		if c.IsOnShift() && c.IsIdle() {
			return c
		}
	}
	return nil
}
