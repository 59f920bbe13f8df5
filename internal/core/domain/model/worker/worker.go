package worker

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

// hourlyRate is the salary rate in currency units per whole shift hour,
// shared by both roles.
const hourlyRate = 300

// Domain errors shared by both worker roles.
var (
	// ErrClockIsRequired is returned when constructing a worker without a clock.
	ErrClockIsRequired = errs.NewValueIsRequiredError("clock")
	// ErrWorkerIsBusy is returned when assigning an order to a worker that
	// already holds one. Order ownership is exclusive: a worker holds zero
	// or one order at a time.
	ErrWorkerIsBusy = errors.New("worker already holds an order")
	// ErrNoOrderAssigned is returned by CompleteWork when the worker holds no order.
	ErrNoOrderAssigned = errors.New("no order assigned")
)

// Worker is the capability shared by both roles. Picker and Courier are two
// independent types selected by interface dispatch; each owns its own work
// behavior and cost formula, while shift, status and pay handling live in
// the embedded base.
type Worker interface {
	// ID returns the worker's unique identifier.
	ID() kernel.ID
	// Shift returns the worker's time-of-day window.
	Shift() Shift
	// Status returns the worker's current status.
	Status() Status
	// Money returns the worker's settled pay.
	Money() float64
	// IsOnShift reports whether the clock's current time-of-day falls
	// within the worker's shift window, inclusive.
	IsOnShift() bool
	// IsIdle reports whether the worker holds no order.
	IsIdle() bool
	// SettleSalary pays the worker for the whole hours of the shift window
	// and unconditionally sets ShiftEnded, whether or not any work was done.
	SettleSalary() float64
}

// employment carries the state common to both roles: identity, shift window,
// status, the single held order, settled pay and the injected clock.
type employment struct {
	id           kernel.ID
	shift        Shift
	status       Status
	currentOrder *order.Order
	money        float64
	clock        *kernel.Clock
}

func newEmployment(id kernel.ID, shift Shift, clock *kernel.Clock) (employment, error) {
	if err := errors.Join(id.Validate(), shift.Validate()); err != nil {
		return employment{}, err
	}
	if clock == nil {
		return employment{}, ErrClockIsRequired
	}

	return employment{
		id:     id,
		shift:  shift,
		status: NotWorking,
		clock:  clock,
	}, nil
}

// ID returns the worker's unique identifier.
func (e *employment) ID() kernel.ID {
	return e.id
}

// Shift returns the worker's time-of-day window.
func (e *employment) Shift() Shift {
	return e.shift
}

// Status returns the worker's current status.
func (e *employment) Status() Status {
	return e.status
}

// Money returns the worker's settled pay.
func (e *employment) Money() float64 {
	return e.money
}

// CurrentOrder returns the held order, or nil.
func (e *employment) CurrentOrder() *order.Order {
	return e.currentOrder
}

// IsOnShift reports whether the virtual clock's current time-of-day falls
// within [shift start, shift end] inclusive.
func (e *employment) IsOnShift() bool {
	return e.shift.Contains(e.clock.Now())
}

// IsIdle reports whether the worker holds no order.
func (e *employment) IsIdle() bool {
	return e.currentOrder == nil
}

// AssignOrder hands the worker an order and marks it Busy.
// Returns ErrWorkerIsBusy if the worker already holds one.
func (e *employment) AssignOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if e.currentOrder != nil {
		return ErrWorkerIsBusy
	}

	e.currentOrder = o
	e.status = Busy
	return nil
}

// release drops the held order and restores NotWorking. Busy is therefore
// never observable once the synchronous work call returns.
func (e *employment) release() {
	e.currentOrder = nil
	e.status = NotWorking
}

// SettleSalary pays the worker whole shift hours × the hourly rate and
// unconditionally sets ShiftEnded, even if the worker never did any work.
// This is a manual end-of-shift settlement triggered by the driver.
func (e *employment) SettleSalary() float64 {
	e.money = float64(e.shift.WholeHours() * hourlyRate)
	e.status = ShiftEnded
	return e.money
}
