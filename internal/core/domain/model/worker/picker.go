package worker

import (
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/errs"
)

// assemblySecondsPerUnit is the virtual time a picker spends per assembled unit.
const assemblySecondsPerUnit = 45

// ErrLedgerIsRequired is returned when constructing a picker without a ledger.
var ErrLedgerIsRequired = errs.NewValueIsRequiredError("ledger")

// Picker assembles orders from the warehouse stock. It holds a reference to
// the warehouse's ledger and the injected clock; assembling an order
// decrements the ledger and advances virtual time in proportion to the
// number of units picked.
type Picker struct {
	employment
	ledger *stock.Ledger
}

// AssemblyReport describes a completed assembly.
type AssemblyReport struct {
	OrderID    kernel.ID
	Units      int
	FinishedAt kernel.TimeOfDay
}

// NewPicker creates a Picker with the given shift window, bound to the
// warehouse ledger it assembles from.
func NewPicker(id kernel.ID, shift Shift, clock *kernel.Clock, ledger *stock.Ledger) (*Picker, error) {
	e, err := newEmployment(id, shift, clock)
	if err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, ErrLedgerIsRequired
	}

	return &Picker{employment: e, ledger: ledger}, nil
}

// CompleteWork assembles the held order.
//
// The stock check is all-or-nothing before any mutation: if any current line
// item is not fully covered by the ledger, the order is released untouched
// (no stock is decremented, the order status stays Created) and a
// stock.ErrInsufficientStock error is returned so the engine can decide the
// retry policy.
//
// On success every line item is decremented from the ledger, the order
// becomes Processing, and the clock advances by 45 seconds per assembled
// unit. The held order is released either way.
func (p *Picker) CompleteWork() (AssemblyReport, error) {
	o := p.currentOrder
	if o == nil {
		return AssemblyReport{}, ErrNoOrderAssigned
	}

	defer p.release()

	if o.Status() != order.Created {
		return AssemblyReport{}, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s is not assemblable", o.Status()))
	}

	items := o.CurrentItems()
	if err := p.ledger.Commit(items); err != nil {
		return AssemblyReport{}, fmt.Errorf("assembly of order %s aborted: %w", o.ID(), err)
	}

	totalUnits := 0
	for _, qty := range items {
		totalUnits += qty
	}

	if err := o.StartProcessing(); err != nil {
		return AssemblyReport{}, err
	}

	if err := p.clock.Advance(assemblySecondsPerUnit * totalUnits); err != nil {
		return AssemblyReport{}, err
	}

	return AssemblyReport{
		OrderID:    o.ID(),
		Units:      totalUnits,
		FinishedAt: p.clock.Now(),
	}, nil
}
