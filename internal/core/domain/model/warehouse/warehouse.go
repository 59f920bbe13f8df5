package warehouse

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/domain/model/supplier"
	"warehouse/internal/core/domain/model/worker"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// supplyBuffer is the fixed safety margin added to every restock request on
// top of the observed shortfall.
const supplyBuffer = 10

// Domain errors for warehouse operations.
var (
	// ErrWarehouseIsNotConstructed is returned when using an improperly initialized Warehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")
	// ErrClockIsRequired is returned when constructing a warehouse without a clock.
	ErrClockIsRequired = errs.NewValueIsRequiredError("clock")
	// ErrLedgerIsRequired is returned when constructing a warehouse without a ledger.
	ErrLedgerIsRequired = errs.NewValueIsRequiredError("ledger")
)

// Warehouse is the fulfillment engine: the aggregate root owning the stock
// ledger, the order queue and the rosters of suppliers, pickers and
// couriers. Its CompleteOrders cycle decides what gets processed, what gets
// deferred, and how simulated time elapses as a side effect of work.
//
// Ordering guarantees within one cycle: orders are evaluated in queue
// order, and within one order's evaluation restock requests happen before
// any assignment attempt. The cycle always runs to completion; every
// failure class is absorbed locally and surfaced as an Event.
type Warehouse struct {
	id       kernel.ID
	location kernel.Location
	ledger   *stock.Ledger
	clock    *kernel.Clock

	suppliers []*supplier.Supplier
	pickers   []*worker.Picker
	couriers  []*worker.Courier
	queue     []*order.Order

	dispatcher services.StaffDispatcher
	guard      guard.ConstructorGuard
}

// NewWarehouse creates a Warehouse at the given position, owning the given
// ledger and reading the given virtual clock. Rosters start empty.
func NewWarehouse(id kernel.ID, location kernel.Location, ledger *stock.Ledger, clock *kernel.Clock) (*Warehouse, error) {
	if err := errors.Join(id.Validate(), location.Validate()); err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, ErrLedgerIsRequired
	}
	if clock == nil {
		return nil, ErrClockIsRequired
	}

	return &Warehouse{
		id:         id,
		location:   location,
		ledger:     ledger,
		clock:      clock,
		dispatcher: services.NewStaffDispatcher(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Warehouse was created through NewWarehouse.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.ID {
	return w.id
}

// Location returns the warehouse's fixed position.
func (w *Warehouse) Location() kernel.Location {
	return w.location
}

// Ledger returns the warehouse's stock ledger.
func (w *Warehouse) Ledger() *stock.Ledger {
	return w.ledger
}

// Clock returns the warehouse's virtual clock.
func (w *Warehouse) Clock() *kernel.Clock {
	return w.clock
}

// AddSupplier registers a restock source. Roster order matters: restock
// requests go to the first supplier bound to the product.
func (w *Warehouse) AddSupplier(s *supplier.Supplier) error {
	if err := s.Validate(); err != nil {
		return err
	}

	w.suppliers = append(w.suppliers, s)
	return nil
}

// AddPicker registers a picker. Roster order is the first-fit scan order.
func (w *Warehouse) AddPicker(p *worker.Picker) error {
	if p == nil {
		return errs.NewValueIsRequiredError("picker")
	}

	w.pickers = append(w.pickers, p)
	return nil
}

// AddCourier registers a courier. Roster order is the first-fit scan order.
func (w *Warehouse) AddCourier(c *worker.Courier) error {
	if c == nil {
		return errs.NewValueIsRequiredError("courier")
	}

	w.couriers = append(w.couriers, c)
	return nil
}

// Workers returns both rosters behind the shared Worker capability,
// pickers first, in registration order.
func (w *Warehouse) Workers() []worker.Worker {
	out := make([]worker.Worker, 0, len(w.pickers)+len(w.couriers))
	for _, p := range w.pickers {
		out = append(out, p)
	}
	for _, c := range w.couriers {
		out = append(out, c)
	}
	return out
}

// SubmitOrder appends a customer order to the fulfillment queue.
// The order must belong to this warehouse.
func (w *Warehouse) SubmitOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.WarehouseID().IsEqual(w.id) {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("order %s belongs to warehouse %s, not %s", o.ID(), o.WarehouseID(), w.id))
	}

	w.queue = append(w.queue, o)
	return nil
}

// QueueLength returns the number of orders waiting for a future cycle.
func (w *Warehouse) QueueLength() int {
	return len(w.queue)
}

// PendingOrders returns a snapshot of the queue in arrival order.
func (w *Warehouse) PendingOrders() []*order.Order {
	out := make([]*order.Order, len(w.queue))
	copy(out, w.queue)
	return out
}

// DeliverSupply lets a registered supplier deliver directly, outside the
// cycle's shortfall path. Scenario drivers use it to stage stock at chosen
// simulated instants. Returns the amount actually delivered.
func (w *Warehouse) DeliverSupply(supplierID kernel.ID, amount int) (int, error) {
	for _, s := range w.suppliers {
		if s.ID().IsEqual(supplierID) {
			return s.Deliver(w.ledger, amount)
		}
	}
	return 0, errs.NewObjectNotFoundError("supplierID", supplierID.String())
}

// SettleSalaries settles every rostered worker, pickers first, and returns
// the payslips. Settlement is unconditional: workers that never handled an
// order are paid for their shift window all the same.
func (w *Warehouse) SettleSalaries() []Payslip {
	slips := make([]Payslip, 0, len(w.pickers)+len(w.couriers))
	for _, p := range w.pickers {
		slips = append(slips, Payslip{WorkerID: p.ID(), Role: "picker", Amount: p.SettleSalary()})
	}
	for _, c := range w.couriers {
		slips = append(slips, Payslip{WorkerID: c.ID(), Role: "courier", Amount: c.SettleSalary()})
	}
	return slips
}

// CompleteOrders runs one fulfillment cycle over the entire queue.
//
// The queue is drained up front; each order is then evaluated in arrival
// order:
//
//  1. Orders already Processing (assembled in an earlier cycle but left
//     without a courier) skip the stock phase and go straight to courier
//     assignment.
//  2. Every product of the order's original line items is checked for a
//     shortfall against the ledger. A shortfall triggers a restock request
//     of shortfall+10 units to the first supplier bound to the product.
//     A product with no bound supplier defers the order outright; any
//     restock request defers it until the next cycle. Stock that arrived
//     this pass is deliberately not committed in the same pass, modeling
//     restock lead time.
//  3. With stock sufficient and no restock triggered, the order's current
//     items are reconciled (dry-run trim) against the ledger. An order with
//     nothing left is cancelled and dropped; otherwise a picker and then a
//     courier are assigned first-fit.
//
// Orders that cannot make progress (no supplier, awaiting restock, no
// idle on-shift picker or courier, or a stock race during assembly) are
// re-queued for a later cycle in their relative order. A cycle over an
// empty queue is a no-op on stock, clock and worker state.
func (w *Warehouse) CompleteOrders() CycleResult {
	res := CycleResult{}

	pending := w.queue
	w.queue = nil

	for _, o := range pending {
		w.completeOrder(o, &res)
	}

	res.Requeued = len(w.queue)
	return res
}

func (w *Warehouse) completeOrder(o *order.Order, res *CycleResult) {
	if o.Status() == order.Processing {
		w.deliverOrder(o, res)
		return
	}

	needSupply := false
	missingSupplier := false

	for p, required := range o.OriginalItems() {
		available := w.ledger.Available(p)
		if available < required {
			needSupply = true
			if !w.requestSupply(p, required-available+supplyBuffer, res) {
				missingSupplier = true
			}
		}
	}

	o.SetEnoughStock(!needSupply)

	switch {
	case missingSupplier:
		w.requeue(o, DeferredMissingSupplier, res)
	case needSupply:
		w.requeue(o, DeferredAwaitingRestock, res)
	default:
		if !o.ReconcileAvailability(w.ledger) {
			res.Cancelled++
			w.emit(res, Event{Kind: EventOrderCancelled, OrderID: o.ID().String(), Partial: o.IsPartial()})
			return
		}
		w.assembleOrder(o, res)
	}
}

// requestSupply scans the supplier roster for the first supplier bound to
// the product and delegates delivery to it. Returns whether a supplier was
// found, not whether the full amount arrived; a capped supplier may
// deliver less or nothing, which the next cycle's availability check
// discovers.
func (w *Warehouse) requestSupply(p product.Product, amount int, res *CycleResult) bool {
	for _, s := range w.suppliers {
		if !s.Product().IsEqual(p) {
			continue
		}

		w.emit(res, Event{
			Kind: EventSupplyRequested, SupplierID: s.ID().String(),
			Product: p.Name(), Quantity: amount,
		})

		delivered, err := s.Deliver(w.ledger, amount)
		if err != nil || delivered == 0 {
			w.emit(res, Event{
				Kind: EventSupplierExhausted, SupplierID: s.ID().String(), Product: p.Name(),
			})
			return true
		}

		w.emit(res, Event{
			Kind: EventSupplyDelivered, SupplierID: s.ID().String(),
			Product: p.Name(), Quantity: delivered,
		})
		return true
	}

	w.emit(res, Event{Kind: EventSupplierMissing, Product: p.Name()})
	return false
}

// assembleOrder hands the order to the first free on-shift picker and, when
// assembly succeeds, on to a courier. A picker abort on a stock race resets
// the order and re-queues it for another attempt.
func (w *Warehouse) assembleOrder(o *order.Order, res *CycleResult) {
	picker := w.dispatcher.FindFreePicker(w.pickers)
	if picker == nil {
		w.requeue(o, DeferredNoPicker, res)
		return
	}

	if err := picker.AssignOrder(o); err != nil {
		w.requeue(o, DeferredNoPicker, res)
		return
	}

	report, err := picker.CompleteWork()
	if err != nil {
		o.ResetForRetry()
		w.emit(res, Event{Kind: EventPickerAborted, OrderID: o.ID().String(), WorkerID: picker.ID().String()})
		w.requeue(o, DeferredStockRace, res)
		return
	}

	w.emit(res, Event{
		Kind: EventOrderPicked, OrderID: o.ID().String(),
		WorkerID: picker.ID().String(), Quantity: report.Units, Partial: o.IsPartial(),
	})

	w.deliverOrder(o, res)
}

// deliverOrder hands a Processing order to the first free on-shift courier.
// Without one the order is re-queued still assembled, so a later cycle can
// retry delivery without touching stock again.
func (w *Warehouse) deliverOrder(o *order.Order, res *CycleResult) {
	courier := w.dispatcher.FindFreeCourier(w.couriers)
	if courier == nil {
		w.requeue(o, DeferredNoCourier, res)
		return
	}

	if err := courier.AssignOrder(o); err != nil {
		w.requeue(o, DeferredNoCourier, res)
		return
	}

	report, err := courier.CompleteWork()
	if err != nil {
		w.requeue(o, DeferredNoCourier, res)
		return
	}

	res.Delivered++
	res.Events = append(res.Events, Event{
		Kind: EventOrderDelivered, OrderID: o.ID().String(),
		WorkerID: courier.ID().String(), Partial: o.IsPartial(), At: report.DeliveredAt,
	})
	res.Events = append(res.Events, Event{
		Kind: EventCourierReturned, OrderID: o.ID().String(),
		WorkerID: courier.ID().String(), At: report.ReturnedAt,
	})
}

// requeue puts back an order for the next cycle and records why.
func (w *Warehouse) requeue(o *order.Order, reason string, res *CycleResult) {
	w.queue = append(w.queue, o)
	w.emit(res, Event{Kind: EventOrderDeferred, OrderID: o.ID().String(), Reason: reason})
}

// emit stamps the event with the current virtual time. Events carrying a
// more precise instant (delivery and return) are appended directly, so a
// timestamp of exactly midnight survives.
func (w *Warehouse) emit(res *CycleResult, e Event) {
	e.At = w.clock.Now()
	res.Events = append(res.Events, e)
}
