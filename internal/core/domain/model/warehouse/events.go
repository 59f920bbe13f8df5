package warehouse

import (
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
)

// EventKind classifies the structured events a fulfillment cycle emits.
// Events replace console side effects: the engine stays free of logging and
// the application layer decides how to surface them.
type EventKind string

const (
	// EventSupplyRequested records a restock request sent to a bound supplier.
	EventSupplyRequested EventKind = "supply_requested"
	// EventSupplyDelivered records the amount a supplier actually delivered.
	EventSupplyDelivered EventKind = "supply_delivered"
	// EventSupplierExhausted records a wasted trip by a depleted capped supplier.
	EventSupplierExhausted EventKind = "supplier_exhausted"
	// EventSupplierMissing records a product with no registered supplier.
	EventSupplierMissing EventKind = "supplier_missing"
	// EventOrderDeferred records an order re-queued for a later cycle.
	EventOrderDeferred EventKind = "order_deferred"
	// EventOrderCancelled records an order dropped with no deliverable items.
	EventOrderCancelled EventKind = "order_cancelled"
	// EventOrderPicked records a completed assembly.
	EventOrderPicked EventKind = "order_picked"
	// EventOrderDelivered records a completed hand-off to the customer.
	EventOrderDelivered EventKind = "order_delivered"
	// EventCourierReturned records the courier arriving back at the warehouse.
	EventCourierReturned EventKind = "courier_returned"
	// EventPickerAborted records an assembly abort on a stock race.
	EventPickerAborted EventKind = "picker_aborted"
)

// Deferral reasons carried by EventOrderDeferred.
const (
	DeferredMissingSupplier = "missing supplier"
	DeferredAwaitingRestock = "awaiting restock"
	DeferredNoPicker        = "no idle picker on shift"
	DeferredNoCourier       = "no idle courier on shift"
	DeferredStockRace       = "stock race during assembly"
)

// Event is one structured observation from a fulfillment cycle. Only the
// fields relevant to the Kind are populated.
type Event struct {
	Kind       EventKind
	OrderID    string
	WorkerID   string
	SupplierID string
	Product    string
	Quantity   int
	Partial    bool
	Reason     string
	At         kernel.TimeOfDay
}

// String renders the event for plain-text logs.
// This method implements the fmt.Stringer interface.
func (e Event) String() string {
	switch e.Kind {
	case EventSupplyRequested, EventSupplyDelivered:
		return fmt.Sprintf("[%s] %s: %d x %s (supplier %s)", e.At, e.Kind, e.Quantity, e.Product, e.SupplierID)
	case EventSupplierExhausted:
		return fmt.Sprintf("[%s] %s: supplier %s has nothing left for %s", e.At, e.Kind, e.SupplierID, e.Product)
	case EventSupplierMissing:
		return fmt.Sprintf("[%s] %s: no supplier registered for %s", e.At, e.Kind, e.Product)
	case EventOrderDeferred:
		return fmt.Sprintf("[%s] %s: order %s (%s)", e.At, e.Kind, e.OrderID, e.Reason)
	case EventOrderPicked, EventOrderDelivered, EventCourierReturned, EventPickerAborted:
		return fmt.Sprintf("[%s] %s: order %s (worker %s)", e.At, e.Kind, e.OrderID, e.WorkerID)
	default:
		return fmt.Sprintf("[%s] %s: order %s", e.At, e.Kind, e.OrderID)
	}
}

// CycleResult aggregates the outcome of one fulfillment cycle.
type CycleResult struct {
	// Events lists everything that happened, in occurrence order.
	Events []Event
	// Delivered counts orders that reached Delivered this cycle.
	Delivered int
	// Cancelled counts orders dropped with no deliverable items.
	Cancelled int
	// Requeued counts orders put back for a later cycle.
	Requeued int
}

// Payslip records one worker's end-of-shift settlement.
type Payslip struct {
	WorkerID kernel.ID
	Role     string
	Amount   float64
}
