package worker

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

const (
	// travelSecondsPerUnit is the virtual time to cover one distance unit.
	travelSecondsPerUnit = 30
	// dispatchOverheadSeconds is the fixed per-delivery overhead:
	// 60s warehouse egress + 60s customer hand-off.
	dispatchOverheadSeconds = 120
)

// ErrCourierOffShift is returned by CompleteWork when the courier's shift
// window does not contain the current virtual time.
var ErrCourierOffShift = errors.New("courier is not on shift")

// Courier delivers assembled orders to customers. Delivery cost derives from
// the Euclidean distance between the order's captured warehouse position and
// the customer position; the courier then travels back, advancing the clock
// a second time.
type Courier struct {
	employment
}

// DeliveryReport describes a completed delivery round trip.
type DeliveryReport struct {
	OrderID     kernel.ID
	Distance    float64
	DeliveredAt kernel.TimeOfDay
	ReturnedAt  kernel.TimeOfDay
}

// NewCourier creates a Courier with the given shift window.
func NewCourier(id kernel.ID, shift Shift, clock *kernel.Clock) (*Courier, error) {
	e, err := newEmployment(id, shift, clock)
	if err != nil {
		return nil, err
	}

	return &Courier{employment: e}, nil
}

// AssignOrder hands the courier an order and stamps the courier's identity
// onto it.
func (c *Courier) AssignOrder(o *order.Order) error {
	if err := c.employment.AssignOrder(o); err != nil {
		return err
	}

	return o.AssignCourier(c.id)
}

// CompleteWork delivers the held order. The courier must be on shift.
//
// Delivery advances the clock by distance × 30 + 120 seconds (truncated to
// whole seconds) and marks the order Delivered; the return trip advances it
// by a further distance × 30 seconds. The courier releases the order and
// ends NotWorking, so it is available again for a future cycle while still
// on shift.
func (c *Courier) CompleteWork() (DeliveryReport, error) {
	o := c.currentOrder
	if o == nil {
		return DeliveryReport{}, ErrNoOrderAssigned
	}

	defer c.release()

	if !c.IsOnShift() {
		return DeliveryReport{}, ErrCourierOffShift
	}

	distance, err := o.WarehouseLocation().Distance(o.CustomerLocation())
	if err != nil {
		return DeliveryReport{}, err
	}

	if err = c.clock.Advance(int(distance*travelSecondsPerUnit + dispatchOverheadSeconds)); err != nil {
		return DeliveryReport{}, err
	}
	if err = o.MarkDelivered(); err != nil {
		return DeliveryReport{}, err
	}
	deliveredAt := c.clock.Now()

	if err = c.clock.Advance(int(distance * travelSecondsPerUnit)); err != nil {
		return DeliveryReport{}, err
	}

	return DeliveryReport{
		OrderID:     o.ID(),
		Distance:    distance,
		DeliveredAt: deliveredAt,
		ReturnedAt:  c.clock.Now(),
	}, nil
}
