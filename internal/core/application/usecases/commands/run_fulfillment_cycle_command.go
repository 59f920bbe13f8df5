package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrRunFulfillmentCycleCommandIsNotConstructed = errors.New(
		"RunFulfillmentCycleCommand must be created via NewRunFulfillmentCycleCommand constructor",
	)
)

// RunFulfillmentCycleCommand represents a request to run one fulfillment
// cycle on a warehouse: drain the pending queue and walk every order
// through restocking, assembly and delivery.
//
// Example:
//
//	cmd, err := NewRunFulfillmentCycleCommand(warehouseID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewRunFulfillmentCycleCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("cycle failed: %w", err)
//	}
//	fmt.Printf("delivered %d, requeued %d\n", result.Delivered, result.Requeued)
type RunFulfillmentCycleCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.ID

	guard guard.ConstructorGuard
}

// NewRunFulfillmentCycleCommand creates a command to run one fulfillment
// cycle on the given warehouse.
func NewRunFulfillmentCycleCommand(warehouseID kernel.ID) (RunFulfillmentCycleCommand, error) {
	if err := warehouseID.Validate(); err != nil {
		return RunFulfillmentCycleCommand{}, err
	}

	return RunFulfillmentCycleCommand{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRunFulfillmentCycleCommandIsNotConstructed if validation fails.
func (c RunFulfillmentCycleCommand) Validate() error {
	return c.guard.Validate(ErrRunFulfillmentCycleCommandIsNotConstructed)
}

// WarehouseID returns the identifier of the warehouse to cycle.
func (c RunFulfillmentCycleCommand) WarehouseID() kernel.ID {
	return c.warehouseID
}
