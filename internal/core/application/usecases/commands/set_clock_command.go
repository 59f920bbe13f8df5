package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrSetClockCommandIsNotConstructed = errors.New(
		"SetClockCommand must be created via NewSetClockCommand constructor",
	)
)

// SetClockCommand represents a request to move a warehouse's virtual clock
// to an absolute time of day. Scenario drivers use it to position the
// simulation before submitting orders or running cycles.
//
// Example:
//
//	at, _ := kernel.ParseTimeOfDay("10:00:00")
//	cmd, err := NewSetClockCommand(warehouseID, at)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewSetClockCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type SetClockCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.ID
	at          kernel.TimeOfDay

	guard guard.ConstructorGuard
}

// NewSetClockCommand creates a command to set the warehouse clock.
// TimeOfDay values are valid by construction, so only the warehouse
// identifier needs validation.
func NewSetClockCommand(warehouseID kernel.ID, at kernel.TimeOfDay) (SetClockCommand, error) {
	if err := warehouseID.Validate(); err != nil {
		return SetClockCommand{}, err
	}

	return SetClockCommand{
		warehouseID: warehouseID,
		at:          at,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetClockCommandIsNotConstructed if validation fails.
func (c SetClockCommand) Validate() error {
	return c.guard.Validate(ErrSetClockCommandIsNotConstructed)
}

// WarehouseID returns the identifier of the warehouse whose clock moves.
func (c SetClockCommand) WarehouseID() kernel.ID {
	return c.warehouseID
}

// At returns the absolute time of day to set.
func (c SetClockCommand) At() kernel.TimeOfDay {
	return c.at
}
