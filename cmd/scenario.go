package cmd

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
)

// Scenario is the parsed simulation timeline: position the clock, submit
// the configured order, stage a supplier delivery, run fulfillment cycles
// at the configured instants and settle salaries at the end.
type Scenario struct {
	warehouseID kernel.ID
	supplierID  kernel.ID

	customer kernel.Location
	items    []commands.OrderItem

	submitAt     kernel.TimeOfDay
	supplyAt     kernel.TimeOfDay
	supplyAmount int
	cycleAt      []kernel.TimeOfDay
}

// NewScenario parses the scenario timeline out of the raw configuration.
func NewScenario(config Config, seed SeedResult) (Scenario, error) {
	customer, err := parseLocation(config.CustomerX, config.CustomerY)
	if err != nil {
		return Scenario{}, err
	}

	units, err := strconv.Atoi(config.OrderUnits)
	if err != nil {
		return Scenario{}, err
	}

	submitAt, err := kernel.ParseTimeOfDay(config.OrderSubmitAt)
	if err != nil {
		return Scenario{}, err
	}
	supplyAt, err := kernel.ParseTimeOfDay(config.SupplyAt)
	if err != nil {
		return Scenario{}, err
	}
	supplyAmount, err := strconv.Atoi(config.SupplyAmount)
	if err != nil {
		return Scenario{}, err
	}

	cycleAt := make([]kernel.TimeOfDay, 0)
	for _, raw := range strings.Split(config.CycleTimes, ",") {
		at, err := kernel.ParseTimeOfDay(strings.TrimSpace(raw))
		if err != nil {
			return Scenario{}, err
		}
		cycleAt = append(cycleAt, at)
	}

	return Scenario{
		warehouseID: seed.WarehouseID,
		supplierID:  seed.SupplierID,
		customer:    customer,
		items: []commands.OrderItem{
			{Name: seed.Product.Name(), Price: seed.Product.Price(), Quantity: units},
		},
		submitAt:     submitAt,
		supplyAt:     supplyAt,
		supplyAmount: supplyAmount,
		cycleAt:      cycleAt,
	}, nil
}

// Run replays the timeline through the command handlers and logs every
// step's outcome.
func (s Scenario) Run(ctx context.Context, app *CompositionRoot, logger *slog.Logger) error {
	logger = logger.With("component", "scenario")

	setClockHandler := app.CreateSetClockCommandHandler()
	submitHandler := app.CreateSubmitOrderCommandHandler()
	supplyHandler := app.CreateDeliverSupplyCommandHandler()
	cycleHandler := app.CreateRunFulfillmentCycleCommandHandler()
	settleHandler := app.CreateSettleSalariesCommandHandler()

	if err := s.setClock(ctx, &setClockHandler, s.submitAt); err != nil {
		return err
	}
	orderID := kernel.NewID(kernel.TagOrder)
	submitCmd, err := commands.NewSubmitOrderCommand(orderID, s.warehouseID, s.customer, s.items)
	if err != nil {
		return err
	}
	if err = submitHandler.Handle(ctx, submitCmd); err != nil {
		return err
	}
	logger.Info("order submitted", "order_id", orderID.String(), "at", s.submitAt.String())

	if err = s.setClock(ctx, &setClockHandler, s.supplyAt); err != nil {
		return err
	}
	supplyCmd, err := commands.NewDeliverSupplyCommand(s.warehouseID, s.supplierID, s.supplyAmount)
	if err != nil {
		return err
	}
	delivered, err := supplyHandler.Handle(ctx, supplyCmd)
	if err != nil {
		return err
	}
	logger.Info("supply delivered", "requested", s.supplyAmount, "delivered", delivered, "at", s.supplyAt.String())

	for _, at := range s.cycleAt {
		if err = s.setClock(ctx, &setClockHandler, at); err != nil {
			return err
		}
		cycleCmd, err := commands.NewRunFulfillmentCycleCommand(s.warehouseID)
		if err != nil {
			return err
		}
		result, err := cycleHandler.Handle(ctx, cycleCmd)
		if err != nil {
			return err
		}
		for _, event := range result.Events {
			logger.Info(event.String())
		}
		logger.Info("cycle completed", "at", at.String(),
			"delivered", result.Delivered, "cancelled", result.Cancelled, "requeued", result.Requeued)
	}

	settleCmd, err := commands.NewSettleSalariesCommand(s.warehouseID)
	if err != nil {
		return err
	}
	payslips, err := settleHandler.Handle(ctx, settleCmd)
	if err != nil {
		return err
	}
	for _, slip := range payslips {
		logger.Info("salary settled", "worker_id", slip.WorkerID.String(), "role", slip.Role, "amount", slip.Amount)
	}

	return nil
}

func (s Scenario) setClock(
	ctx context.Context,
	handler *commands.SetClockCommandHandler,
	at kernel.TimeOfDay,
) error {
	cmd, err := commands.NewSetClockCommand(s.warehouseID, at)
	if err != nil {
		return err
	}
	return handler.Handle(ctx, cmd)
}
