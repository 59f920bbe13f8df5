package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// FulfillmentJob manages the scheduled fulfillment cycle of one warehouse.
// Runs every second to drain the pending queue through restocking,
// assembly and delivery.
type FulfillmentJob struct {
	warehouseID kernel.ID
	handler     commands.RunFulfillmentCycleCommandHandler
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewFulfillmentJob creates a new job for running fulfillment cycles.
// Uses RunFulfillmentCycleCommandHandler to process the queue every second.
func NewFulfillmentJob(
	warehouseID kernel.ID,
	handler commands.RunFulfillmentCycleCommandHandler,
	logger *slog.Logger,
) *FulfillmentJob {
	return &FulfillmentJob{
		warehouseID: warehouseID,
		handler:     handler,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "fulfillment_job"),
	}
}

// Start begins the fulfillment job to run every second.
func (j *FulfillmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRunFulfillmentCycleCommand(j.warehouseID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Fulfillment cycle command invalid", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Fulfillment cycle failed", "error", err)
			return
		}

		// An empty queue produces an empty result; stay quiet to keep
		// the log proportional to actual work.
		if len(result.Events) == 0 {
			return
		}

		for _, event := range result.Events {
			j.logger.InfoContext(ctx, event.String())
		}
		j.logger.InfoContext(ctx, "Fulfillment cycle completed",
			"delivered", result.Delivered,
			"cancelled", result.Cancelled,
			"requeued", result.Requeued,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fulfillment job started (running every second)")
	return nil
}

// Stop stops the fulfillment job.
func (j *FulfillmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fulfillment job stopped")
}
