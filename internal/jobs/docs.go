// Package jobs provides scheduled background tasks for the warehouse
// fulfillment simulation.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. FulfillmentJob - Runs every second to drain the pending order queue
// through restocking, assembly and delivery.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(warehouseID, runCycleHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The fulfillment job uses the cron expression "* * * * * *", running every
// second. Each run takes the store's transaction hold, so cycles never
// overlap order submissions arriving over HTTP.
//
// # Error Handling
//
// Order-level problems inside a cycle are not errors: the engine absorbs
// them as deferral events and the job logs them at info level. A handler
// error means the transaction itself failed and is logged as such.
package jobs
