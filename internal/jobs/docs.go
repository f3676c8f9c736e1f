// Package jobs provides scheduled background tasks for the pizzeria service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by order fulfillment.
//
// # Available Jobs
//
// 1. CourierReleaseJob - Runs every minute to clear expired courier reservation windows
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(releaseCouriersHandler, logger)
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
// The release job uses the cron expression "0 * * * * *", firing at the top
// of every minute. Availability checks already treat an expired window as
// free, so the sweep is housekeeping rather than a correctness requirement.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed start
// is reported to the caller.
package jobs
