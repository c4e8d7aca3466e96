// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping for the sales order lifecycle.
//
// # Available Jobs
//
// 1. StaleOrderJob - Runs every minute to report orders that have been
// stuck in the Pending state longer than the configured age.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(staleOrdersHandler, staleAge, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs log failures and keep running; a single failed tick never stops
// the schedule. Failed job starts will stop any already running jobs.
package jobs
