// Package jobs provides scheduled background tasks for the warehouse system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping for the warehouse service.
//
// # Available Jobs
//
// 1. StockAuditJob - Runs every minute and reports products whose stocked
// quantity disagrees with the sum of quantities on their stored pallets
// 2. ExpiryScanJob - Runs every hour and reports stored pallets whose
// contents have passed their expiry date
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with a database handle
//	jobManager := jobs.NewJobManager(gormDB, logger)
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
// Both jobs are read-only observers. They log what they find and never
// correct data; the write operations keep the ledger consistent. Failed
// job starts will stop any already running jobs.
package jobs
