package jobs

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stockAuditJob *StockAuditJob
	expiryScanJob *ExpiryScanJob
}

// NewJobManager creates a new job manager with all required jobs.
// Jobs read directly from the database; none of them mutates state.
func NewJobManager(db *gorm.DB, logger *slog.Logger) *JobManager {
	return &JobManager{
		stockAuditJob: NewStockAuditJob(db, logger),
		expiryScanJob: NewExpiryScanJob(db, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stockAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start stock audit job: %w", err)
	}

	if err := jm.expiryScanJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.stockAuditJob.Stop()
		return fmt.Errorf("failed to start expiry scan job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stockAuditJob.Stop()
	jm.expiryScanJob.Stop()
}
