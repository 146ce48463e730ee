package jobs

import (
	"context"
	"log/slog"
	"time"

	"warehouse/internal/core/domain/model/pallet"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// expiredPalletRow is one stored pallet past its expiry date.
type expiredPalletRow struct {
	PalletID  string
	Name      string
	ExpiresAt time.Time
}

// ExpiryScanJob periodically scans for stored pallets whose contents have
// passed their expiry date and logs them for operator attention. Expired
// stock stays on the shelf until someone removes it through the normal
// pallet operations.
type ExpiryScanJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewExpiryScanJob creates a new job that scans for expired pallets hourly.
func NewExpiryScanJob(db *gorm.DB, logger *slog.Logger) *ExpiryScanJob {
	return &ExpiryScanJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "expiry_scan_job"),
	}
}

// Start begins the expiry scan job to run at the top of every hour.
func (j *ExpiryScanJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		expired, err := j.findExpired(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Expiry scan job failed", "error", err)
			return
		}

		for _, row := range expired {
			j.logger.WarnContext(ctx, "Stored pallet past expiry",
				"palletId", row.PalletID,
				"pallet", row.Name,
				"expiresAt", row.ExpiresAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expiry scan job started (running every hour)")
	return nil
}

// Stop stops the expiry scan job.
func (j *ExpiryScanJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expiry scan job stopped")
}

func (j *ExpiryScanJob) findExpired(ctx context.Context) ([]expiredPalletRow, error) {
	var rows []expiredPalletRow

	err := j.db.WithContext(ctx).Raw(`
		SELECT p.id AS pallet_id, p.name, p.expires_at
		FROM pallets p
		WHERE p.status = ? AND p.expires_at IS NOT NULL AND p.expires_at < ?
		ORDER BY p.expires_at
	`, pallet.Stored, time.Now().UTC()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
