package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/domain/model/pallet"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// stockDriftRow is one product whose ledger disagrees with its stored pallets.
type stockDriftRow struct {
	ProductID       string
	Name            string
	StockedQuantity int
	PalletQuantity  int
}

// StockAuditJob periodically compares each product's stocked quantity with
// the sum of quantities on its stored pallets. The two are kept in sync
// incrementally by the write operations, so any drift indicates a bug or
// out-of-band data change. The job is read-only and never corrects drift.
type StockAuditJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewStockAuditJob creates a new job that audits stock consistency every minute.
func NewStockAuditJob(db *gorm.DB, logger *slog.Logger) *StockAuditJob {
	return &StockAuditJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "stock_audit_job"),
	}
}

// Start begins the stock audit job to run at the top of every minute.
func (j *StockAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		drift, err := j.findDrift(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stock audit job failed", "error", err)
			return
		}

		for _, row := range drift {
			j.logger.WarnContext(ctx, "Stock drift detected",
				"productId", row.ProductID,
				"product", row.Name,
				"stockedQuantity", row.StockedQuantity,
				"palletQuantity", row.PalletQuantity,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock audit job started (running every minute)")
	return nil
}

// Stop stops the stock audit job.
func (j *StockAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stock audit job stopped")
}

func (j *StockAuditJob) findDrift(ctx context.Context) ([]stockDriftRow, error) {
	var rows []stockDriftRow

	// Only stored pallets participate in the ledger.
	err := j.db.WithContext(ctx).Raw(`
		SELECT
			pr.id AS product_id,
			pr.name,
			pr.stocked_quantity,
			COALESCE((SELECT SUM(p.quantity) FROM pallets p
				WHERE p.product_id = pr.id AND p.status = ?), 0) AS pallet_quantity
		FROM products pr
		WHERE pr.stocked_quantity <> COALESCE((SELECT SUM(p.quantity) FROM pallets p
			WHERE p.product_id = pr.id AND p.status = ?), 0)
	`, pallet.Stored, pallet.Stored).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
