package purchaseorderrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/purchaseorder"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM.
type GormPurchaseOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPurchaseOrderRepository creates a new GORM purchase order repository.
func NewGormPurchaseOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new purchase order and its lines to the database.
func (r *GormPurchaseOrderRepository) Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing purchase order to the database. Lines are
// immutable after creation, so only the order row is rewritten; pallet
// attachments live on the pallet rows and are not written here.
func (r *GormPurchaseOrderRepository) Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PurchaseOrderDTO{}).
		Where("id = ?", dto.ID).
		Select("supplier_name", "expected_arrival", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a purchase order by ID, including its lines and the IDs of
// pallets created against it.
func (r *GormPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseOrderDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchase order", id.String())
		}
		return nil, err
	}

	palletIDs, err := r.getPalletIDs(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, palletIDs)
}

// GetAllInStatus retrieves all purchase orders in the given status, soonest
// expected arrival first.
func (r *GormPurchaseOrderRepository) GetAllInStatus(
	ctx context.Context,
	status purchaseorder.Status,
) ([]*purchaseorder.PurchaseOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []PurchaseOrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("status = ?", int(status)).
		Order("expected_arrival").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	purchaseOrders := make([]*purchaseorder.PurchaseOrder, 0, len(dtos))
	for _, dto := range dtos {
		palletIDs, err := r.getPalletIDs(ctx, dto.ID)
		if err != nil {
			return nil, err
		}

		po, err := toDomain(dto, palletIDs)
		if err != nil {
			return nil, err
		}
		purchaseOrders = append(purchaseOrders, po)
	}

	return purchaseOrders, nil
}

// getPalletIDs derives the attachment list from the pallet rows referencing
// the purchase order.
func (r *GormPurchaseOrderRepository) getPalletIDs(ctx context.Context, purchaseOrderID uuid.UUID) ([]kernel.UUID, error) {
	var rawIDs []uuid.UUID
	if err := r.db.WithContext(ctx).
		Table("pallets").
		Where("purchase_order_id = ?", purchaseOrderID).
		Order("id").
		Pluck("id", &rawIDs).Error; err != nil {
		return nil, err
	}

	palletIDs := make([]kernel.UUID, 0, len(rawIDs))
	for _, rawID := range rawIDs {
		palletID, err := kernel.UUIDFromBytes(rawID[:])
		if err != nil {
			return nil, err
		}
		palletIDs = append(palletIDs, palletID)
	}

	return palletIDs, nil
}
