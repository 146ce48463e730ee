package palletrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/pallet"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPalletRepository implements PalletRepository using GORM.
type GormPalletRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPalletRepository creates a new GORM pallet repository.
func NewGormPalletRepository(db *gorm.DB, tracker aggregateTracker) *GormPalletRepository {
	return &GormPalletRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pallet to the database.
func (r *GormPalletRepository) Add(ctx context.Context, aggregate *pallet.Pallet) error {
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

// Update saves an existing pallet to the database.
// All columns are written so unstoring a pallet NULLs the slot reference.
func (r *GormPalletRepository) Update(ctx context.Context, aggregate *pallet.Pallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PalletDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a pallet from the database.
func (r *GormPalletRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PalletDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pallet", id.String())
	}

	return nil
}

// Get retrieves a pallet by ID.
func (r *GormPalletRepository) Get(ctx context.Context, id kernel.UUID) (*pallet.Pallet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PalletDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pallet", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllStored retrieves all pallets currently bound to slots.
func (r *GormPalletRepository) GetAllStored(ctx context.Context) ([]*pallet.Pallet, error) {
	var dtos []PalletDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(pallet.Stored)).Error; err != nil {
		return nil, err
	}

	pallets := make([]*pallet.Pallet, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pallets = append(pallets, p)
	}

	return pallets, nil
}
