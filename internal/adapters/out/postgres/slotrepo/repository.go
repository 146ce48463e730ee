package slotrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/slot"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSlotRepository implements SlotRepository using GORM.
type GormSlotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// sqlStater is satisfied by driver error types carrying a SQLSTATE code.
type sqlStater interface {
	SQLState() string
}

// lock_not_available, serialization_failure, deadlock_detected
var contentionStates = map[string]struct{}{
	"55P03": {},
	"40001": {},
	"40P01": {},
}

func translateLockError(entity string, err error) error {
	var stater sqlStater
	if errors.As(err, &stater) {
		if _, ok := contentionStates[stater.SQLState()]; ok {
			return errs.NewConcurrentModificationErrorWithCause(entity, err)
		}
	}
	return err
}

// NewGormSlotRepository creates a new GORM slot repository.
func NewGormSlotRepository(db *gorm.DB, tracker aggregateTracker) *GormSlotRepository {
	return &GormSlotRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new slot to the database.
func (r *GormSlotRepository) Add(ctx context.Context, aggregate *slot.Slot) error {
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

// Update saves an existing slot to the database.
// All columns are written so releasing a slot NULLs the pallet reference.
func (r *GormSlotRepository) Update(ctx context.Context, aggregate *slot.Slot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SlotDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a slot by ID.
func (r *GormSlotRepository) Get(ctx context.Context, id kernel.UUID) (*slot.Slot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SlotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("slot", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a slot holding a row lock for the rest of the
// transaction. NOWAIT turns lock contention into an immediate
// ConcurrentModificationError instead of queueing behind the holder.
func (r *GormSlotRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*slot.Slot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SlotDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("slot", id.String())
		}
		return nil, translateLockError("slot", err)
	}

	return toDomain(dto)
}

// GetAllFree retrieves all slots with no pallet bound, lowest level first so
// floor-level slots are suggested before high racks.
func (r *GormSlotRepository) GetAllFree(ctx context.Context) ([]*slot.Slot, error) {
	var dtos []SlotDTO
	if err := r.db.WithContext(ctx).
		Where("pallet_id IS NULL").
		Order("level, name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	slots := make([]*slot.Slot, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}

	return slots, nil
}
