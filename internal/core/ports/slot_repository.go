package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/slot"
)

// SlotRepository defines the persistence contract for slot aggregates.
// Slot occupancy changes always happen under a row lock so two pallets
// cannot claim the same slot concurrently.
type SlotRepository interface {
	// Add persists a new slot aggregate to storage.
	Add(ctx context.Context, aggregate *slot.Slot) error

	// Update persists changes to an existing slot aggregate.
	Update(ctx context.Context, aggregate *slot.Slot) error

	// Get retrieves a slot aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*slot.Slot, error)

	// GetForUpdate retrieves a slot with a row lock held for the duration of
	// the surrounding transaction. A lock already held by another transaction
	// surfaces as errs.ConcurrentModificationError.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*slot.Slot, error)

	// GetAllFree retrieves all slots not currently bound to a pallet.
	GetAllFree(ctx context.Context) ([]*slot.Slot, error)
}
