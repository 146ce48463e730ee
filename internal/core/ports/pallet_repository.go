package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/pallet"
)

// PalletRepository defines the persistence contract for pallet aggregates.
type PalletRepository interface {
	// Add persists a new pallet aggregate to storage.
	Add(ctx context.Context, aggregate *pallet.Pallet) error

	// Update persists changes to an existing pallet aggregate.
	Update(ctx context.Context, aggregate *pallet.Pallet) error

	// Delete removes a pallet aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a pallet aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pallet.Pallet, error)

	// GetAllStored retrieves all pallets currently bound to slots.
	GetAllStored(ctx context.Context) ([]*pallet.Pallet, error)
}
