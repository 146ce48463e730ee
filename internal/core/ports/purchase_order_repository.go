package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/purchaseorder"
)

// PurchaseOrderRepository defines the persistence contract for purchase
// order aggregates, including their lines and attached pallet IDs.
type PurchaseOrderRepository interface {
	// Add persists a new purchase order aggregate to storage.
	Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error

	// Update persists changes to an existing purchase order aggregate.
	Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error

	// Get retrieves a purchase order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error)

	// GetAllInStatus retrieves all purchase orders in the given status.
	GetAllInStatus(ctx context.Context, status purchaseorder.Status) ([]*purchaseorder.PurchaseOrder, error)
}
