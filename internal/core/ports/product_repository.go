// Package ports defines repository interfaces for the warehouse domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// Products own the authoritative stocked quantity, so repositories offer a
// locked read for use inside stock-mutating transactions.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product with a row lock held for the duration
	// of the surrounding transaction. A lock already held by another
	// transaction surfaces as errs.ConcurrentModificationError.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
