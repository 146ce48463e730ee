package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetStoredPalletsQueryIsNotConstructed = errors.New(
	"GetStoredPalletsQuery must be created via NewGetStoredPalletsQuery constructor",
)

// GetStoredPalletsQuery retrieves all pallets currently bound to storage
// slots, i.e. the pallets whose quantities make up the stocked inventory.
//
// Example:
//
//	query := NewGetStoredPalletsQuery()
//	handler := NewGetStoredPalletsQueryHandler(db)
//
//	pallets, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get stored pallets: %w", err)
//	}
type GetStoredPalletsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStoredPalletsQuery creates a query to retrieve stored pallets.
// This is a parameterless query that fetches the full inventory view.
func NewGetStoredPalletsQuery() GetStoredPalletsQuery {
	return GetStoredPalletsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStoredPalletsQuery) Validate() error {
	return q.guard.Validate(ErrGetStoredPalletsQueryIsNotConstructed)
}

// GetStoredPalletsQueryResponse represents one stored pallet with its slot
// binding, as shown on the warehouse inventory view.
type GetStoredPalletsQueryResponse struct {
	ID        kernel.UUID
	Name      string
	ProductID kernel.UUID
	Quantity  int
	SlotID    kernel.UUID
	SlotName  string
}
