package queries

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/pallet"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoredPalletsQueryHandler retrieves the stored-pallet inventory view
// directly from the database, bypassing the aggregates on the read side.
type GetStoredPalletsQueryHandler struct {
	db *gorm.DB
}

// NewGetStoredPalletsQueryHandler creates a handler for the inventory view.
// Requires a GORM database connection for query execution.
func NewGetStoredPalletsQueryHandler(db *gorm.DB) GetStoredPalletsQueryHandler {
	return GetStoredPalletsQueryHandler{db: db}
}

// Handle executes the query to retrieve all stored pallets with their slots.
// Results are sorted by slot name for stable warehouse-floor ordering.
func (h GetStoredPalletsQueryHandler) Handle(
	ctx context.Context,
	query GetStoredPalletsQuery,
) ([]GetStoredPalletsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pallets := make([]GetStoredPalletsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.product_id,
			p.quantity,
			s.id,
			s.name
		FROM pallets p
		JOIN slots s ON s.id = p.slot_id
		WHERE p.status = ?
		ORDER BY s.name
	`, pallet.Stored).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStoredPalletsQueryResponse
		var id, productID, slotID uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&productID,
			&resp.Quantity,
			&slotID,
			&resp.SlotName,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if resp.SlotID, err = kernel.UUIDFromBytes(slotID[:]); err != nil {
			return nil, err
		}

		pallets = append(pallets, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pallets, nil
}
