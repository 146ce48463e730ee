package queries

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPurchaseOrdersByStatusQueryHandler retrieves the supplier workflow
// board for one fulfillment step directly from the database.
type GetPurchaseOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetPurchaseOrdersByStatusQueryHandler creates a handler for workflow
// board queries. Requires a GORM database connection for query execution.
func NewGetPurchaseOrdersByStatusQueryHandler(db *gorm.DB) GetPurchaseOrdersByStatusQueryHandler {
	return GetPurchaseOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query for purchase orders in the requested status,
// soonest expected arrival first.
func (h GetPurchaseOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPurchaseOrdersByStatusQuery,
) ([]GetPurchaseOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	purchaseOrders := make([]GetPurchaseOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			po.id,
			po.supplier_name,
			po.expected_arrival,
			COALESCE((
				SELECT SUM(l.quantity * l.unit_price_cents)
				FROM purchase_order_lines l
				WHERE l.purchase_order_id = po.id
			), 0),
			(
				SELECT COUNT(*)
				FROM pallets p
				WHERE p.purchase_order_id = po.id
			)
		FROM purchase_orders po
		WHERE po.status = ?
		ORDER BY po.expected_arrival
	`, query.Status()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPurchaseOrdersByStatusQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.SupplierName,
			&resp.ExpectedArrival,
			&resp.TotalCents,
			&resp.PalletCount,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		purchaseOrders = append(purchaseOrders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return purchaseOrders, nil
}
