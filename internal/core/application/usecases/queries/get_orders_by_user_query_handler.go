package queries

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByUserQueryHandler retrieves a customer's order history from the
// database. Item counts and totals are aggregated over the line items in
// SQL rather than loading the aggregates.
type GetOrdersByUserQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByUserQueryHandler creates a handler for customer order
// history queries. Requires a GORM database connection for query execution.
func NewGetOrdersByUserQueryHandler(db *gorm.DB) GetOrdersByUserQueryHandler {
	return GetOrdersByUserQueryHandler{db: db}
}

// Handle executes the query for the customer's orders, newest first.
func (h GetOrdersByUserQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByUserQuery,
) ([]GetOrdersByUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByUserQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_name,
			o.status,
			COALESCE(SUM(li.quantity), 0),
			COALESCE(SUM(li.quantity * li.unit_price_cents), 0)
		FROM orders o
		LEFT JOIN order_line_items li ON li.order_id = o.id
		WHERE o.user_id = ?
		GROUP BY o.id, o.customer_name, o.status, o.created_at
		ORDER BY o.created_at DESC
	`, query.UserID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersByUserQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.CustomerName,
			&status,
			&resp.ItemCount,
			&resp.TotalCents,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.Status = order.Status(status).String()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
