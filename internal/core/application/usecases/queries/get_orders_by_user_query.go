package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetOrdersByUserQueryIsNotConstructed = errors.New(
	"GetOrdersByUserQuery must be created via NewGetOrdersByUserQuery constructor",
)

// GetOrdersByUserQuery retrieves a customer's order history.
//
// Example:
//
//	query, err := NewGetOrdersByUserQuery(userID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrdersByUserQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersByUserQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByUserQuery creates a query for a customer's orders.
func NewGetOrdersByUserQuery(userID kernel.UUID) (GetOrdersByUserQuery, error) {
	q := GetOrdersByUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setUserID(userID); err != nil {
		return GetOrdersByUserQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByUserQueryIsNotConstructed)
}

// UserID returns the customer account identifier.
func (q GetOrdersByUserQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetOrdersByUserQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	q.userID = userID
	return nil
}

// GetOrdersByUserQueryResponse represents one order in a customer's history,
// with the item count and value derived from the order's line items.
type GetOrdersByUserQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	Status       string
	ItemCount    int
	TotalCents   int64
}
