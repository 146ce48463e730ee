package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/purchaseorder"
	"warehouse/internal/pkg/guard"
)

var ErrGetPurchaseOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetPurchaseOrdersByStatusQuery must be created via NewGetPurchaseOrdersByStatusQuery constructor",
)

// GetPurchaseOrdersByStatusQuery retrieves the purchase orders sitting in
// one step of the fulfillment machine, for the supplier workflow board.
type GetPurchaseOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status purchaseorder.Status

	guard guard.ConstructorGuard
}

// NewGetPurchaseOrdersByStatusQuery creates a query for purchase orders in
// the given status.
func NewGetPurchaseOrdersByStatusQuery(status purchaseorder.Status) (GetPurchaseOrdersByStatusQuery, error) {
	q := GetPurchaseOrdersByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setStatus(status); err != nil {
		return GetPurchaseOrdersByStatusQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPurchaseOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrdersByStatusQueryIsNotConstructed)
}

// Status returns the requested fulfillment step.
func (q GetPurchaseOrdersByStatusQuery) Status() purchaseorder.Status {
	return q.status
}

func (q *GetPurchaseOrdersByStatusQuery) setStatus(status purchaseorder.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = status
	return nil
}

// GetPurchaseOrdersByStatusQueryResponse represents one purchase order on
// the workflow board, with value and attached-pallet count aggregated in SQL.
type GetPurchaseOrdersByStatusQueryResponse struct {
	ID              kernel.UUID
	SupplierName    string
	ExpectedArrival time.Time
	TotalCents      int64
	PalletCount     int
}
