package product

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
)

// ErrInsufficientStock is the sentinel error for deductions exceeding the
// available stocked quantity.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError reports a failed stock deduction. It carries the
// product and both quantities so callers can surface an actionable message.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Available int
	Requested int
}

// NewInsufficientStockError creates an InsufficientStockError.
func NewInsufficientStockError(productID kernel.UUID, available, requested int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		Available: available,
		Requested: requested,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s (available: %d, requested: %d)",
		ErrInsufficientStock, e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
