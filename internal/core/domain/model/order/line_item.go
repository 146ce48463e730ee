package order

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// LineItem is a value object pairing a product with an ordered quantity and
// the unit price captured at order time.
type LineItem struct {
	productID      kernel.UUID
	quantity       int
	unitPriceCents int64

	guard kernel.ConstructorGuard
}

// NewLineItem creates a line item. Quantity must be positive.
func NewLineItem(productID kernel.UUID, quantity int, unitPriceCents int64) (LineItem, error) {
	li := LineItem{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		li.setProductID(productID),
		li.setQuantity(quantity),
		li.setUnitPriceCents(unitPriceCents),
	); err != nil {
		return LineItem{}, err
	}

	return li, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPriceCents returns the unit price snapshot in cents.
func (li LineItem) UnitPriceCents() int64 {
	return li.unitPriceCents
}

// TotalCents returns quantity times the unit price snapshot.
func (li LineItem) TotalCents() int64 {
	return int64(li.quantity) * li.unitPriceCents
}

// IsEqual compares two line items by value.
func (li LineItem) IsEqual(other LineItem) bool {
	return li.productID.IsEqual(other.productID) &&
		li.quantity == other.quantity &&
		li.unitPriceCents == other.unitPriceCents
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID is required", err)
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPriceCents(unitPriceCents int64) error {
	if unitPriceCents < 0 {
		return errs.NewValueIsInvalidError("unitPrice must not be negative")
	}
	li.unitPriceCents = unitPriceCents
	return nil
}

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
