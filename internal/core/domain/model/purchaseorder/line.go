package purchaseorder

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line was not created through
// NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a value object describing one product position on a purchase
// order: the ordered quantity, how many pallets the supplier is expected to
// deliver it on, and the negotiated unit price snapshot.
type Line struct {
	productID       kernel.UUID
	quantity        int
	expectedPallets int
	unitPriceCents  int64

	guard kernel.ConstructorGuard
}

// NewLine creates a purchase order line. Quantity and expectedPallets must be
// positive.
func NewLine(productID kernel.UUID, quantity, expectedPallets int, unitPriceCents int64) (Line, error) {
	l := Line{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setProductID(productID),
		l.setQuantity(quantity),
		l.setExpectedPallets(expectedPallets),
		l.setUnitPriceCents(unitPriceCents),
	); err != nil {
		return Line{}, err
	}

	return l, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// ExpectedPallets returns how many pallets the supplier should deliver.
func (l Line) ExpectedPallets() int {
	return l.expectedPallets
}

// UnitPriceCents returns the negotiated unit price snapshot in cents.
func (l Line) UnitPriceCents() int64 {
	return l.unitPriceCents
}

// TotalCents returns quantity times the unit price snapshot.
func (l Line) TotalCents() int64 {
	return int64(l.quantity) * l.unitPriceCents
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID is required", err)
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setExpectedPallets(expectedPallets int) error {
	if expectedPallets <= 0 {
		return errs.NewValueIsInvalidError("expectedPallets must be greater than 0")
	}
	l.expectedPallets = expectedPallets
	return nil
}

func (l *Line) setUnitPriceCents(unitPriceCents int64) error {
	if unitPriceCents < 0 {
		return errs.NewValueIsInvalidError("unitPrice must not be negative")
	}
	l.unitPriceCents = unitPriceCents
	return nil
}
