package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
)

var (
	ErrLineProductIDIsRequired = errors.New("line productID is required")
	ErrLineQuantityIsInvalid   = errors.New("line quantity must be greater than 0")
	ErrLinePalletsIsInvalid    = errors.New("line expectedPallets must be greater than 0")
	ErrLinesAreRequired        = errors.New("at least one line is required")
)

// OrderLineInput carries one requested order line. Unit prices are not part
// of the request; the handler snapshots the current product price.
type OrderLineInput struct {
	ProductID kernel.UUID
	Quantity  int
}

func validateOrderLines(lines []OrderLineInput) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return errors.Join(ErrLineProductIDIsRequired, err)
		}
		if line.Quantity <= 0 {
			return ErrLineQuantityIsInvalid
		}
	}
	return nil
}

// PurchaseOrderLineInput carries one requested purchase order line.
type PurchaseOrderLineInput struct {
	ProductID       kernel.UUID
	Quantity        int
	ExpectedPallets int
}

func validatePurchaseOrderLines(lines []PurchaseOrderLineInput) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return errors.Join(ErrLineProductIDIsRequired, err)
		}
		if line.Quantity <= 0 {
			return ErrLineQuantityIsInvalid
		}
		if line.ExpectedPallets <= 0 {
			return ErrLinePalletsIsInvalid
		}
	}
	return nil
}
