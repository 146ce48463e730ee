package product

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product is the aggregate root owning the authoritative stocked quantity for
// a catalog product. The stocked quantity is maintained incrementally: every
// pallet or order mutation applies a signed delta through AdjustStock or its
// clamped variant, never by full recomputation.
//
// Invariants:
//   - stockedQuantity >= 0 at all times
//   - stockedQuantity equals the sum of quantities over all stored pallets
//     referencing this product (maintained by the pallet and order workflows)
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the catalog display name
	name string

	// unitPriceCents is the current unit price in cents; purchase orders
	// snapshot it onto their lines at creation time
	unitPriceCents int64

	// stockedQuantity is the authoritative on-hand quantity
	stockedQuantity int

	// guard ensures the aggregate was created via a constructor
	guard kernel.ConstructorGuard
}

// NewProduct creates a Product with zero stock.
//
// Validation rules:
//   - id must be a valid UUID
//   - name must not be empty
//   - unitPriceCents must not be negative
func NewProduct(id kernel.UUID, name string, unitPriceCents int64) (*Product, error) {
	p := &Product{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setUnitPrice(unitPriceCents),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence, including its
// current stocked quantity.
func RestoreProduct(id kernel.UUID, name string, unitPriceCents int64, stockedQuantity int) (*Product, error) {
	p := &Product{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setUnitPrice(unitPriceCents),
		p.setStockedQuantity(stockedQuantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the catalog display name.
func (p *Product) Name() string {
	return p.name
}

// UnitPriceCents returns the current unit price in cents.
func (p *Product) UnitPriceCents() int64 {
	return p.unitPriceCents
}

// StockedQuantity returns the authoritative on-hand quantity.
func (p *Product) StockedQuantity() int {
	return p.stockedQuantity
}

// AdjustStock applies a signed delta to the stocked quantity.
//
// A positive delta restocks; a negative delta deducts. A deduction that would
// drive the quantity below zero fails with InsufficientStockError and leaves
// the quantity unchanged.
func (p *Product) AdjustStock(delta int) error {
	next := p.stockedQuantity + delta
	if next < 0 {
		return NewInsufficientStockError(p.id, p.stockedQuantity, -delta)
	}

	p.stockedQuantity = next
	return nil
}

// AdjustStockClamped applies a signed delta, flooring the result at zero.
// Used on deletion-driven reversals, where historical drift may have left the
// stocked quantity below the pallet's recorded contribution.
func (p *Product) AdjustStockClamped(delta int) {
	next := p.stockedQuantity + delta
	if next < 0 {
		next = 0
	}
	p.stockedQuantity = next
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	p.name = name
	return nil
}

func (p *Product) setUnitPrice(unitPriceCents int64) error {
	if unitPriceCents < 0 {
		return errs.NewValueIsInvalidError("unitPriceCents must not be negative")
	}
	p.unitPriceCents = unitPriceCents
	return nil
}

func (p *Product) setStockedQuantity(stockedQuantity int) error {
	if stockedQuantity < 0 {
		return errs.NewValueIsInvalidError("stockedQuantity must not be negative")
	}
	p.stockedQuantity = stockedQuantity
	return nil
}
