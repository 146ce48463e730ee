package services

import (
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
)

// StockLedger is a domain service applying signed stock deltas to Product
// aggregates. It is the single place that turns pallet and order operations
// into stocked-quantity changes, so every caller shares the same
// insufficient-stock and clamping semantics.
//
// Business rules:
//   - stocked quantity never goes below zero
//   - a deduction that would cross zero fails with
//     product.InsufficientStockError
//   - deletion-driven reversals are clamped at zero instead of failing,
//     because the pallet being removed is the authority on what was stored
type StockLedger struct{}

// NewStockLedger creates a new StockLedger instance.
func NewStockLedger() StockLedger {
	return StockLedger{}
}

// Apply adds a signed delta to the product's stocked quantity. A negative
// delta that would push stock below zero fails with
// product.InsufficientStockError.
func (s StockLedger) Apply(p *product.Product, delta int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return p.AdjustStock(delta)
}

// ApplyClamped adds a signed delta and clamps the result at zero. Used when
// reversing the stock contribution of a deleted pallet, where drift must not
// block the deletion.
func (s StockLedger) ApplyClamped(p *product.Product, delta int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.AdjustStockClamped(delta)
	return nil
}

// Reserve deducts stock for every order line item. The caller loads each
// line's product and passes them keyed by product ID string; a missing entry
// or an insufficient balance fails the whole reservation.
func (s StockLedger) Reserve(products map[string]*product.Product, lineItems []order.LineItem) error {
	for _, li := range lineItems {
		p, ok := products[li.ProductID().String()]
		if !ok {
			return product.NewInsufficientStockError(li.ProductID(), 0, li.Quantity())
		}
		if err := s.Apply(p, -li.Quantity()); err != nil {
			return err
		}
	}
	return nil
}

// Release returns reserved stock for line items, e.g. on order cancellation.
func (s StockLedger) Release(products map[string]*product.Product, lineItems []order.LineItem) error {
	for _, li := range lineItems {
		p, ok := products[li.ProductID().String()]
		if !ok {
			continue
		}
		if err := s.Apply(p, li.Quantity()); err != nil {
			return err
		}
	}
	return nil
}
