// Package product provides the Product aggregate, the authority for a
// product's stocked quantity. Every stock change in the system flows through
// this aggregate as a signed delta, keeping the stocked quantity equal to the
// sum of quantities over all stored pallets bound to the product.
//
// The package includes:
//   - Product: The aggregate root holding identity, unit price, and stocked quantity
//   - InsufficientStockError: Returned when a deduction exceeds the available stock
//
// Key business rules:
//   - Stocked quantity is never negative
//   - Deductions that exceed available stock fail with InsufficientStockError
//   - Deletion-driven reversals clamp at zero instead of failing, to tolerate
//     historical data drift
package product
