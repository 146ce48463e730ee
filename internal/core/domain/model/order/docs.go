// Package order provides the Order aggregate for customer order fulfillment.
//
// The package includes:
//   - Order: the aggregate root holding customer details, line items, and the
//     lifecycle status
//   - LineItem: a value object pairing a product with a quantity and a unit
//     price snapshot
//   - Status: the order lifecycle state machine
//
// Key business rules:
//   - Creating an order reserves stock for every line item
//   - Line items may be replaced only while the order is Pending
//   - Canceling is allowed only from Pending and restores the reserved stock
//   - Other statuses are written through after set-membership validation
//
// Stock moves are never performed inside this package; the application layer
// pairs every line-item change with the matching stock ledger call in one
// unit of work.
package order
