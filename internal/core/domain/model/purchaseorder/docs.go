// Package purchaseorder provides the PurchaseOrder aggregate for inbound
// supplier orders.
//
// The package includes:
//   - PurchaseOrder: the aggregate root holding supplier details, ordered
//     lines, and attached inbound pallet IDs
//   - Line: a value object with quantity, expected pallet count, and a unit
//     price snapshot per product
//   - Status: the strictly linear fulfillment machine
//     Pending -> Processing -> ReadyToShip -> Shipping
//
// Pallets may be attached only while the order is Processing. Attachment
// never touches stock or slots; the inbound pallet is created ReadyToShip
// and joins inventory accounting only when it is stored later through the
// regular pallet update path.
package purchaseorder
