// Package pallet provides the Pallet aggregate and its lifecycle Status.
//
// A pallet always references a product and carries a quantity bounded by its
// per-pallet capacity. The lifecycle state determines its accounting effects:
// a Stored pallet occupies exactly one slot and contributes its quantity to
// the product's stocked quantity; Unstored and ReadyToShip pallets do
// neither. ReadyToShip marks inbound pallets attached to purchase orders
// before physical receipt.
//
// State transitions and their stock/slot effects are computed by the
// transition planner in the services package so that a pallet update applies
// the minimal consistent set of deltas as one atomic unit.
package pallet
