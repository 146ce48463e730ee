// Package services provides domain services that orchestrate business
// operations across multiple aggregates in the warehouse system.
//
// The package includes:
//   - StockLedger: applies signed stock deltas to products, with
//     insufficient-stock checks and a clamped variant for deletions
//   - SlotAllocator: binds pallets to storage slots, enforcing the
//     one-pallet-per-slot rule
//   - PalletTransitionPlanner: a pure planner computing the stock and slot
//     effects of pallet lifecycle changes
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles. They never persist anything; the application layer applies the
// computed effects inside a unit of work.
package services
