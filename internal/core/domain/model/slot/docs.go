// Package slot provides the Slot aggregate, a physical storage position that
// can hold at most one pallet.
//
// Key business rules:
//   - A slot is occupied iff exactly one pallet references it
//   - Occupying a slot held by a different pallet fails with ErrSlotAlreadyOccupied
//   - Releasing a free slot is a no-op, so releases tolerate retries
package slot
