package services

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/slot"
)

// SlotAllocator is a domain service binding pallets to storage slots. It
// enforces the one-pallet-per-slot rule on top of the Slot aggregate's own
// occupancy check.
//
// Business rules:
//   - a slot holds at most one pallet
//   - occupying a slot that holds a different pallet fails with
//     slot.ErrSlotAlreadyOccupied
//   - releasing is idempotent
//   - rebinding a pallet releases its old slot and occupies the new one in
//     the same call, so callers persist both slots together
type SlotAllocator struct{}

// NewSlotAllocator creates a new SlotAllocator instance.
func NewSlotAllocator() SlotAllocator {
	return SlotAllocator{}
}

// Occupy binds a pallet to a slot. Fails if the slot holds a different
// pallet; occupying a slot the pallet already holds is a no-op.
func (a SlotAllocator) Occupy(s *slot.Slot, palletID kernel.UUID) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return s.Occupy(palletID)
}

// Release frees a slot. Releasing an already-free slot is a no-op.
func (a SlotAllocator) Release(s *slot.Slot) error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.Release()
	return nil
}

// Rebind moves a pallet from its old slot to a new one. Either slot may be
// nil when the pallet is entering or leaving storage.
func (a SlotAllocator) Rebind(oldSlot, newSlot *slot.Slot, palletID kernel.UUID) error {
	if oldSlot != nil {
		if err := a.Release(oldSlot); err != nil {
			return err
		}
	}
	if newSlot != nil {
		return a.Occupy(newSlot, palletID)
	}
	return nil
}
