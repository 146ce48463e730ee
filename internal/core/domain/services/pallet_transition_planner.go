package services

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/pallet"
	"warehouse/internal/pkg/errs"
)

// Transition is the minimal set of side effects a pallet update requires
// beyond the pallet row itself. The application layer applies every non-zero
// member in the same unit of work as the pallet write.
type Transition struct {
	// StockDelta is the signed change to the product's stocked quantity.
	StockDelta int

	// ReleaseSlotID is the slot to free, if any.
	ReleaseSlotID *kernel.UUID

	// OccupySlotID is the slot to bind to the pallet, if any.
	OccupySlotID *kernel.UUID
}

// IsNoop reports whether the transition carries no stock or slot effects.
func (t Transition) IsNoop() bool {
	return t.StockDelta == 0 && t.ReleaseSlotID == nil && t.OccupySlotID == nil
}

// PalletTransitionPlanner computes the stock and slot effects of moving a
// pallet from its current state to a requested one. It is a pure function
// over the old pallet and the requested fields; it never mutates anything.
//
// Covered cases:
//   - Stored -> not stored: stock decreases by the old quantity, the old
//     slot is released
//   - not stored -> Stored: stock increases by the new quantity, the new
//     slot is occupied
//   - Stored -> Stored, quantity change: stock changes by the difference
//   - Stored -> Stored, slot change: the old slot is released and the new
//     one occupied
type PalletTransitionPlanner struct{}

// NewPalletTransitionPlanner creates a new PalletTransitionPlanner instance.
func NewPalletTransitionPlanner() PalletTransitionPlanner {
	return PalletTransitionPlanner{}
}

// Plan computes the transition for a requested pallet update.
//
// The requested slotID must be consistent with the requested status: set iff
// Stored. Quantity bounds against the new capacity are enforced separately by
// Pallet.ApplyTransition.
func (pl PalletTransitionPlanner) Plan(
	old *pallet.Pallet,
	quantity int,
	status pallet.Status,
	slotID *kernel.UUID,
) (Transition, error) {
	if err := old.Validate(); err != nil {
		return Transition{}, err
	}
	if err := status.Validate(); err != nil {
		return Transition{}, err
	}

	if status.IsStored() && slotID == nil {
		return Transition{}, errs.NewValueIsRequiredError("slotID is required for a stored pallet")
	}
	if !status.IsStored() && slotID != nil {
		return Transition{}, errs.NewValueIsInvalidError("slotID must be empty unless the pallet is stored")
	}

	wasStored := old.IsStored()
	nowStored := status.IsStored()

	var t Transition

	switch {
	case wasStored && !nowStored:
		t.StockDelta = -old.Quantity()
		t.ReleaseSlotID = old.SlotID()

	case !wasStored && nowStored:
		t.StockDelta = quantity
		t.OccupySlotID = slotID

	case wasStored && nowStored:
		t.StockDelta = quantity - old.Quantity()
		if !old.SlotID().IsEqual(*slotID) {
			t.ReleaseSlotID = old.SlotID()
			t.OccupySlotID = slotID
		}
	}

	return t, nil
}

// PlanDeletion computes the reversal for removing a pallet: a stored pallet
// gives back its slot and its stock contribution. The stock reversal must be
// applied clamped, see StockLedger.ApplyClamped.
func (pl PalletTransitionPlanner) PlanDeletion(old *pallet.Pallet) (Transition, error) {
	if err := old.Validate(); err != nil {
		return Transition{}, err
	}

	var t Transition
	if old.IsStored() {
		t.StockDelta = -old.Quantity()
		t.ReleaseSlotID = old.SlotID()
	}
	return t, nil
}

// PlanCreation computes the effects of introducing a new pallet: a pallet
// created directly in Stored state adds its quantity to stock and occupies
// its slot.
func (pl PalletTransitionPlanner) PlanCreation(p *pallet.Pallet) (Transition, error) {
	if err := p.Validate(); err != nil {
		return Transition{}, err
	}

	var t Transition
	if p.IsStored() {
		t.StockDelta = p.Quantity()
		t.OccupySlotID = p.SlotID()
	}
	return t, nil
}
