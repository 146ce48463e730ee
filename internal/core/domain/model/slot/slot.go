package slot

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrSlotAlreadyOccupied indicates that the slot is held by a different
	// pallet. The conflicting occupant is left untouched.
	ErrSlotAlreadyOccupied = errors.New("slot is already occupied by another pallet")

	// ErrSlotIsNotConstructed is returned when a Slot instance was not created
	// through NewSlot or RestoreSlot.
	ErrSlotIsNotConstructed = errors.New("Slot must be created via NewSlot or RestoreSlot constructor")
)

// Slot is a storage position in the warehouse. It owns its occupancy state:
// the optional back-reference to the pallet currently bound to it.
//
// The occupancy invariant is binary: a slot either references exactly one
// pallet and is occupied, or references none and is free. The pallet workflow
// never binds two slots to one pallet or leaves a slot marked occupied with
// no owner.
type Slot struct {
	// id is the unique identifier for the slot
	id kernel.UUID

	// name is the human-readable position label, e.g. "A-03-2-1"
	name string

	// level is the shelf level within the bay
	level int

	// palletID references the occupying pallet, nil when free
	palletID *kernel.UUID

	// guard ensures the aggregate was created via a constructor
	guard kernel.ConstructorGuard
}

// NewSlot creates a free Slot.
func NewSlot(id kernel.UUID, name string, level int) (*Slot, error) {
	s := &Slot{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setLevel(level),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSlot reconstructs a Slot from persistence, including its occupant.
func RestoreSlot(id kernel.UUID, name string, level int, palletID *kernel.UUID) (*Slot, error) {
	s := &Slot{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setLevel(level),
		s.setPalletID(palletID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Slot was created through a constructor.
func (s *Slot) Validate() error {
	if s == nil {
		return ErrSlotIsNotConstructed
	}
	return s.guard.Validate(ErrSlotIsNotConstructed)
}

// IsEqual compares two slots by identity.
func (s *Slot) IsEqual(other *Slot) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the slot's unique identifier.
func (s *Slot) ID() kernel.UUID {
	return s.id
}

// Name returns the position label.
func (s *Slot) Name() string {
	return s.name
}

// Level returns the shelf level.
func (s *Slot) Level() int {
	return s.level
}

// PalletID returns the occupying pallet's ID, or nil when the slot is free.
func (s *Slot) PalletID() *kernel.UUID {
	return s.palletID
}

// IsOccupied reports whether a pallet is bound to the slot.
func (s *Slot) IsOccupied() bool {
	return s.palletID != nil
}

// Occupy binds the given pallet to the slot.
//
// Occupying a slot already held by the same pallet is a no-op. Occupying a
// slot held by a different pallet fails with ErrSlotAlreadyOccupied.
func (s *Slot) Occupy(palletID kernel.UUID) error {
	if err := palletID.Validate(); err != nil {
		return err
	}

	if s.palletID != nil {
		if s.palletID.IsEqual(palletID) {
			return nil
		}
		return ErrSlotAlreadyOccupied
	}

	s.palletID = &palletID
	return nil
}

// Release frees the slot. Releasing a free slot is a no-op, not an error,
// so retried releases stay safe.
func (s *Slot) Release() {
	s.palletID = nil
}

func (s *Slot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Slot) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	s.name = name
	return nil
}

func (s *Slot) setLevel(level int) error {
	if level < 0 {
		return errs.NewValueIsInvalidError("level must not be negative")
	}
	s.level = level
	return nil
}

func (s *Slot) setPalletID(palletID *kernel.UUID) error {
	if palletID != nil {
		if err := palletID.Validate(); err != nil {
			return err
		}
	}
	s.palletID = palletID
	return nil
}
