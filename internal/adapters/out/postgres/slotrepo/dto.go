// Package slotrepo provides data transfer objects and mapping functions for slot persistence.
// This package implements the repository pattern for the slot domain aggregate, handling
// the conversion between domain entities and database representations.
package slotrepo

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/slot"

	"github.com/google/uuid"
)

// SlotDTO represents the database structure for persisting slot aggregates.
// The pallet reference is NULL while the slot is free; a unique index keeps
// a pallet from appearing in two slots.
type SlotDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Level    int
	PalletID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
}

// TableName specifies the database table name for slot entities.
// Overrides GORM's default naming convention to use "slots".
func (SlotDTO) TableName() string {
	return "slots"
}

// fromDomain converts a slot domain aggregate to its database representation.
func fromDomain(slot *slot.Slot) SlotDTO {
	var palletID *uuid.UUID
	if id := slot.PalletID(); id != nil {
		raw := id.Bytes()
		palletID = &raw
	}

	return SlotDTO{
		ID:       slot.ID().Bytes(),
		Name:     slot.Name(),
		Level:    slot.Level(),
		PalletID: palletID,
	}
}

// toDomain converts a database DTO to a slot domain aggregate.
func toDomain(dto SlotDTO) (*slot.Slot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var palletID *kernel.UUID
	if dto.PalletID != nil {
		pID, palletErr := kernel.UUIDFromBytes((*dto.PalletID)[:])
		if palletErr != nil {
			return nil, palletErr
		}

		palletID = &pID
	}

	return slot.RestoreSlot(id, dto.Name, dto.Level, palletID)
}
