// Package palletrepo provides data transfer objects and mapping functions for pallet persistence.
// This package implements the repository pattern for the pallet domain aggregate, handling
// the conversion between domain entities and database representations.
package palletrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/pallet"

	"github.com/google/uuid"
)

// PalletDTO represents the database structure for persisting pallet aggregates.
// The slot reference is NULL unless the pallet is stored; the purchase order
// reference is set only for inbound pallets created through the receiving
// workflow.
type PalletDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	ProductID       uuid.UUID `gorm:"type:uuid;index"`
	Quantity        int
	MaxCapacity     int
	Status          int        `gorm:"index"`
	SlotID          *uuid.UUID `gorm:"type:uuid;index"`
	PurchaseOrderID *uuid.UUID `gorm:"type:uuid;index"`
	SupplierName    string
	ManufacturedAt  *time.Time
	ExpiresAt       *time.Time
}

// TableName specifies the database table name for pallet entities.
// Overrides GORM's default naming convention to use "pallets".
func (PalletDTO) TableName() string {
	return "pallets"
}

// fromDomain converts a pallet domain aggregate to its database representation.
func fromDomain(pallet *pallet.Pallet) PalletDTO {
	var slotID *uuid.UUID
	if id := pallet.SlotID(); id != nil {
		raw := id.Bytes()
		slotID = &raw
	}

	var purchaseOrderID *uuid.UUID
	if id := pallet.PurchaseOrderID(); id != nil {
		raw := id.Bytes()
		purchaseOrderID = &raw
	}

	return PalletDTO{
		ID:              pallet.ID().Bytes(),
		Name:            pallet.Name(),
		ProductID:       pallet.ProductID().Bytes(),
		Quantity:        pallet.Quantity(),
		MaxCapacity:     pallet.MaxCapacity(),
		Status:          int(pallet.Status()),
		SlotID:          slotID,
		PurchaseOrderID: purchaseOrderID,
		SupplierName:    pallet.SupplierName(),
		ManufacturedAt:  pallet.ManufacturedAt(),
		ExpiresAt:       pallet.ExpiresAt(),
	}
}

// toDomain converts a database DTO to a pallet domain aggregate.
func toDomain(dto PalletDTO) (*pallet.Pallet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var slotID *kernel.UUID
	if dto.SlotID != nil {
		sID, slotErr := kernel.UUIDFromBytes((*dto.SlotID)[:])
		if slotErr != nil {
			return nil, slotErr
		}

		slotID = &sID
	}

	var purchaseOrderID *kernel.UUID
	if dto.PurchaseOrderID != nil {
		poID, poErr := kernel.UUIDFromBytes((*dto.PurchaseOrderID)[:])
		if poErr != nil {
			return nil, poErr
		}

		purchaseOrderID = &poID
	}

	return pallet.RestorePallet(
		id,
		dto.Name,
		productID,
		dto.Quantity,
		dto.MaxCapacity,
		pallet.Status(dto.Status),
		slotID,
		purchaseOrderID,
		dto.SupplierName,
		dto.ManufacturedAt,
		dto.ExpiresAt,
	)
}
