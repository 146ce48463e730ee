// Package purchaseorderrepo provides data transfer objects and mapping functions for
// purchase order persistence. This package implements the repository pattern for the
// purchase order domain aggregate, handling the conversion between domain entities
// and database representations.
package purchaseorderrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/purchaseorder"

	"github.com/google/uuid"
)

// PurchaseOrderDTO represents the database structure for persisting purchase
// order aggregates. Attached pallets are not stored here; each inbound pallet
// carries the purchase order reference, so the attachment list is derived.
type PurchaseOrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	SupplierName    string
	ExpectedArrival time.Time
	Status          int       `gorm:"index"`
	Lines           []LineDTO `gorm:"foreignKey:PurchaseOrderID;references:ID"`
}

// TableName specifies the database table name for purchase order entities.
// Overrides GORM's default naming convention to use "purchase_orders".
func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

// LineDTO represents one purchase order line. A purchase order carries at
// most one line per product, so the order and product references form the key.
type LineDTO struct {
	PurchaseOrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity        int
	ExpectedPallets int
	UnitPriceCents  int64
}

// TableName specifies the database table name for purchase order line entities.
func (LineDTO) TableName() string {
	return "purchase_order_lines"
}

// fromDomain converts a purchase order domain aggregate to its database representation.
func fromDomain(po *purchaseorder.PurchaseOrder) PurchaseOrderDTO {
	domainLines := po.Lines()
	lines := make([]LineDTO, 0, len(domainLines))
	for _, l := range domainLines {
		lines = append(lines, LineDTO{
			PurchaseOrderID: po.ID().Bytes(),
			ProductID:       l.ProductID().Bytes(),
			Quantity:        l.Quantity(),
			ExpectedPallets: l.ExpectedPallets(),
			UnitPriceCents:  l.UnitPriceCents(),
		})
	}

	return PurchaseOrderDTO{
		ID:              po.ID().Bytes(),
		SupplierName:    po.SupplierName(),
		ExpectedArrival: po.ExpectedArrival(),
		Status:          int(po.Status()),
		Lines:           lines,
	}
}

// toDomain converts a database DTO and the derived pallet attachments to a
// purchase order domain aggregate using RestorePurchaseOrder.
func toDomain(dto PurchaseOrderDTO, palletIDs []kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]purchaseorder.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(l.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := purchaseorder.NewLine(productID, l.Quantity, l.ExpectedPallets, l.UnitPriceCents)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	return purchaseorder.RestorePurchaseOrder(
		id,
		dto.SupplierName,
		dto.ExpectedArrival,
		purchaseorder.Status(dto.Status),
		lines,
		palletIDs,
	)
}
