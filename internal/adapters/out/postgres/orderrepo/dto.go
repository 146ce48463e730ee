// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table and load with the order; the creation
// timestamp is set once by the database and never rewritten.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;index"`
	CustomerName    string
	ShippingAddress string
	PaymentLast4    string
	Status          int
	CreatedAt       time.Time     `gorm:"autoCreateTime"`
	Items           []LineItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one order line. An order carries at most one line
// per product, so the order and product references form the key.
type LineItemDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity       int
	UnitPriceCents int64
}

// TableName specifies the database table name for order line entities.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	lineItems := order.LineItems()
	items := make([]LineItemDTO, 0, len(lineItems))
	for _, li := range lineItems {
		items = append(items, LineItemDTO{
			OrderID:        order.ID().Bytes(),
			ProductID:      li.ProductID().Bytes(),
			Quantity:       li.Quantity(),
			UnitPriceCents: li.UnitPriceCents(),
		})
	}

	return OrderDTO{
		ID:              order.ID().Bytes(),
		UserID:          order.UserID().Bytes(),
		CustomerName:    order.CustomerName(),
		ShippingAddress: order.ShippingAddress(),
		PaymentLast4:    order.PaymentLast4(),
		Status:          int(order.Status()),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(item.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		li, itemErr := order.NewLineItem(productID, item.Quantity, item.UnitPriceCents)
		if itemErr != nil {
			return nil, itemErr
		}

		lineItems = append(lineItems, li)
	}

	return order.RestoreOrder(
		id,
		userID,
		dto.CustomerName,
		dto.ShippingAddress,
		dto.PaymentLast4,
		order.Status(dto.Status),
		lineItems,
	)
}
