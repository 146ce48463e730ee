// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// SlotRepoFactory provides access to the slot repository within a transaction.
	SlotRepoFactory interface {
		SlotRepository() ports.SlotRepository
	}

	// PalletRepoFactory provides access to the pallet repository within a transaction.
	PalletRepoFactory interface {
		PalletRepository() ports.PalletRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PurchaseOrderRepoFactory provides access to the purchase order repository within a transaction.
	PurchaseOrderRepoFactory interface {
		PurchaseOrderRepository() ports.PurchaseOrderRepository
	}

	// InventoryUoW manages transactions for pallet lifecycle operations,
	// which touch pallets, products, and slots together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   palletRepo := uow.PalletRepository()
	//   productRepo := uow.ProductRepository()
	//   slotRepo := uow.SlotRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	InventoryUoW interface {
		TxManager
		PalletRepoFactory
		ProductRepoFactory
		SlotRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// OrderUoW manages transactions for order fulfillment operations,
	// which touch orders and product stock together.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PurchaseOrderUoW manages transactions for purchase order workflow
	// operations, including inbound pallet attachment.
	PurchaseOrderUoW interface {
		TxManager
		PurchaseOrderRepoFactory
		PalletRepoFactory
		ProductRepoFactory
	}

	// PurchaseOrderUoWFactory creates new purchase order unit of work instances.
	PurchaseOrderUoWFactory interface {
		Create() PurchaseOrderUoW
	}
)
