package cmd

import (
	"log/slog"
	"os"

	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateCreatePalletCommandHandler() commands.CreatePalletCommandHandler {
	return commands.NewCreatePalletCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePalletCommandHandler() commands.UpdatePalletCommandHandler {
	return commands.NewUpdatePalletCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateDeletePalletCommandHandler() commands.DeletePalletCommandHandler {
	return commands.NewDeletePalletCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCreatePurchaseOrderCommandHandler() commands.CreatePurchaseOrderCommandHandler {
	return commands.NewCreatePurchaseOrderCommandHandler(c.purchaseOrderUoWFactory())
}

func (c *CompositionRoot) CreateAdvancePurchaseOrderStatusCommandHandler() commands.AdvancePurchaseOrderStatusCommandHandler {
	return commands.NewAdvancePurchaseOrderStatusCommandHandler(c.purchaseOrderUoWFactory())
}

func (c *CompositionRoot) CreateAttachPalletCommandHandler() commands.AttachPalletCommandHandler {
	return commands.NewAttachPalletCommandHandler(c.purchaseOrderUoWFactory())
}

func (c *CompositionRoot) CreateGetStoredPalletsQueryHandler() queries.GetStoredPalletsQueryHandler {
	return queries.NewGetStoredPalletsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByUserQueryHandler() queries.GetOrdersByUserQueryHandler {
	return queries.NewGetOrdersByUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPurchaseOrdersByStatusQueryHandler() queries.GetPurchaseOrdersByStatusQueryHandler {
	return queries.NewGetPurchaseOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, c.logger)
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) purchaseOrderUoWFactory() commands.PurchaseOrderUoWFactory {
	return FuncPurchaseOrderUoWFactory(func() commands.PurchaseOrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPurchaseOrderUoWFactory func() commands.PurchaseOrderUoW

func (f FuncPurchaseOrderUoWFactory) Create() commands.PurchaseOrderUoW {
	return f()
}
