package commands

import (
	"context"

	"warehouse/internal/core/domain/model/purchaseorder"
)

// CreatePurchaseOrderCommandHandler handles the business logic for opening a
// purchase order. Every referenced product must exist; its current unit
// price is snapshotted onto the line.
type CreatePurchaseOrderCommandHandler struct {
	uowFactory PurchaseOrderUoWFactory
}

// NewCreatePurchaseOrderCommandHandler creates a handler for purchase order
// creation. Requires a PurchaseOrderUoWFactory for transactional persistence.
func NewCreatePurchaseOrderCommandHandler(uowFactory PurchaseOrderUoWFactory) CreatePurchaseOrderCommandHandler {
	return CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purchase order creation command.
func (h *CreatePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd CreatePurchaseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	lines := make([]purchaseorder.Line, 0, len(cmd.Lines()))
	for _, input := range cmd.Lines() {
		prod, err := productRepo.Get(ctx, input.ProductID)
		if err != nil {
			return err
		}

		line, err := purchaseorder.NewLine(
			input.ProductID, input.Quantity, input.ExpectedPallets, prod.UnitPriceCents(),
		)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	po, err := purchaseorder.NewPurchaseOrder(
		cmd.PurchaseOrderID(), cmd.SupplierName(), cmd.ExpectedArrival(), lines,
	)
	if err != nil {
		return err
	}

	if err = uow.PurchaseOrderRepository().Add(ctx, po); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
