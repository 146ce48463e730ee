package commands

import (
	"context"
)

// AdvancePurchaseOrderStatusCommandHandler handles the business logic for
// advancing a purchase order through its linear status machine.
type AdvancePurchaseOrderStatusCommandHandler struct {
	uowFactory PurchaseOrderUoWFactory
}

// NewAdvancePurchaseOrderStatusCommandHandler creates a handler for purchase
// order status advancement. Requires a PurchaseOrderUoWFactory for
// transactional persistence.
func NewAdvancePurchaseOrderStatusCommandHandler(
	uowFactory PurchaseOrderUoWFactory,
) AdvancePurchaseOrderStatusCommandHandler {
	return AdvancePurchaseOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status advancement command.
func (h *AdvancePurchaseOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvancePurchaseOrderStatusCommand,
) error {
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

	poRepo := uow.PurchaseOrderRepository()
	existing, err := poRepo.Get(ctx, cmd.PurchaseOrderID())
	if err != nil {
		return err
	}

	if err = existing.AdvanceStatus(cmd.Target()); err != nil {
		return err
	}

	if err = poRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
