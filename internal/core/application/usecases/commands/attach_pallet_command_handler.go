package commands

import (
	"context"

	"warehouse/internal/core/domain/model/pallet"
)

// AttachPalletCommandHandler handles the business logic for inbound pallet
// attachment. The purchase order must be Processing; the pallet is created
// ReadyToShip, bypassing slot and stock accounting until it is stored
// through the regular pallet update path after physical receipt.
type AttachPalletCommandHandler struct {
	uowFactory PurchaseOrderUoWFactory
}

// NewAttachPalletCommandHandler creates a handler for inbound pallet
// attachment. Requires a PurchaseOrderUoWFactory for transactional
// persistence.
func NewAttachPalletCommandHandler(uowFactory PurchaseOrderUoWFactory) AttachPalletCommandHandler {
	return AttachPalletCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pallet attachment command.
func (h *AttachPalletCommandHandler) Handle(ctx context.Context, cmd AttachPalletCommand) error {
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
	po, err := poRepo.Get(ctx, cmd.PurchaseOrderID())
	if err != nil {
		return err
	}

	if _, err = uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err = po.AttachPallet(cmd.PalletID()); err != nil {
		return err
	}

	inbound, err := pallet.NewInboundPallet(
		cmd.PalletID(), cmd.Name(), cmd.ProductID(),
		cmd.Quantity(), cmd.MaxCapacity(), po.ID(), po.SupplierName(),
	)
	if err != nil {
		return err
	}

	if err = uow.PalletRepository().Add(ctx, inbound); err != nil {
		return err
	}

	if err = poRepo.Update(ctx, po); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
