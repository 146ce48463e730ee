package commands

import (
	"context"

	"warehouse/internal/core/domain/services"
)

// DeletePalletCommandHandler handles the business logic for pallet removal.
//
// A stored pallet's stock contribution is reversed with clamping at zero:
// the pallet being removed is the authority on what was stored, and
// historical drift must not block the deletion. The slot is released in the
// same transaction.
type DeletePalletCommandHandler struct {
	uowFactory InventoryUoWFactory
	planner    services.PalletTransitionPlanner
	ledger     services.StockLedger
	allocator  services.SlotAllocator
}

// NewDeletePalletCommandHandler creates a handler for pallet removal.
// Requires an InventoryUoWFactory for transactional persistence.
func NewDeletePalletCommandHandler(uowFactory InventoryUoWFactory) DeletePalletCommandHandler {
	return DeletePalletCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewPalletTransitionPlanner(),
		ledger:     services.NewStockLedger(),
		allocator:  services.NewSlotAllocator(),
	}
}

// Handle processes the pallet deletion command.
func (h *DeletePalletCommandHandler) Handle(ctx context.Context, cmd DeletePalletCommand) error {
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

	palletRepo := uow.PalletRepository()
	existing, err := palletRepo.Get(ctx, cmd.PalletID())
	if err != nil {
		return err
	}

	transition, err := h.planner.PlanDeletion(existing)
	if err != nil {
		return err
	}

	if transition.StockDelta != 0 {
		productRepo := uow.ProductRepository()
		prod, prodErr := productRepo.GetForUpdate(ctx, existing.ProductID())
		if prodErr != nil {
			return prodErr
		}
		if err = h.ledger.ApplyClamped(prod, transition.StockDelta); err != nil {
			return err
		}
		if err = productRepo.Update(ctx, prod); err != nil {
			return err
		}
	}

	if transition.ReleaseSlotID != nil {
		slotRepo := uow.SlotRepository()
		oldSlot, slotErr := slotRepo.GetForUpdate(ctx, *transition.ReleaseSlotID)
		if slotErr != nil {
			return slotErr
		}
		if err = h.allocator.Release(oldSlot); err != nil {
			return err
		}
		if err = slotRepo.Update(ctx, oldSlot); err != nil {
			return err
		}
	}

	if err = palletRepo.Delete(ctx, existing.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
