package commands

import (
	"context"

	"warehouse/internal/core/domain/services"
)

// UpdatePalletCommandHandler handles the business logic for pallet updates.
//
// The handler plans the minimal set of effects for the requested change:
//   - entering storage adds the quantity to stock and occupies the slot
//   - leaving storage removes the old quantity and releases the slot
//   - a quantity change while stored applies only the difference
//   - a slot change while stored swaps the two slot bindings
//
// All effects and the pallet row itself commit or roll back as one
// transaction, so stock totals and slot occupancy can never drift apart.
type UpdatePalletCommandHandler struct {
	uowFactory InventoryUoWFactory
	planner    services.PalletTransitionPlanner
	ledger     services.StockLedger
	allocator  services.SlotAllocator
}

// NewUpdatePalletCommandHandler creates a handler for pallet updates.
// Requires an InventoryUoWFactory for transactional persistence.
func NewUpdatePalletCommandHandler(uowFactory InventoryUoWFactory) UpdatePalletCommandHandler {
	return UpdatePalletCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewPalletTransitionPlanner(),
		ledger:     services.NewStockLedger(),
		allocator:  services.NewSlotAllocator(),
	}
}

// Handle processes the pallet update command.
func (h *UpdatePalletCommandHandler) Handle(ctx context.Context, cmd UpdatePalletCommand) error {
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

	transition, err := h.planner.Plan(existing, cmd.Quantity(), cmd.Status(), cmd.SlotID())
	if err != nil {
		return err
	}

	if err = existing.ApplyTransition(
		cmd.Name(), cmd.Quantity(), cmd.MaxCapacity(), cmd.Status(), cmd.SlotID(),
	); err != nil {
		return err
	}

	if transition.StockDelta != 0 {
		productRepo := uow.ProductRepository()
		prod, prodErr := productRepo.GetForUpdate(ctx, existing.ProductID())
		if prodErr != nil {
			return prodErr
		}
		if err = h.ledger.Apply(prod, transition.StockDelta); err != nil {
			return err
		}
		if err = productRepo.Update(ctx, prod); err != nil {
			return err
		}
	}

	slotRepo := uow.SlotRepository()
	if transition.ReleaseSlotID != nil {
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
	if transition.OccupySlotID != nil {
		newSlot, slotErr := slotRepo.GetForUpdate(ctx, *transition.OccupySlotID)
		if slotErr != nil {
			return slotErr
		}
		if err = h.allocator.Occupy(newSlot, existing.ID()); err != nil {
			return err
		}
		if err = slotRepo.Update(ctx, newSlot); err != nil {
			return err
		}
	}

	if err = palletRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
