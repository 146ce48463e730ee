package commands

import (
	"context"

	"warehouse/internal/core/domain/model/pallet"
	"warehouse/internal/core/domain/services"
)

// CreatePalletCommandHandler handles the business logic for pallet creation.
// A pallet created in Stored state occupies its slot and adds its quantity to
// the product's stocked quantity as one atomic transaction.
type CreatePalletCommandHandler struct {
	uowFactory InventoryUoWFactory
	planner    services.PalletTransitionPlanner
	ledger     services.StockLedger
	allocator  services.SlotAllocator
}

// NewCreatePalletCommandHandler creates a handler for pallet creation.
// Requires an InventoryUoWFactory for transactional persistence.
func NewCreatePalletCommandHandler(uowFactory InventoryUoWFactory) CreatePalletCommandHandler {
	return CreatePalletCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewPalletTransitionPlanner(),
		ledger:     services.NewStockLedger(),
		allocator:  services.NewSlotAllocator(),
	}
}

// Handle processes the pallet creation command.
// The referenced product must exist. For a Stored pallet the product row is
// locked, the stock delta applied, and the slot occupied; any failure rolls
// everything back.
func (h *CreatePalletCommandHandler) Handle(ctx context.Context, cmd CreatePalletCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newPallet, err := pallet.NewPallet(
		cmd.PalletID(), cmd.Name(), cmd.ProductID(),
		cmd.Quantity(), cmd.MaxCapacity(), cmd.Status(), cmd.SlotID(),
	)
	if err != nil {
		return err
	}

	transition, err := h.planner.PlanCreation(newPallet)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	if transition.StockDelta != 0 {
		prod, prodErr := productRepo.GetForUpdate(ctx, cmd.ProductID())
		if prodErr != nil {
			return prodErr
		}
		if err = h.ledger.Apply(prod, transition.StockDelta); err != nil {
			return err
		}
		if err = productRepo.Update(ctx, prod); err != nil {
			return err
		}
	} else {
		if _, err = productRepo.Get(ctx, cmd.ProductID()); err != nil {
			return err
		}
	}

	if transition.OccupySlotID != nil {
		slotRepo := uow.SlotRepository()
		targetSlot, slotErr := slotRepo.GetForUpdate(ctx, *transition.OccupySlotID)
		if slotErr != nil {
			return slotErr
		}
		if err = h.allocator.Occupy(targetSlot, newPallet.ID()); err != nil {
			return err
		}
		if err = slotRepo.Update(ctx, targetSlot); err != nil {
			return err
		}
	}

	if err = uow.PalletRepository().Add(ctx, newPallet); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
