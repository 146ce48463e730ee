package commands

import (
	"context"
	"errors"
	"log/slog"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles the business logic for order updates.
//
// When the requested lines differ from the stored ones, the old reservation
// is restored first and the new lines are deducted afterwards, all inside one
// transaction. Restoring is best-effort: a product that has disappeared since
// the order was placed is logged and skipped rather than failing the update.
// Deduction is strict and fails the whole update on insufficient stock.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ledger     services.StockLedger
	logger     *slog.Logger
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) UpdateOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewStockLedger(),
		logger:     logger,
	}
}

// Handle processes the order update command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !linesMatch(existing.LineItems(), cmd.Lines()) {
		if err = h.swapLineItems(ctx, uow, existing, cmd.Lines()); err != nil {
			return err
		}
	}

	if err = existing.ChangeDetails(cmd.CustomerName(), cmd.ShippingAddress(), cmd.PaymentLast4()); err != nil {
		return err
	}
	if cmd.Status() != existing.Status() {
		if err = existing.ChangeStatus(cmd.Status()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// swapLineItems restores the stock reserved by the order's current lines and
// deducts the requested ones, then replaces the lines on the aggregate.
func (h *UpdateOrderCommandHandler) swapLineItems(
	ctx context.Context,
	uow OrderUoW,
	existing *order.Order,
	lines []OrderLineInput,
) error {
	productRepo := uow.ProductRepository()
	products := make(map[string]*product.Product)

	for _, li := range existing.LineItems() {
		prod, err := productRepo.GetForUpdate(ctx, li.ProductID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				h.logger.Warn("skipping stock restore for missing product",
					"orderId", existing.ID(), "productId", li.ProductID())
				continue
			}
			return err
		}
		products[prod.ID().String()] = prod
	}
	if err := h.ledger.Release(products, existing.LineItems()); err != nil {
		return err
	}

	newItems := make([]order.LineItem, 0, len(lines))
	for _, line := range lines {
		prod, ok := products[line.ProductID.String()]
		if !ok {
			var err error
			prod, err = productRepo.GetForUpdate(ctx, line.ProductID)
			if err != nil {
				return err
			}
			products[prod.ID().String()] = prod
		}

		lineItem, err := order.NewLineItem(line.ProductID, line.Quantity, prod.UnitPriceCents())
		if err != nil {
			return err
		}
		newItems = append(newItems, lineItem)
	}

	if err := existing.ReplaceLineItems(newItems); err != nil {
		return err
	}
	if err := h.ledger.Reserve(products, newItems); err != nil {
		return err
	}

	for _, prod := range products {
		if err := productRepo.Update(ctx, prod); err != nil {
			return err
		}
	}

	return nil
}

// linesMatch reports whether the requested lines are identical to the stored
// ones, so unchanged updates skip the stock swap entirely.
func linesMatch(items []order.LineItem, lines []OrderLineInput) bool {
	if len(items) != len(lines) {
		return false
	}
	for i, li := range items {
		if !li.ProductID().IsEqual(lines[i].ProductID) || li.Quantity() != lines[i].Quantity {
			return false
		}
	}
	return true
}
