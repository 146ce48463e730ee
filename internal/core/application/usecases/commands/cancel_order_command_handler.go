package commands

import (
	"context"
	"errors"
	"log/slog"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
)

// CancelOrderCommandHandler handles the business logic for order
// cancellation. Only Pending orders may be canceled; the reserved stock of
// every line item is returned in the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ledger     services.StockLedger
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CancelOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewStockLedger(),
		logger:     logger,
	}
}

// Handle processes the order cancellation command.
// A non-Pending order fails with errs.InvalidTransitionError. A product that
// has disappeared since the order was placed is logged and skipped so the
// cancellation still completes.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = existing.Cancel(); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	products := make(map[string]*product.Product)
	for _, li := range existing.LineItems() {
		prod, prodErr := productRepo.GetForUpdate(ctx, li.ProductID())
		if prodErr != nil {
			if errors.Is(prodErr, errs.ErrObjectNotFound) {
				h.logger.Warn("skipping stock restore for missing product",
					"orderId", existing.ID(), "productId", li.ProductID())
				continue
			}
			return prodErr
		}
		products[prod.ID().String()] = prod
	}

	if err = h.ledger.Release(products, existing.LineItems()); err != nil {
		return err
	}
	for _, prod := range products {
		if err = productRepo.Update(ctx, prod); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
