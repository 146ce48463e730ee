package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Every line's product row is locked, checked for sufficient stock, and
// deducted; the order and all stock changes commit as one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, userID, "Jamie Rivera", "12 Dock Rd", "4242", lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ledger     services.StockLedger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewStockLedger(),
	}
}

// Handle processes the order placement command.
// A missing product fails with ObjectNotFoundError; an insufficient balance
// fails with product.InsufficientStockError. Either way nothing is persisted.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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
	products := make(map[string]*product.Product, len(cmd.Lines()))
	lineItems := make([]order.LineItem, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		prod, err := productRepo.GetForUpdate(ctx, line.ProductID)
		if err != nil {
			return err
		}
		products[prod.ID().String()] = prod

		lineItem, err := order.NewLineItem(line.ProductID, line.Quantity, prod.UnitPriceCents())
		if err != nil {
			return err
		}
		lineItems = append(lineItems, lineItem)
	}

	if err := h.ledger.Reserve(products, lineItems); err != nil {
		return err
	}
	for _, prod := range products {
		if err := productRepo.Update(ctx, prod); err != nil {
			return err
		}
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.UserID(), cmd.CustomerName(),
		cmd.ShippingAddress(), cmd.PaymentLast4(), lineItems,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
