package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_RestoresStock(t *testing.T) {
	ctx := t.Context()
	prod := restoreTestProduct(t, 6)
	existing := restorePendingOrder(t, prod, 4)

	cmd, err := commands.NewCancelOrderCommand(existing.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductRepository").Return(productRepo)
	orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	productRepo.On("GetForUpdate", ctx, prod.ID()).Return(prod, nil).Once()
	productRepo.On("Update", ctx, prod).Return(nil).Once()
	orderRepo.On("Update", ctx, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, 10, prod.StockedQuantity())
	assert.Equal(t, order.Canceled, existing.Status())
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NonPendingRejected(t *testing.T) {
	ctx := t.Context()
	prod := restoreTestProduct(t, 6)
	li, err := order.NewLineItem(prod.ID(), 4, prod.UnitPriceCents())
	require.NoError(t, err)
	existing, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Jamie Rivera", "", "",
		order.Shipped, []order.LineItem{li},
	)
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(existing.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	assert.Equal(t, order.Shipped, existing.Status())
	assert.Equal(t, 6, prod.StockedQuantity())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_MissingProductIsSkipped(t *testing.T) {
	ctx := t.Context()
	prod := restoreTestProduct(t, 6)
	existing := restorePendingOrder(t, prod, 4)

	cmd, err := commands.NewCancelOrderCommand(existing.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductRepository").Return(productRepo)
	orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	productRepo.On("GetForUpdate", ctx, prod.ID()).
		Return(nil, errs.NewObjectNotFoundError("productId", prod.ID())).Once()
	orderRepo.On("Update", ctx, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Canceled, existing.Status())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewCancelOrderCommandHandler(factory, nil)

	err := h.Handle(t.Context(), commands.CancelOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
}
