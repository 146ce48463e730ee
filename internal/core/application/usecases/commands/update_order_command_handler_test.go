package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restorePendingOrder(t *testing.T, prod *product.Product, quantity int) *order.Order {
	t.Helper()
	li, err := order.NewLineItem(prod.ID(), quantity, prod.UnitPriceCents())
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Jamie Rivera", "12 Dock Rd", "4242",
		order.Pending, []order.LineItem{li},
	)
	require.NoError(t, err)
	return o
}

func TestUpdateOrderCommandHandler_Handle_SwapsLineStock(t *testing.T) {
	ctx := t.Context()
	oldProd := restoreTestProduct(t, 10)
	newProd := restoreTestProduct(t, 8)
	existing := restorePendingOrder(t, oldProd, 4)

	cmd, err := commands.NewUpdateOrderCommand(
		existing.ID(), "Jamie Rivera", "12 Dock Rd", "4242", order.Pending,
		[]commands.OrderLineInput{{ProductID: newProd.ID(), Quantity: 5}},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductRepository").Return(productRepo)
	orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	productRepo.On("GetForUpdate", ctx, oldProd.ID()).Return(oldProd, nil).Once()
	productRepo.On("GetForUpdate", ctx, newProd.ID()).Return(newProd, nil).Once()
	productRepo.On("Update", ctx, oldProd).Return(nil).Once()
	productRepo.On("Update", ctx, newProd).Return(nil).Once()
	orderRepo.On("Update", ctx, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, 14, oldProd.StockedQuantity())
	assert.Equal(t, 3, newProd.StockedQuantity())
	require.Len(t, existing.LineItems(), 1)
	assert.True(t, existing.LineItems()[0].ProductID().IsEqual(newProd.ID()))
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_MissingOldProductIsSkipped(t *testing.T) {
	ctx := t.Context()
	oldProd := restoreTestProduct(t, 10)
	newProd := restoreTestProduct(t, 8)
	existing := restorePendingOrder(t, oldProd, 4)

	cmd, err := commands.NewUpdateOrderCommand(
		existing.ID(), "Jamie Rivera", "12 Dock Rd", "4242", order.Pending,
		[]commands.OrderLineInput{{ProductID: newProd.ID(), Quantity: 5}},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductRepository").Return(productRepo)
	orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	productRepo.On("GetForUpdate", ctx, oldProd.ID()).
		Return(nil, errs.NewObjectNotFoundError("productId", oldProd.ID())).Once()
	productRepo.On("GetForUpdate", ctx, newProd.ID()).Return(newProd, nil).Once()
	productRepo.On("Update", ctx, newProd).Return(nil).Once()
	orderRepo.On("Update", ctx, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, 3, newProd.StockedQuantity())
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_UnchangedLinesSkipStockMoves(t *testing.T) {
	ctx := t.Context()
	prod := restoreTestProduct(t, 10)
	existing := restorePendingOrder(t, prod, 4)

	cmd, err := commands.NewUpdateOrderCommand(
		existing.ID(), "J. Rivera", "44 Pier Ave", "1111", order.Processing,
		[]commands.OrderLineInput{{ProductID: prod.ID(), Quantity: 4}},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	orderRepo.On("Update", ctx, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, 10, prod.StockedQuantity())
	assert.Equal(t, order.Processing, existing.Status())
	assert.Equal(t, "J. Rivera", existing.CustomerName())
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_CanceledStatusRejected(t *testing.T) {
	ctx := t.Context()
	prod := restoreTestProduct(t, 10)
	existing := restorePendingOrder(t, prod, 4)

	cmd, err := commands.NewUpdateOrderCommand(
		existing.ID(), "Jamie Rivera", "", "", order.Canceled,
		[]commands.OrderLineInput{{ProductID: prod.ID(), Quantity: 4}},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_LineEditOutsidePendingRejected(t *testing.T) {
	ctx := t.Context()
	prod := restoreTestProduct(t, 10)
	newProd := restoreTestProduct(t, 10)
	li, err := order.NewLineItem(prod.ID(), 4, prod.UnitPriceCents())
	require.NoError(t, err)
	existing, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Jamie Rivera", "", "",
		order.Processing, []order.LineItem{li},
	)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateOrderCommand(
		existing.ID(), "Jamie Rivera", "", "", order.Processing,
		[]commands.OrderLineInput{{ProductID: newProd.ID(), Quantity: 2}},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductRepository").Return(productRepo)
	orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	productRepo.On("GetForUpdate", ctx, prod.ID()).Return(prod, nil).Once()
	productRepo.On("GetForUpdate", ctx, newProd.ID()).Return(newProd, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateOrderCommandHandler(factory, nil)

	err := h.Handle(t.Context(), commands.UpdateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrUpdateOrderCommandIsNotConstructed)
}
