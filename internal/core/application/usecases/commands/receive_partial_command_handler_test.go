package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReceivePartialCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := testStore(t)
	item := testOrderItem(t, "cat-1", 10)
	ord := testShippedOrder(t, store, false, item)

	cmd, err := commands.NewReceivePartialCommand(store, ord.ID(), []commands.ReceiptInput{
		{ItemID: item.ID(), Quantity: 4},
	}, "left at the dock")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, store, ord.ID()).Return(ord, nil).Once(),
		repo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceivePartialCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.PartiallyDelivered, ord.Status())
	assert.Equal(t, 4, ord.ReceivedQuantity(item.ID()))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReceivePartialCommandHandler_Handle_QuantityExceedsOrdered(t *testing.T) {
	ctx := t.Context()
	store := testStore(t)
	item := testOrderItem(t, "cat-1", 10)
	ord := testShippedOrder(t, store, false, item)

	cmd, err := commands.NewReceivePartialCommand(store, ord.ID(), []commands.ReceiptInput{
		{ItemID: item.ID(), Quantity: 12},
	}, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, store, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceivePartialCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrQuantityExceedsOrdered)
	assert.Equal(t, order.Shipped, ord.Status())
	assert.Equal(t, 0, ord.ReceivedQuantity(item.ID()))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestReceivePartialCommandHandler_Handle_NegativeQuantity(t *testing.T) {
	ctx := t.Context()
	store := testStore(t)
	item := testOrderItem(t, "cat-1", 10)
	ord := testShippedOrder(t, store, false, item)

	cmd, err := commands.NewReceivePartialCommand(store, ord.ID(), []commands.ReceiptInput{
		{ItemID: item.ID(), Quantity: -1},
	}, "")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewReceivePartialCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
