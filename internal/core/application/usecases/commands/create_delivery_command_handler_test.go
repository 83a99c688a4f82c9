package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := orderInStatus(t, order.Processing)
	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), o.ID(), address(t), false, adminActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
	deliveryRepo.On("GetByOrderID", mock.Anything, o.ID()).
		Return(nil, errs.NewObjectNotFoundError("delivery", nil)).Once()
	deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, services.NewStatusCoordinator(), discardLogger())
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, delivery.PendingShipment, created.Status())
	// delivery creation leaves the order in Processing
	assert.Equal(t, order.Processing, o.Status())
	require.NotNil(t, o.DeliveryID())
	assert.True(t, created.ID().IsEqual(*o.DeliveryID()))
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_OrderNotReady(t *testing.T) {
	ctx := t.Context()
	o := orderInStatus(t, order.AwaitingPayment)
	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), o.ID(), address(t), false, adminActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrderID", mock.Anything, o.ID()).
			Return(nil, errs.NewObjectNotFoundError("delivery", nil)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, services.NewStatusCoordinator(), discardLogger())
	created, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrOrderNotReady)
	assert.Nil(t, created)
	assert.Nil(t, o.DeliveryID())
}

func TestCreateDeliveryCommandHandler_Handle_OverrideBypassesReadiness(t *testing.T) {
	ctx := t.Context()
	o := orderInStatus(t, order.AwaitingPayment)
	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), o.ID(), address(t), true, adminActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
	deliveryRepo.On("GetByOrderID", mock.Anything, o.ID()).
		Return(nil, errs.NewObjectNotFoundError("delivery", nil)).Once()
	deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, services.NewStatusCoordinator(), discardLogger())
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
}

func TestCreateDeliveryCommandHandler_Handle_DuplicateDelivery(t *testing.T) {
	ctx := t.Context()
	o := orderInStatus(t, order.Processing)
	existing, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), address(t), time.Now().UTC())
	require.NoError(t, err)
	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), o.ID(), address(t), false, adminActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrderID", mock.Anything, o.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, services.NewStatusCoordinator(), discardLogger())
	created, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrDuplicateDelivery)
	assert.Nil(t, created)
}
