package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/discount"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	p := productWithStock(t, productID, 10000, 5)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: productID, Quantity: 3}})

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	discountRepo := new(MockDiscountRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetForUpdate", mock.Anything, []kernel.UUID{productID}).
			Return([]*product.Product{p}, nil).Once(),
		uow.On("DiscountRepository").Return(discountRepo).Once(),
		discountRepo.On("GetActiveForProducts", mock.Anything, []kernel.UUID{productID}, mock.AnythingOfType("time.Time")).
			Return(map[kernel.UUID]*discount.Discount{}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Update", mock.Anything, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.Created, created.Status())
	assert.Equal(t, int64(30000), created.Total().Amount())
	assert.Equal(t, 2, p.Stock())
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DiscountApplied(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	p := productWithStock(t, productID, 10000, 5)
	now := time.Now().UTC()
	d, err := discount.NewDiscount(kernel.NewUUID(), productID, 20, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: productID, Quantity: 2}})

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	discountRepo := new(MockDiscountRepository)
	uow := new(MockCheckoutUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo)
	uow.On("DiscountRepository").Return(discountRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	productRepo.On("GetForUpdate", mock.Anything, []kernel.UUID{productID}).
		Return([]*product.Product{p}, nil).Once()
	discountRepo.On("GetActiveForProducts", mock.Anything, []kernel.UUID{productID}, mock.AnythingOfType("time.Time")).
		Return(map[kernel.UUID]*discount.Discount{productID: d}, nil).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	productRepo.On("Update", mock.Anything, p).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	// 10000 * 80% * 2
	assert.Equal(t, int64(16000), created.Total().Amount())
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	p := productWithStock(t, productID, 10000, 1)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: productID, Quantity: 3}})

	productRepo := new(MockProductRepository)
	discountRepo := new(MockDiscountRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetForUpdate", mock.Anything, []kernel.UUID{productID}).
			Return([]*product.Product{p}, nil).Once(),
		uow.On("DiscountRepository").Return(discountRepo).Once(),
		discountRepo.On("GetActiveForProducts", mock.Anything, []kernel.UUID{productID}, mock.AnythingOfType("time.Time")).
			Return(map[kernel.UUID]*discount.Discount{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.Nil(t, created)
	assert.Equal(t, 1, p.Stock())
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockCheckoutUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: 1}})

	uow := new(MockCheckoutUoW)
	factory := new(MockCheckoutUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
