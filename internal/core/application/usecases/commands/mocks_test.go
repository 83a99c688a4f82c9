package commands_test

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/discount"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}
func (m *MockPaymentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}
func (m *MockPaymentRepository) GetActiveByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockDiscountRepository struct{ mock.Mock }

func (m *MockDiscountRepository) GetActiveForProducts(
	ctx context.Context,
	productIDs []kernel.UUID,
	at time.Time,
) (map[kernel.UUID]*discount.Discount, error) {
	args := m.Called(ctx, productIDs, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]*discount.Discount), args.Error(1)
}

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) Append(ctx context.Context, events ...order.StatusChangedEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
func (m *MockEventRepository) GetUnpublished(ctx context.Context, limit int) ([]order.StatusChangedEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.StatusChangedEvent), args.Error(1)
}
func (m *MockEventRepository) MarkPublished(ctx context.Context, ids []kernel.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type MockStatusNotifier struct{ mock.Mock }

func (m *MockStatusNotifier) Notify(ctx context.Context, event order.StatusChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type txManagerMock struct{ mock.Mock }

func (m *txManagerMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txManagerMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txManagerMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCheckoutUoW struct{ txManagerMock }

func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCheckoutUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockCheckoutUoW) DiscountRepository() ports.DiscountRepository {
	args := m.Called()
	return args.Get(0).(ports.DiscountRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockOrderStatusUoW struct{ txManagerMock }

func (m *MockOrderStatusUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderStatusUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockOrderStatusUoW) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

type MockOrderStatusUoWFactory struct{ mock.Mock }

func (m *MockOrderStatusUoWFactory) Create() commands.OrderStatusUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderStatusUoW)
}

type MockPaymentUoW struct{ txManagerMock }

func (m *MockPaymentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockPaymentUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}
func (m *MockPaymentUoW) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockDeliveryUoW struct{ txManagerMock }

func (m *MockDeliveryUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}
func (m *MockDeliveryUoW) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockEventUoW struct{ txManagerMock }

func (m *MockEventUoW) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

type MockEventUoWFactory struct{ mock.Mock }

func (m *MockEventUoWFactory) Create() commands.EventUoW {
	args := m.Called()
	return args.Get(0).(commands.EventUoW)
}
