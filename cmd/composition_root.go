package cmd

import (
	"log/slog"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/notifier"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, handlers, and domain services together.
// Each Create method hands out a ready-to-use handler; handlers are cheap
// value types, so no caching is needed.
type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	coordinator services.StatusCoordinator
	logger      *slog.Logger
}

// NewCompositionRoot builds the object graph from the shared database
// connection and logger.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		coordinator: services.NewStatusCoordinator(),
		logger:      logger,
	}
}

// NewHTTPHandlers bundles every handler the HTTP server dispatches to.
func (c *CompositionRoot) NewHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		SetOrderStatus:       c.CreateSetOrderStatusCommandHandler(),
		SubmitPayment:        c.CreateSubmitPaymentProofCommandHandler(),
		VerifyPayment:        c.CreateVerifyPaymentCommandHandler(),
		RejectPayment:        c.CreateRejectPaymentCommandHandler(),
		CreateDelivery:       c.CreateCreateDeliveryCommandHandler(),
		UpdateDeliveryStatus: c.CreateUpdateDeliveryStatusCommandHandler(),
		DeleteDelivery:       c.CreateDeleteDeliveryCommandHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		ListCustomerOrders:   c.CreateListCustomerOrdersQueryHandler(),
		ListAllOrders:        c.CreateListAllOrdersQueryHandler(),
	}
}

// NewJobManager wires the background jobs.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDispatchStatusEventsCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.OrderStatusUoWFactory = FuncOrderStatusUoWFactory(func() commands.OrderStatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(f, c.coordinator)
}

func (c *CompositionRoot) CreateSubmitPaymentProofCommandHandler() commands.SubmitPaymentProofCommandHandler {
	return commands.NewSubmitPaymentProofCommandHandler(c.paymentUoWFactory(), c.coordinator)
}

func (c *CompositionRoot) CreateVerifyPaymentCommandHandler() commands.VerifyPaymentCommandHandler {
	return commands.NewVerifyPaymentCommandHandler(c.paymentUoWFactory(), c.coordinator)
}

func (c *CompositionRoot) CreateRejectPaymentCommandHandler() commands.RejectPaymentCommandHandler {
	return commands.NewRejectPaymentCommandHandler(c.paymentUoWFactory(), c.coordinator)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory(), c.coordinator, c.logger)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.deliveryUoWFactory(), c.coordinator)
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	return commands.NewDeleteDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateDispatchStatusEventsCommandHandler() commands.DispatchStatusEventsCommandHandler {
	var f commands.EventUoWFactory = FuncEventUoWFactory(func() commands.EventUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchStatusEventsCommandHandler(f, notifier.NewSlogStatusNotifier(c.logger))
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAllOrdersQueryHandler() queries.ListAllOrdersQueryHandler {
	return queries.NewListAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderStatusUoWFactory func() commands.OrderStatusUoW

func (f FuncOrderStatusUoWFactory) Create() commands.OrderStatusUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncEventUoWFactory func() commands.EventUoW

func (f FuncEventUoWFactory) Create() commands.EventUoW {
	return f()
}
