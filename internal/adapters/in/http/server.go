// Package http exposes the fulfillment use cases over a REST API.
// It coordinates between HTTP handlers and application use cases: requests
// are bound and validated, the acting principal is read from headers set by
// the auth collaborator, and domain errors are mapped to HTTP status codes.
package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Headers carrying the acting principal, set by the auth collaborator in
// front of this service.
const (
	ActorIDHeader   = "X-Actor-Id"
	ActorRoleHeader = "X-Actor-Role"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	SetOrderStatus       commands.SetOrderStatusCommandHandler
	SubmitPayment        commands.SubmitPaymentProofCommandHandler
	VerifyPayment        commands.VerifyPaymentCommandHandler
	RejectPayment        commands.RejectPaymentCommandHandler
	CreateDelivery       commands.CreateDeliveryCommandHandler
	UpdateDeliveryStatus commands.UpdateDeliveryStatusCommandHandler
	DeleteDelivery       commands.DeleteDeliveryCommandHandler

	GetOrder           queries.GetOrderQueryHandler
	ListCustomerOrders queries.ListCustomerOrdersQueryHandler
	ListAllOrders      queries.ListAllOrdersQueryHandler
}

// Server handles the REST API surface of the fulfillment service.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderId", s.GetOrderByID)
	api.PATCH("/orders/:orderId/status", s.SetOrderStatus)
	api.GET("/customers/:customerId/orders", s.ListCustomerOrders)
	api.POST("/payments", s.SubmitPayment)
	api.PATCH("/payments/:paymentId/status", s.SetPaymentStatus)
	api.POST("/deliveries", s.CreateDelivery)
	api.PATCH("/deliveries/:deliveryId/status", s.SetDeliveryStatus)
	api.DELETE("/deliveries/:deliveryId", s.DeleteDelivery)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("customer_id", err))
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("product_id", itemErr))
		}
		items = append(items, commands.OrderItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, items)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	if !actor.IsAdmin() {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "listing all orders requires the admin role",
		})
	}

	query := queries.NewListAllOrdersQuery()

	summaries, err := s.handlers.ListAllOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(summaries))
}

// GetOrderByID handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queryOrderToResponse(resp))
}

// ListCustomerOrders handles GET /api/v1/customers/:customerId/orders.
func (s *Server) ListCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("customerId", err))
	}

	query, err := queries.NewListCustomerOrdersQuery(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	summaries, err := s.handlers.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(summaries))
}

// SetOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	var req SetOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, next, actor)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.SetOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// SubmitPayment handles POST /api/v1/payments.
func (s *Server) SubmitPayment(ctx echo.Context) error {
	var req SubmitPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("order_id", err))
	}

	method, err := payment.MethodFromString(req.Method)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSubmitPaymentProofCommand(
		kernel.NewUUID(), orderID, method, req.AmountMinor, req.ProofRef,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	submitted, err := s.handlers.SubmitPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, paymentToResponse(submitted))
}

// SetPaymentStatus handles PATCH /api/v1/payments/:paymentId/status.
// Verified settles the payment; Rejected records the reason and sends the
// order back to AwaitingPayment.
func (s *Server) SetPaymentStatus(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	paymentID, err := kernel.UUIDFromString(ctx.Param("paymentId"))
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("paymentId", err))
	}

	var req SetPaymentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	var updated *payment.Payment
	switch req.Status {
	case payment.Verified.String():
		cmd, cmdErr := commands.NewVerifyPaymentCommand(paymentID, actor)
		if cmdErr != nil {
			return s.fail(ctx, cmdErr)
		}
		updated, err = s.handlers.VerifyPayment.Handle(ctx.Request().Context(), cmd)

	case payment.Rejected.String():
		cmd, cmdErr := commands.NewRejectPaymentCommand(paymentID, req.Reason, actor)
		if cmdErr != nil {
			return s.fail(ctx, cmdErr)
		}
		updated, err = s.handlers.RejectPayment.Handle(ctx.Request().Context(), cmd)

	default:
		return s.fail(ctx, errs.NewValueIsInvalidError("status"))
	}

	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentToResponse(updated))
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req CreateDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("order_id", err))
	}

	address, err := kernel.NewAddress(
		req.Address.Street, req.Address.City, req.Address.PostalCode, req.Address.Country,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), orderID, address, req.Override, actor,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, deliveryToResponse(created))
}

// SetDeliveryStatus handles PATCH /api/v1/deliveries/:deliveryId/status.
func (s *Server) SetDeliveryStatus(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("deliveryId", err))
	}

	var req SetDeliveryStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	next, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, next, req.TrackingNumber, actor)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.UpdateDeliveryStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryToResponse(updated))
}

// DeleteDelivery handles DELETE /api/v1/deliveries/:deliveryId.
func (s *Server) DeleteDelivery(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("deliveryId", err))
	}

	cmd, err := commands.NewDeleteDeliveryCommand(deliveryID, actor)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code, body := errorResponse(err)
	return ctx.JSON(code, body)
}

// actorFromRequest reads the acting principal from the auth headers.
func actorFromRequest(ctx echo.Context) (kernel.Actor, error) {
	rawID := ctx.Request().Header.Get(ActorIDHeader)
	if rawID == "" {
		return kernel.Actor{}, errs.NewValueIsRequiredError(ActorIDHeader + " header")
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsInvalidErrorWithCause(ActorIDHeader+" header", err)
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(ActorRoleHeader))
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(id, role)
}

func orderToResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.LineItems()))
	for _, item := range o.LineItems() {
		items = append(items, OrderItemResponse{
			ProductID:      item.ProductID().String(),
			Quantity:       item.Quantity(),
			UnitPriceMinor: item.UnitPrice().Amount(),
		})
	}

	return OrderResponse{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID().String(),
		CreatedAt:  o.CreatedAt(),
		Status:     o.Status().String(),
		TotalMinor: o.Total().Amount(),
		Items:      items,
		PaymentID:  optionalIDString(o.PaymentID()),
		DeliveryID: optionalIDString(o.DeliveryID()),
	}
}

func queryOrderToResponse(resp queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItemResponse{
			ProductID:      item.ProductID.String(),
			Quantity:       item.Quantity,
			UnitPriceMinor: item.UnitPriceMinor,
		})
	}

	return OrderResponse{
		ID:         resp.ID.String(),
		CustomerID: resp.CustomerID.String(),
		CreatedAt:  resp.CreatedAt,
		Status:     resp.Status,
		TotalMinor: resp.TotalMinor,
		Items:      items,
		PaymentID:  optionalIDString(resp.PaymentID),
		DeliveryID: optionalIDString(resp.DeliveryID),
	}
}

func summariesToResponse(summaries []queries.OrderSummaryResponse) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, OrderSummaryResponse{
			ID:         summary.ID.String(),
			CustomerID: summary.CustomerID.String(),
			CreatedAt:  summary.CreatedAt,
			Status:     summary.Status,
			TotalMinor: summary.TotalMinor,
		})
	}
	return response
}

func paymentToResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID().String(),
		OrderID:      p.OrderID().String(),
		Method:       p.Method().String(),
		AmountMinor:  p.Amount().Amount(),
		ProofRef:     p.ProofRef(),
		Status:       p.Status().String(),
		RejectReason: p.RejectReason(),
		SubmittedAt:  p.SubmittedAt(),
	}
}

func deliveryToResponse(d *delivery.Delivery) DeliveryResponse {
	address := d.Address()
	return DeliveryResponse{
		ID:             d.ID().String(),
		OrderID:        d.OrderID().String(),
		Status:         d.Status().String(),
		TrackingNumber: d.TrackingNumber(),
		Address: AddressPayload{
			Street:     address.Street(),
			City:       address.City(),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
		},
		CreatedAt: d.CreatedAt(),
		UpdatedAt: d.UpdatedAt(),
	}
}

func optionalIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
