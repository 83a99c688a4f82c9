package http

import "time"

// Request bodies accepted by the API.
type (
	// CreateOrderRequest is the checkout payload.
	CreateOrderRequest struct {
		CustomerID string                   `json:"customer_id"`
		Items      []CreateOrderItemRequest `json:"items"`
	}

	// CreateOrderItemRequest is one requested product line.
	CreateOrderItemRequest struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}

	// SetOrderStatusRequest names the requested order status.
	SetOrderStatusRequest struct {
		Status string `json:"status"`
	}

	// SubmitPaymentRequest carries a customer's payment proof.
	SubmitPaymentRequest struct {
		OrderID     string `json:"order_id"`
		Method      string `json:"method"`
		AmountMinor int64  `json:"amount_minor"`
		ProofRef    string `json:"proof_ref"`
	}

	// SetPaymentStatusRequest records a verification outcome. The reason is
	// required when the status is Rejected.
	SetPaymentStatusRequest struct {
		Status string `json:"status"`
		Reason string `json:"reason,omitempty"`
	}

	// CreateDeliveryRequest schedules a shipment for an order. Override lets
	// an admin create the delivery before the order reached Processing.
	CreateDeliveryRequest struct {
		OrderID  string         `json:"order_id"`
		Address  AddressPayload `json:"address"`
		Override bool           `json:"override,omitempty"`
	}

	// SetDeliveryStatusRequest advances a delivery along its lifecycle.
	SetDeliveryStatusRequest struct {
		Status         string `json:"status"`
		TrackingNumber string `json:"tracking_number,omitempty"`
	}

	// AddressPayload is the destination address of a delivery.
	AddressPayload struct {
		Street     string `json:"street"`
		City       string `json:"city"`
		PostalCode string `json:"postal_code"`
		Country    string `json:"country"`
	}
)

// Response bodies produced by the API.
type (
	// OrderResponse is the full order representation.
	OrderResponse struct {
		ID         string              `json:"id"`
		CustomerID string              `json:"customer_id"`
		CreatedAt  time.Time           `json:"created_at"`
		Status     string              `json:"status"`
		TotalMinor int64               `json:"total_minor"`
		Items      []OrderItemResponse `json:"items"`
		PaymentID  *string             `json:"payment_id,omitempty"`
		DeliveryID *string             `json:"delivery_id,omitempty"`
	}

	// OrderItemResponse is one priced line of an order.
	OrderItemResponse struct {
		ProductID      string `json:"product_id"`
		Quantity       int    `json:"quantity"`
		UnitPriceMinor int64  `json:"unit_price_minor"`
	}

	// OrderSummaryResponse is one row of an order listing.
	OrderSummaryResponse struct {
		ID         string    `json:"id"`
		CustomerID string    `json:"customer_id"`
		CreatedAt  time.Time `json:"created_at"`
		Status     string    `json:"status"`
		TotalMinor int64     `json:"total_minor"`
	}

	// PaymentResponse is the payment representation.
	PaymentResponse struct {
		ID           string    `json:"id"`
		OrderID      string    `json:"order_id"`
		Method       string    `json:"method"`
		AmountMinor  int64     `json:"amount_minor"`
		ProofRef     string    `json:"proof_ref"`
		Status       string    `json:"status"`
		RejectReason string    `json:"reject_reason,omitempty"`
		SubmittedAt  time.Time `json:"submitted_at"`
	}

	// DeliveryResponse is the delivery representation.
	DeliveryResponse struct {
		ID             string         `json:"id"`
		OrderID        string         `json:"order_id"`
		Status         string         `json:"status"`
		TrackingNumber string         `json:"tracking_number,omitempty"`
		Address        AddressPayload `json:"address"`
		CreatedAt      time.Time      `json:"created_at"`
		UpdatedAt      time.Time      `json:"updated_at"`
	}

	// ErrorResponse is the uniform error body.
	ErrorResponse struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
)
