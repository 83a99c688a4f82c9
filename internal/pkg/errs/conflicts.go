package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalTransition is the sentinel for status transitions outside the
	// legal-transition table of an entity.
	ErrIllegalTransition = errors.New("illegal transition")

	// ErrInsufficientStock is the sentinel for reservations the inventory
	// ledger cannot satisfy.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDuplicatePayment is the sentinel for a second non-rejected payment
	// against the same order.
	ErrDuplicatePayment = errors.New("duplicate payment")

	// ErrDuplicateDelivery is the sentinel for a second delivery against the
	// same order.
	ErrDuplicateDelivery = errors.New("duplicate delivery")

	// ErrAmountMismatch is the sentinel for payment amounts that differ from
	// the order total.
	ErrAmountMismatch = errors.New("amount mismatch")

	// ErrOrderNotReady is the sentinel for operations that require the order
	// to have reached a later status.
	ErrOrderNotReady = errors.New("order not ready")

	// ErrIllegalOperation is the sentinel for operations forbidden in the
	// entity's current state.
	ErrIllegalOperation = errors.New("illegal operation")

	// ErrContention is the sentinel for transient lock conflicts. Callers may
	// retry with backoff; state is unchanged.
	ErrContention = errors.New("contention")
)

// IllegalTransitionError reports a status transition that is not permitted by
// the entity's legal-transition table.
type IllegalTransitionError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

// NewIllegalTransitionError creates an IllegalTransitionError for the given entity and statuses.
func NewIllegalTransitionError(entity, from, to string) *IllegalTransitionError {
	return &IllegalTransitionError{Entity: entity, From: from, To: to}
}

// NewIllegalTransitionErrorWithCause creates an IllegalTransitionError wrapping an underlying cause.
func NewIllegalTransitionErrorWithCause(entity, from, to string, cause error) *IllegalTransitionError {
	return &IllegalTransitionError{Entity: entity, From: from, To: to, Cause: cause}
}

func (e *IllegalTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s cannot go from %s to %s (cause: %s)",
			ErrIllegalTransition, e.Entity, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("%s: %s cannot go from %s to %s", ErrIllegalTransition, e.Entity, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// InsufficientStockError names the first product that could not satisfy a
// reservation request. Stock is left unchanged.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the named product.
func NewInsufficientStockError(productID string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s, requested %d, available %d",
		ErrInsufficientStock, e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// DuplicatePaymentError reports that a non-rejected payment already exists for
// the order.
type DuplicatePaymentError struct {
	OrderID string
}

// NewDuplicatePaymentError creates a DuplicatePaymentError for the given order.
func NewDuplicatePaymentError(orderID string) *DuplicatePaymentError {
	return &DuplicatePaymentError{OrderID: orderID}
}

func (e *DuplicatePaymentError) Error() string {
	return fmt.Sprintf("%s: order %s already has a payment pending or verified", ErrDuplicatePayment, e.OrderID)
}

func (e *DuplicatePaymentError) Unwrap() error {
	return ErrDuplicatePayment
}

// DuplicateDeliveryError reports that a delivery already exists for the order.
type DuplicateDeliveryError struct {
	OrderID string
}

// NewDuplicateDeliveryError creates a DuplicateDeliveryError for the given order.
func NewDuplicateDeliveryError(orderID string) *DuplicateDeliveryError {
	return &DuplicateDeliveryError{OrderID: orderID}
}

func (e *DuplicateDeliveryError) Error() string {
	return fmt.Sprintf("%s: order %s already has a delivery", ErrDuplicateDelivery, e.OrderID)
}

func (e *DuplicateDeliveryError) Unwrap() error {
	return ErrDuplicateDelivery
}

// AmountMismatchError reports that a submitted payment amount differs from the
// order total at submission time. Amounts are in minor currency units.
type AmountMismatchError struct {
	OrderID  string
	Expected int64
	Actual   int64
}

// NewAmountMismatchError creates an AmountMismatchError for the given order and amounts.
func NewAmountMismatchError(orderID string, expected, actual int64) *AmountMismatchError {
	return &AmountMismatchError{OrderID: orderID, Expected: expected, Actual: actual}
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("%s: order %s total is %d, submitted %d", ErrAmountMismatch, e.OrderID, e.Expected, e.Actual)
}

func (e *AmountMismatchError) Unwrap() error {
	return ErrAmountMismatch
}

// OrderNotReadyError reports that the order has not reached the status an
// operation requires.
type OrderNotReadyError struct {
	OrderID string
	Status  string
}

// NewOrderNotReadyError creates an OrderNotReadyError for the given order and its current status.
func NewOrderNotReadyError(orderID, status string) *OrderNotReadyError {
	return &OrderNotReadyError{OrderID: orderID, Status: status}
}

func (e *OrderNotReadyError) Error() string {
	return fmt.Sprintf("%s: order %s is in status %s", ErrOrderNotReady, e.OrderID, e.Status)
}

func (e *OrderNotReadyError) Unwrap() error {
	return ErrOrderNotReady
}

// IllegalOperationError reports an operation forbidden in the entity's current
// state, such as deleting a dispatched delivery.
type IllegalOperationError struct {
	Entity string
	Reason string
}

// NewIllegalOperationError creates an IllegalOperationError with the refusal reason.
func NewIllegalOperationError(entity, reason string) *IllegalOperationError {
	return &IllegalOperationError{Entity: entity, Reason: reason}
}

func (e *IllegalOperationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrIllegalOperation, e.Entity, e.Reason)
}

func (e *IllegalOperationError) Unwrap() error {
	return ErrIllegalOperation
}

// ContentionError reports a transient lock conflict or lock timeout. The
// triggering transaction was aborted and left no changes behind.
type ContentionError struct {
	Cause error
}

// NewContentionError creates a ContentionError wrapping the underlying store error.
func NewContentionError(cause error) *ContentionError {
	return &ContentionError{Cause: cause}
}

func (e *ContentionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: retryable (cause: %s)", ErrContention, e.Cause)
	}
	return fmt.Sprintf("%s: retryable", ErrContention)
}

func (e *ContentionError) Unwrap() error {
	return ErrContention
}
