// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families of errors:
//
// Validation errors, raised when input cannot be accepted:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when a referenced object cannot be found
//
// Business-rule conflicts, raised when current state forbids an operation. These
// are surfaced verbatim to the caller and never retried automatically:
//   - IllegalTransitionError: status transition not in the legal-transition table
//   - InsufficientStockError: inventory cannot satisfy a reservation
//   - DuplicatePaymentError: a non-rejected payment already exists for the order
//   - DuplicateDeliveryError: a delivery already exists for the order
//   - AmountMismatchError: submitted amount differs from the order total
//   - OrderNotReadyError: order has not reached the required status
//   - IllegalOperationError: operation not permitted in the current state
//   - ContentionError: transient lock/timeout conflict, safe to retry with backoff
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrIllegalTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
