package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/pkg/errs"
)

// statusForError maps domain and application errors to HTTP status codes.
// Validation problems are the caller's fault, absent objects are 404,
// business rule conflicts are 409, and transient lock contention is 503 so
// clients know a retry is worthwhile.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest

	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrIllegalOperation),
		errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrDuplicatePayment),
		errors.Is(err, errs.ErrDuplicateDelivery),
		errors.Is(err, errs.ErrAmountMismatch),
		errors.Is(err, errs.ErrOrderNotReady):
		return http.StatusConflict

	case errors.Is(err, errs.ErrContention):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// errorResponse builds the uniform error body for a failed request. Internal
// failures keep their details out of the response.
func errorResponse(err error) (int, ErrorResponse) {
	code := statusForError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}

	return code, ErrorResponse{Code: code, Message: message}
}
