package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"RequiredValue", errs.NewValueIsRequiredError("customer_id"), http.StatusBadRequest},
		{"InvalidValue", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"OutOfRange", errs.NewValueIsOutOfRangeError("percentage", 0, 1, 100), http.StatusBadRequest},
		{"NotFound", errs.NewObjectNotFoundError("order", "abc"), http.StatusNotFound},
		{"IllegalTransition", errs.NewIllegalTransitionError("order", "Completed", "Created"), http.StatusConflict},
		{"IllegalOperation", errs.NewIllegalOperationError("delivery", "not deletable"), http.StatusConflict},
		{"InsufficientStock", errs.NewInsufficientStockError("p1", 5, 2), http.StatusConflict},
		{"DuplicatePayment", errs.NewDuplicatePaymentError("o1"), http.StatusConflict},
		{"DuplicateDelivery", errs.NewDuplicateDeliveryError("o1"), http.StatusConflict},
		{"AmountMismatch", errs.NewAmountMismatchError("o1", 100, 90), http.StatusConflict},
		{"OrderNotReady", errs.NewOrderNotReadyError("o1", "Created"), http.StatusConflict},
		{"Contention", errs.NewContentionError(nil), http.StatusServiceUnavailable},
		{"Unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusForError(tt.err))
		})
	}
}

func TestErrorResponse_HidesInternalDetails(t *testing.T) {
	code, body := errorResponse(assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal error", body.Message)
}

func TestActorFromRequest(t *testing.T) {
	adminID := kernel.NewUUID()

	t.Run("ValidAdmin", func(t *testing.T) {
		ctx := contextWithHeaders(t, map[string]string{
			ActorIDHeader:   adminID.String(),
			ActorRoleHeader: "admin",
		})

		actor, err := actorFromRequest(ctx)

		require.NoError(t, err)
		assert.True(t, actor.ID().IsEqual(adminID))
		assert.True(t, actor.IsAdmin())
	})

	t.Run("ValidCustomer", func(t *testing.T) {
		ctx := contextWithHeaders(t, map[string]string{
			ActorIDHeader:   adminID.String(),
			ActorRoleHeader: "customer",
		})

		actor, err := actorFromRequest(ctx)

		require.NoError(t, err)
		assert.Equal(t, kernel.RoleCustomer, actor.Role())
	})

	t.Run("MissingID", func(t *testing.T) {
		ctx := contextWithHeaders(t, map[string]string{ActorRoleHeader: "admin"})

		_, err := actorFromRequest(ctx)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("MalformedID", func(t *testing.T) {
		ctx := contextWithHeaders(t, map[string]string{
			ActorIDHeader:   "not-a-uuid",
			ActorRoleHeader: "admin",
		})

		_, err := actorFromRequest(ctx)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		ctx := contextWithHeaders(t, map[string]string{
			ActorIDHeader:   adminID.String(),
			ActorRoleHeader: "superuser",
		})

		_, err := actorFromRequest(ctx)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSetOrderStatus_MissingActorHeaders_ReturnsBadRequest(t *testing.T) {
	e := echo.New()
	server := NewServer(Handlers{})
	server.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/orders/"+kernel.NewUUID().String()+"/status",
		strings.NewReader(`{"status":"Cancelled"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListOrders_CustomerRole_ReturnsForbidden(t *testing.T) {
	e := echo.New()
	server := NewServer(Handlers{})
	server.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set(ActorIDHeader, kernel.NewUUID().String())
	req.Header.Set(ActorRoleHeader, "customer")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusForbidden, body.Code)
	assert.Contains(t, body.Message, "admin")
}

func TestDeleteDelivery_MalformedID_ReturnsBadRequest(t *testing.T) {
	e := echo.New()
	server := NewServer(Handlers{})
	server.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/deliveries/not-a-uuid", nil)
	req.Header.Set(ActorIDHeader, kernel.NewUUID().String())
	req.Header.Set(ActorRoleHeader, "admin")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOpenAPIDocument_IsValid(t *testing.T) {
	doc, err := LoadOpenAPIDocument(t.Context())

	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/api/v1/orders"))
	assert.NotNil(t, doc.Paths.Find("/api/v1/deliveries/{deliveryId}"))
}

func TestOpenAPIValidator_RejectsMalformedBody(t *testing.T) {
	validator, err := NewOpenAPIValidator(t.Context())
	require.NoError(t, err)

	e := echo.New()
	e.Use(validator)
	server := NewServer(Handlers{})
	server.RegisterRoutes(e)

	// amount_minor below minimum and missing proof_ref
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments",
		strings.NewReader(`{"order_id":"`+kernel.NewUUID().String()+`","method":"bank_transfer","amount_minor":-5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOpenAPIValidator_PassesHealthThrough(t *testing.T) {
	validator, err := NewOpenAPIValidator(t.Context())
	require.NoError(t, err)

	e := echo.New()
	e.Use(validator)
	server := NewServer(Handlers{})
	server.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func contextWithHeaders(t *testing.T, headers map[string]string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}
