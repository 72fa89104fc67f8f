package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sokoni/internal/core/domain/model/cart"
	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/product"
	"sokoni/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("orderID", "x"), http.StatusNotFound},
		{"actor not allowed", errs.NewActorNotAllowedError("customer", "claim a delivery"), http.StatusForbidden},
		{"conflict", errs.NewConflictError("order status", "delivered"), http.StatusConflict},
		{"insufficient stock", product.ErrInsufficientStock, http.StatusConflict},
		{"inactive product", product.ErrProductInactive, http.StatusConflict},
		{"invalid value", errs.NewValueIsInvalidError("quantity"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("phone"), http.StatusBadRequest},
		{"empty cart", cart.ErrCartIsEmpty, http.StatusBadRequest},
		{"unclassified", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	t.Run("conflict carries current status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/deliveries/x/status", nil)
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(req, rec)

		require.NoError(t, writeError(ctx, errs.NewConflictError("delivery status", "picked_up")))
		assert.Equal(t, http.StatusConflict, rec.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusConflict, body.Code)
		assert.Equal(t, "picked_up", body.CurrentStatus)
	})

	t.Run("non-conflict omits current status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/x", nil)
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(req, rec)

		require.NoError(t, writeError(ctx, errs.NewObjectNotFoundError("orderID", "x")))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotContains(t, rec.Body.String(), "current_status")
	})
}

func newEchoContext(t *testing.T, req *http.Request) echo.Context {
	t.Helper()
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestActorFrom(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("valid headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set(HeaderActorID, id.String())
		req.Header.Set(HeaderActorRole, "customer")

		a, err := actorFrom(newEchoContext(t, req))
		require.NoError(t, err)
		assert.True(t, a.ID.IsEqual(id))
		assert.Equal(t, kernel.RoleCustomer, a.Role)
	})

	t.Run("missing ID header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set(HeaderActorRole, "customer")

		_, err := actorFrom(newEchoContext(t, req))
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("malformed ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set(HeaderActorID, "not-a-uuid")
		req.Header.Set(HeaderActorRole, "customer")

		_, err := actorFrom(newEchoContext(t, req))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("system role is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set(HeaderActorID, id.String())
		req.Header.Set(HeaderActorRole, "system")

		_, err := actorFrom(newEchoContext(t, req))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewOpenAPIValidator(t *testing.T) {
	validator, err := NewOpenAPIValidator()
	require.NoError(t, err)

	nextCalled := false
	next := func(ctx echo.Context) error {
		nextCalled = true
		return ctx.NoContent(http.StatusNoContent)
	}

	t.Run("valid request passes through", func(t *testing.T) {
		nextCalled = false
		body := `{"product_id":"` + kernel.NewUUID().String() + `","quantity":2}`
		req := httptest.NewRequest(http.MethodPost, "http://sokoni.test/api/v1/cart/items", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(HeaderActorID, kernel.NewUUID().String())
		req.Header.Set(HeaderActorRole, "customer")

		require.NoError(t, validator(next)(newEchoContext(t, req)))
		assert.True(t, nextCalled)
	})

	t.Run("missing identity headers are rejected", func(t *testing.T) {
		nextCalled = false
		body := `{"product_id":"` + kernel.NewUUID().String() + `","quantity":2}`
		req := httptest.NewRequest(http.MethodPost, "http://sokoni.test/api/v1/cart/items", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(req, rec)
		require.NoError(t, validator(next)(ctx))
		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("undescribed path passes through", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodGet, "http://sokoni.test/health", nil)

		require.NoError(t, validator(next)(newEchoContext(t, req)))
		assert.True(t, nextCalled)
	})
}
