package http

import (
	"errors"
	"net/http"

	"sokoni/internal/core/domain/model/cart"
	"sokoni/internal/core/domain/model/product"
	"sokoni/internal/core/domain/model/rider"
	"sokoni/internal/core/domain/model/shop"
	"sokoni/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request. On 409
// responses CurrentStatus carries the state observed by the losing write so
// clients can re-sync without a follow-up read.
type ErrorResponse struct {
	Code          int    `json:"code"`
	Message       string `json:"message"`
	CurrentStatus string `json:"current_status,omitempty"`
}

// writeError translates an application error into an HTTP response.
// Classification runs on the errs sentinels so handlers never inspect
// error strings.
func writeError(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = "internal server error"
	}

	var currentStatus string
	var conflict *errs.ConflictError
	if errors.As(err, &conflict) {
		currentStatus = conflict.CurrentState
	}

	return ctx.JSON(status, ErrorResponse{
		Code:          status,
		Message:       message,
		CurrentStatus: currentStatus,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrActorNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, product.ErrProductInactive),
		errors.Is(err, rider.ErrRiderNotVerified),
		errors.Is(err, shop.ErrShopInactive):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, cart.ErrCartIsEmpty):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
