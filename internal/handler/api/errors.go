package api

import (
	"errors"
	"net/http"

	"gas-booking/internal/domain/booking"
	"gas-booking/internal/handler/httperr"
	"gas-booking/internal/infra"
	"gas-booking/internal/usecase/commands"
	"gas-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type errorMapping struct {
	target     error
	status     int
	message    string
	withDetail bool
}

// Order matters: the first match wins.
var errorMappings = []errorMapping{
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password", false},
	{commands.ErrUserNotFound, http.StatusUnauthorized, "Invalid or expired token", false},
	{commands.ErrTokenValidation, http.StatusUnauthorized, "Invalid or expired token", false},
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive", false},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive", false},
	{commands.ErrForbidden, http.StatusForbidden, "Administrator role required", false},
	{queries.ErrForbidden, http.StatusForbidden, "Administrator role required", false},
	{commands.ErrBookingNotOwned, http.StatusForbidden, "Booking belongs to another user", false},
	{queries.ErrBookingAccess, http.StatusForbidden, "Booking belongs to another user", false},
	{commands.ErrRateLimited, http.StatusTooManyRequests, "Too many requests, please wait before retrying", false},
	{booking.ErrQuotaExceeded, http.StatusUnprocessableEntity, "Annual cylinder quota exceeded", true},
	{commands.ErrInvalidInput, http.StatusBadRequest, "Invalid input", true},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor", false},
	{commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found", false},
	{queries.ErrBookingNotFound, http.StatusNotFound, "Booking not found", false},
	{commands.ErrPaymentNotFound, http.StatusNotFound, "Payment not found", false},
	{commands.ErrNoticeNotFound, http.StatusNotFound, "Notice not found", false},
	{commands.ErrNotificationNotFound, http.StatusNotFound, "Notification not found", false},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found", false},
	{commands.ErrInvalidStateTransition, http.StatusConflict, "Invalid state transition", true},
	{commands.ErrCancelWindowExpired, http.StatusConflict, "Cancellation window expired", false},
	{commands.ErrEmailTaken, http.StatusConflict, "Email already registered", false},
	{commands.ErrUndoUnavailable, http.StatusGone, "Undo is no longer available", false},
}

// abortWithUseCaseError translates a command or query error into its HTTP status.
// Anything unrecognised is reported as a 500 without leaking the cause.
func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		var detail any
		if m.withDetail {
			detail = err.Error()
		}
		httperr.AbortWithError(c, m.status, err, m.message, detail)
		return
	}
	if infra.IsKind(err, infra.KindNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
