package commands

import (
	"errors"

	"gas-booking/internal/domain/booking"
	"gas-booking/internal/domain/notice"
	"gas-booking/internal/domain/payment"
	"gas-booking/internal/infra"
	"gas-booking/internal/pkg/errs"
)

var (
	ErrForbidden              = errs.New("operation requires administrator role")
	ErrBookingNotOwned        = errs.New("booking not owned by user")
	ErrRateLimited            = errs.New("too many requests, try again shortly")
	ErrInvalidInput           = errs.New("invalid input")
	ErrBookingNotFound        = errs.New("booking not found")
	ErrPaymentNotFound        = errs.New("payment not found")
	ErrNoticeNotFound         = errs.New("notice not found")
	ErrNotificationNotFound   = errs.New("notification not found")
	ErrInvalidStateTransition = errs.New("invalid state transition")
	ErrCancelWindowExpired    = errs.New("cancellation window expired")
	ErrUndoUnavailable        = errs.New("undo is no longer available")
	ErrEmailTaken             = errs.New("email already registered")
)

// translateDomainErr marks domain and repository errors with the command
// sentinel the handler layer maps to a status code. notFound is used for
// NOT_FOUND repository errors.
func translateDomainErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, booking.ErrQuotaExceeded):
		return err
	case errors.Is(err, booking.ErrInvalidQuantity),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, payment.ErrInvalidMethod),
		errors.Is(err, notice.ErrInvalidMessage),
		errors.Is(err, notice.ErrInvalidType),
		errors.Is(err, notice.ErrEmptyUpdate):
		return errs.Mark(err, ErrInvalidInput)
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrNotPayable),
		errors.Is(err, payment.ErrAlreadyRefunded):
		return errs.Mark(err, ErrInvalidStateTransition)
	case errors.Is(err, booking.ErrCancelWindowExpired):
		return errs.Mark(err, ErrCancelWindowExpired)
	case errors.Is(err, booking.ErrNotOwner):
		return errs.Mark(err, ErrBookingNotOwned)
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	default:
		return err
	}
}
