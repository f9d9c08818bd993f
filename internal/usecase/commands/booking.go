package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"errors"
	"time"

	"gas-booking/internal/domain/booking"
	"gas-booking/internal/domain/notification"
	"gas-booking/internal/domain/user"
	"gas-booking/internal/pkg/clock"
	"gas-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingSettings struct {
	Quota        booking.QuotaPolicy
	CancelWindow time.Duration
	Rates        RateIntervals
}

type BookCylinderResult struct {
	BookingID      uuid.UUID
	Quantity       int
	Status         booking.Status
	CreatedAt      time.Time
	QuotaUsed      int
	QuotaRemaining int
}

type BookingCommands interface {
	BookCylinder(ctx context.Context, userID uuid.UUID, quantity int) (*BookCylinderResult, error)
	SetBookingStatus(ctx context.Context, adminID uuid.UUID, role user.Role, bookingID uuid.UUID, approve bool) error
	UndoRejection(ctx context.Context, adminID uuid.UUID, role user.Role, bookingID uuid.UUID) error
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	ledger   shared.UndoLedger
	throttle throttle
	audit    auditor
	settings BookingSettings
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	limiter shared.RateLimiter,
	ledger shared.UndoLedger,
	sink shared.EventSink,
	settings BookingSettings,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		clock:    clk,
		ledger:   ledger,
		throttle: throttle{limiter: limiter},
		audit:    auditor{sink: sink, clock: clk},
		settings: settings,
	}
}

func (uc *bookingCommandsImpl) BookCylinder(ctx context.Context, userID uuid.UUID, quantity int) (_ *BookCylinderResult, err error) {
	defer func() { uc.audit.fail(ctx, "bookCylinder", err) }()

	qty, err := booking.NewQuantity(quantity)
	if err != nil {
		return nil, translateDomainErr(err, nil)
	}
	if err = uc.throttle.allow(ctx, ActionBookCylinder, userID, uc.settings.Rates.BookCylinder); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	from, to := uc.settings.Quota.Period(now)

	var (
		created *booking.Booking
		used    int
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Serializes concurrent bookings of the same user so the sum below stays valid until insert.
		if terr := tx.Users().LockForBooking(ctx, tx.DB(), userID); terr != nil {
			return terr
		}
		sum, terr := tx.Bookings().SumQuantity(ctx, tx.DB(), userID, booking.QuotaStatuses, from, to)
		if terr != nil {
			return terr
		}
		if terr = uc.settings.Quota.Check(sum, qty); terr != nil {
			return terr
		}

		b := booking.NewBooking(userID, qty, now)
		if terr = tx.Bookings().Create(ctx, tx.DB(), b); terr != nil {
			return terr
		}
		created = b
		used = sum + qty.Value()
		return nil
	})
	if err != nil {
		return nil, translateDomainErr(err, nil)
	}

	uc.audit.emit(ctx, EventBookingCreated, now, map[string]any{
		"userId":    userID.String(),
		"bookingId": created.ID().String(),
		"quantity":  qty.Value(),
	})

	return &BookCylinderResult{
		BookingID:      created.ID(),
		Quantity:       qty.Value(),
		Status:         created.Status(),
		CreatedAt:      created.CreatedAt(),
		QuotaUsed:      used,
		QuotaRemaining: uc.settings.Quota.Remaining(used),
	}, nil
}

func (uc *bookingCommandsImpl) SetBookingStatus(ctx context.Context, adminID uuid.UUID, role user.Role, bookingID uuid.UUID, approve bool) (err error) {
	defer func() { uc.audit.fail(ctx, "setBookingStatus", err) }()

	if !role.IsAdmin() {
		return ErrForbidden
	}
	if err = uc.throttle.allow(ctx, ActionBookingApproval, adminID, uc.settings.Rates.BookingApproval); err != nil {
		return err
	}

	now := uc.clock.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, terr := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if terr != nil {
			return terr
		}
		if approve {
			terr = b.Approve(adminID, now)
		} else {
			terr = b.Reject(adminID, now)
		}
		if terr != nil {
			return terr
		}

		changed, terr := tx.Bookings().UpdateStatusIf(ctx, tx.DB(), b, booking.StatusPending)
		if terr != nil {
			return terr
		}
		if !changed {
			return booking.ErrInvalidTransition
		}

		var n *notification.Notification
		if approve {
			n = notification.BookingApproved(b.UserID(), b.ID(), b.Quantity().Value(), now)
		} else {
			n = notification.BookingRejected(b.UserID(), b.ID(), b.Quantity().Value(), now)
		}
		return tx.Notifications().Create(ctx, tx.DB(), n)
	})
	if err != nil {
		return translateDomainErr(err, ErrBookingNotFound)
	}

	if !approve {
		uc.ledger.Register(bookingID, adminID, now)
	}

	uc.audit.emit(ctx, EventBookingStatusChanged, now, map[string]any{
		"bookingId": bookingID.String(),
		"approved":  approve,
		"adminUid":  adminID.String(),
	})
	return nil
}

func (uc *bookingCommandsImpl) UndoRejection(ctx context.Context, adminID uuid.UUID, role user.Role, bookingID uuid.UUID) (err error) {
	defer func() { uc.audit.fail(ctx, "undoRejection", err) }()

	if !role.IsAdmin() {
		return ErrForbidden
	}
	if err = uc.throttle.allow(ctx, ActionBookingApproval, adminID, uc.settings.Rates.BookingApproval); err != nil {
		return err
	}
	if _, err = uc.uow.CommandReads().BookingByID(ctx, bookingID); err != nil {
		return translateDomainErr(err, ErrBookingNotFound)
	}

	entry, ok := uc.ledger.TryConsume(bookingID, adminID)
	if !ok {
		return ErrUndoUnavailable
	}

	now := uc.clock.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, terr := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if terr != nil {
			return terr
		}
		if terr = b.ReopenRejected(now); terr != nil {
			return terr
		}
		changed, terr := tx.Bookings().UpdateStatusIf(ctx, tx.DB(), b, booking.StatusRejected)
		if terr != nil {
			return terr
		}
		if !changed {
			return booking.ErrInvalidTransition
		}
		return tx.Notifications().Create(ctx, tx.DB(), notification.RejectionUndone(b.UserID(), b.ID(), now))
	})
	if err != nil {
		// A store failure must not burn the remaining window.
		if !errors.Is(err, booking.ErrInvalidTransition) {
			uc.ledger.Restore(entry)
		}
		return translateDomainErr(err, ErrBookingNotFound)
	}

	uc.audit.emit(ctx, EventBookingRejectionUndone, now, map[string]any{
		"bookingId":  bookingID.String(),
		"adminUid":   adminID.String(),
		"rejectedAt": entry.RejectedAt,
	})
	return nil
}

func (uc *bookingCommandsImpl) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (err error) {
	defer func() { uc.audit.fail(ctx, "cancelBooking", err) }()

	now := uc.clock.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, terr := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if terr != nil {
			return terr
		}
		if terr = b.Cancel(userID, now, uc.settings.CancelWindow); terr != nil {
			return terr
		}
		changed, terr := tx.Bookings().UpdateStatusIf(ctx, tx.DB(), b, booking.StatusPending)
		if terr != nil {
			return terr
		}
		if !changed {
			return booking.ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return translateDomainErr(err, ErrBookingNotFound)
	}

	uc.audit.emit(ctx, EventBookingCanceled, now, map[string]any{
		"bookingId": bookingID.String(),
		"userId":    userID.String(),
	})
	return nil
}
