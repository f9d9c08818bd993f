package commands

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment.go -package=commandsmock

import (
	"context"
	"time"

	"gas-booking/internal/domain/notification"
	"gas-booking/internal/domain/payment"
	"gas-booking/internal/domain/user"
	"gas-booking/internal/pkg/clock"
	"gas-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RecordPaymentRequest struct {
	BookingID   uuid.UUID
	AmountCents int64
	Method      string
}

type RecordPaymentResult struct {
	PaymentID uuid.UUID
	BookingID uuid.UUID
	Status    payment.Status
	CreatedAt time.Time
}

type PaymentCommands interface {
	RecordPayment(ctx context.Context, userID uuid.UUID, req RecordPaymentRequest) (*RecordPaymentResult, error)
	RefundPayment(ctx context.Context, adminID uuid.UUID, role user.Role, paymentID uuid.UUID) error
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	throttle throttle
	audit    auditor
	interval time.Duration
}

func NewPaymentCommands(uow shared.UnitOfWork, clk clock.Clock, limiter shared.RateLimiter, sink shared.EventSink, rates RateIntervals) PaymentCommands {
	return &paymentCommandsImpl{
		uow:      uow,
		clock:    clk,
		throttle: throttle{limiter: limiter},
		audit:    auditor{sink: sink, clock: clk},
		interval: rates.RecordPayment,
	}
}

func (uc *paymentCommandsImpl) RecordPayment(ctx context.Context, userID uuid.UUID, req RecordPaymentRequest) (_ *RecordPaymentResult, err error) {
	defer func() { uc.audit.fail(ctx, "recordPayment", err) }()

	amount, err := payment.NewAmount(req.AmountCents)
	if err != nil {
		return nil, translateDomainErr(err, nil)
	}
	method, err := payment.NewMethod(req.Method)
	if err != nil {
		return nil, translateDomainErr(err, nil)
	}
	if err = uc.throttle.allow(ctx, ActionRecordPayment, userID, uc.interval); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	var p *payment.Payment
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, terr := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), req.BookingID)
		if terr != nil {
			return terr
		}
		if terr = b.EnsurePayableBy(userID); terr != nil {
			return terr
		}

		p = payment.NewPayment(b.ID(), userID, amount, method, now)
		if terr = tx.Payments().Create(ctx, tx.DB(), p); terr != nil {
			return terr
		}
		b.MarkPaid(now)
		return tx.Bookings().MarkPaid(ctx, tx.DB(), b)
	})
	if err != nil {
		return nil, translateDomainErr(err, ErrBookingNotFound)
	}

	uc.audit.emit(ctx, EventPaymentRecorded, now, map[string]any{
		"paymentId": p.ID().String(),
		"bookingId": req.BookingID.String(),
		"amount":    amount.Cents(),
		"method":    method.Value(),
		"userId":    userID.String(),
	})

	return &RecordPaymentResult{
		PaymentID: p.ID(),
		BookingID: p.BookingID(),
		Status:    p.Status(),
		CreatedAt: p.CreatedAt(),
	}, nil
}

// RefundPayment leaves the booking's paid flag and quota consumption untouched.
func (uc *paymentCommandsImpl) RefundPayment(ctx context.Context, adminID uuid.UUID, role user.Role, paymentID uuid.UUID) (err error) {
	defer func() { uc.audit.fail(ctx, "refundPayment", err) }()

	if !role.IsAdmin() {
		return ErrForbidden
	}

	now := uc.clock.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, terr := tx.Payments().FindByIDForUpdate(ctx, tx.DB(), paymentID)
		if terr != nil {
			return terr
		}
		if terr = p.Refund(adminID, now); terr != nil {
			return terr
		}
		changed, terr := tx.Payments().RefundIf(ctx, tx.DB(), p)
		if terr != nil {
			return terr
		}
		if !changed {
			return payment.ErrAlreadyRefunded
		}
		return tx.Notifications().Create(ctx, tx.DB(), notification.PaymentRefunded(p.UserID(), p.ID(), p.Amount().Cents(), now))
	})
	if err != nil {
		return translateDomainErr(err, ErrPaymentNotFound)
	}

	uc.audit.emit(ctx, EventPaymentRefunded, now, map[string]any{
		"paymentId": paymentID.String(),
		"adminUid":  adminID.String(),
	})
	return nil
}
