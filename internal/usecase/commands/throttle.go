package commands

import (
	"context"
	"log/slog"
	"time"

	"gas-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	ActionBookCylinder    = "book_cylinder"
	ActionRecordPayment   = "record_payment"
	ActionBookingApproval = "booking_approval"
)

// RateIntervals holds the minimum spacing between permitted calls per action.
type RateIntervals struct {
	BookCylinder    time.Duration
	RecordPayment   time.Duration
	BookingApproval time.Duration
}

type throttle struct {
	limiter shared.RateLimiter
}

func RateLimitKey(action string, userID uuid.UUID) string {
	return action + ":" + userID.String()
}

// allow fails open when the limiter backend errors.
func (t throttle) allow(ctx context.Context, action string, userID uuid.UUID, interval time.Duration) error {
	if t.limiter == nil || interval <= 0 {
		return nil
	}
	ok, err := t.limiter.TryProceed(ctx, RateLimitKey(action, userID), interval)
	if err != nil {
		slog.Warn("rate limiter unavailable, allowing request",
			"action", action,
			"user_id", userID,
			"error", err.Error())
		return nil
	}
	if !ok {
		return ErrRateLimited
	}
	return nil
}
