package commands

import (
	"context"
	"log/slog"
	"time"

	"gas-booking/internal/pkg/clock"
	"gas-booking/internal/usecase/shared"
)

const (
	EventBookingCreated          = "booking_created"
	EventBookingStatusChanged    = "booking_status_changed"
	EventBookingRejectionUndone  = "booking_rejection_undone"
	EventBookingCanceled         = "booking_canceled"
	EventPaymentRecorded         = "payment_recorded"
	EventPaymentRefunded         = "payment_refunded"
	EventNoticeAdded             = "notice_added"
	EventNoticeUpdated           = "notice_updated"
	EventNoticeDeleted           = "notice_deleted"
	EventNotificationRead        = "notification_read"
	EventNotificationsMarkedRead = "notifications_marked_all_read"
	EventUserRegistered          = "user_registered"
	EventClientError             = "client_error"
)

type auditor struct {
	sink  shared.EventSink
	clock clock.Clock
}

// emit never fails the caller; sink errors are only logged.
func (a auditor) emit(ctx context.Context, name string, at time.Time, params map[string]any) {
	if a.sink == nil {
		return
	}
	err := a.sink.Emit(ctx, shared.Event{Name: name, OccurredAt: at, Params: params})
	if err != nil {
		slog.Warn("failed to emit audit event", "event", name, "error", err.Error())
	}
}

// fail records a failed operation under its operation name. Call it deferred
// with the named error result so every return path is covered.
func (a auditor) fail(ctx context.Context, op string, err error) {
	if err == nil || a.sink == nil {
		return
	}
	a.emit(ctx, EventClientError, a.clock.Now(), map[string]any{
		"context": op,
		"error":   err.Error(),
	})
}
