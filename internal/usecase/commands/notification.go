package commands

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/commands/notification.go -package=commandsmock

import (
	"context"

	"gas-booking/internal/pkg/clock"
	"gas-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	audit auditor
}

func NewNotificationCommands(uow shared.UnitOfWork, clk clock.Clock, sink shared.EventSink) NotificationCommands {
	return &notificationCommandsImpl{uow: uow, clock: clk, audit: auditor{sink: sink, clock: clk}}
}

// MarkRead reports a foreign id as not found so ids of other users are not disclosed.
func (uc *notificationCommandsImpl) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (err error) {
	defer func() { uc.audit.fail(ctx, "markNotificationRead", err) }()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		changed, terr := tx.Notifications().MarkRead(ctx, tx.DB(), userID, notificationID)
		if terr != nil {
			return terr
		}
		if !changed {
			return ErrNotificationNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.audit.emit(ctx, EventNotificationRead, uc.clock.Now(), map[string]any{
		"notificationId": notificationID.String(),
		"userId":         userID.String(),
	})
	return nil
}

func (uc *notificationCommandsImpl) MarkAllRead(ctx context.Context, userID uuid.UUID) (_ int64, err error) {
	defer func() { uc.audit.fail(ctx, "markAllNotificationsRead", err) }()

	var count int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, terr := tx.Notifications().MarkAllRead(ctx, tx.DB(), userID)
		count = n
		return terr
	})
	if err != nil {
		return 0, err
	}

	uc.audit.emit(ctx, EventNotificationsMarkedRead, uc.clock.Now(), map[string]any{
		"userId": userID.String(),
		"count":  count,
	})
	return count, nil
}
