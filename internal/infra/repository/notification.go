package repository

import (
	"context"

	"gas-booking/internal/domain/notification"
	"gas-booking/internal/infra"
	"gas-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	insertNotificationSQL = `
INSERT INTO notifications (id, user_id, title, message, read, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	markNotificationReadSQL = `
UPDATE notifications SET read = TRUE
WHERE id = $1 AND user_id = $2`

	markAllNotificationsReadSQL = `
UPDATE notifications SET read = TRUE
WHERE user_id = $1 AND NOT read`
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, tx shared.DBTX, n *notification.Notification) error {
	_, err := tx.Exec(ctx, insertNotificationSQL, n.ID(), n.UserID(), n.Title(), n.Message(), n.Read(), n.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

// MarkRead is scoped to userID; already-read rows still count as changed.
func (r *NotificationRepository) MarkRead(ctx context.Context, tx shared.DBTX, userID, id uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, markNotificationReadSQL, id, userID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark notification read", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, tx shared.DBTX, userID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, markAllNotificationsReadSQL, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return tag.RowsAffected(), nil
}
