package queries

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/queries/notification.go -package=queriesmock

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type NotificationReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, search string, page Keyset) ([]*NotificationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationQueries interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, search string, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListNotifications(ctx context.Context, userID uuid.UUID, search string, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error) {
	limit = ValidateLimit(limit)
	ks, err := newKeyset(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListByUser(ctx, userID, strings.TrimSpace(search), ks)
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, func(n *NotificationView) (time.Time, uuid.UUID) { return n.CreatedAt, n.ID })
	return rows, next, nil
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return q.store.CountUnread(ctx, userID)
}
