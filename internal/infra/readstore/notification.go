package readstore

import (
	"context"

	"gas-booking/internal/infra"
	"gas-booking/internal/pkg/pgconv"
	"gas-booking/internal/usecase/queries"
	"gas-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	listNotificationsByUserSQL = `
SELECT id, title, message, read, created_at
FROM notifications
WHERE user_id = $1
  AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR message ILIKE '%' || $2 || '%')
  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4))
ORDER BY created_at DESC, id DESC
LIMIT $5`

	countUnreadNotificationsSQL = `SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT read`
)

type NotificationReadStore struct {
	db shared.DBTX
}

func NewNotificationReadStore(db shared.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

func (r *NotificationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, search string, page queries.Keyset) ([]*queries.NotificationView, error) {
	rows, err := r.db.Query(ctx, listNotificationsByUserSQL,
		userID, escapeLike(search), pgconv.TimePtrToPgtype(page.AfterCreatedAt), page.AfterID, page.Limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	out := make([]*queries.NotificationView, 0)
	for rows.Next() {
		var n queries.NotificationView
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification view", err)
		}
		out = append(out, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification views", err)
	}
	return out, nil
}

func (r *NotificationReadStore) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, countUnreadNotificationsSQL, userID).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return n, nil
}
