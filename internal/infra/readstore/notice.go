package readstore

import (
	"context"

	"gas-booking/internal/infra"
	"gas-booking/internal/pkg/pgconv"
	"gas-booking/internal/usecase/queries"
	"gas-booking/internal/usecase/shared"
)

// An empty type list or search string disables that filter.
const listNoticesSQL = `
SELECT id, message, type, created_at, updated_at
FROM notices
WHERE (cardinality($1::text[]) = 0 OR type = ANY($1))
  AND ($2 = '' OR message ILIKE '%' || $2 || '%')
  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4))
ORDER BY created_at DESC, id DESC
LIMIT $5`

type NoticeReadStore struct {
	db shared.DBTX
}

func NewNoticeReadStore(db shared.DBTX) *NoticeReadStore {
	return &NoticeReadStore{db: db}
}

func (r *NoticeReadStore) List(ctx context.Context, types []string, search string, page queries.Keyset) ([]*queries.NoticeView, error) {
	if types == nil {
		types = []string{}
	}
	rows, err := r.db.Query(ctx, listNoticesSQL,
		types, escapeLike(search), pgconv.TimePtrToPgtype(page.AfterCreatedAt), page.AfterID, page.Limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notices", err)
	}
	defer rows.Close()

	out := make([]*queries.NoticeView, 0)
	for rows.Next() {
		var n queries.NoticeView
		if err := rows.Scan(&n.ID, &n.Message, &n.Type, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notice view", err)
		}
		out = append(out, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notice views", err)
	}
	return out, nil
}
