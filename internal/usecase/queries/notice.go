package queries

//go:generate mockgen -source=notice.go -destination=../../../tests/mock/queries/notice.go -package=queriesmock

import (
	"context"
	"strings"
	"time"

	"gas-booking/internal/domain/notice"

	"github.com/google/uuid"
)

const DefaultNoticeLimit = 50

type NoticeFilter struct {
	Types  []notice.Type
	Search string
}

type NoticeReadStore interface {
	// List orders by created_at desc. Search is a case-insensitive substring match on the message.
	List(ctx context.Context, types []string, search string, page Keyset) ([]*NoticeView, error)
}

type NoticeQueries interface {
	ListNotices(ctx context.Context, filter NoticeFilter, cursor *Cursor, limit int) ([]*NoticeView, *Cursor, error)
}

type noticeQueriesImpl struct {
	store NoticeReadStore
}

func NewNoticeQueries(store NoticeReadStore) NoticeQueries {
	return &noticeQueriesImpl{store: store}
}

func (q *noticeQueriesImpl) ListNotices(ctx context.Context, filter NoticeFilter, cursor *Cursor, limit int) ([]*NoticeView, *Cursor, error) {
	limit = ValidateLimitWithDefault(limit, DefaultNoticeLimit)
	ks, err := newKeyset(cursor, limit)
	if err != nil {
		return nil, nil, err
	}

	types := make([]string, 0, len(filter.Types))
	for _, t := range filter.Types {
		types = append(types, t.String())
	}

	rows, err := q.store.List(ctx, types, strings.TrimSpace(filter.Search), ks)
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, func(n *NoticeView) (time.Time, uuid.UUID) { return n.CreatedAt, n.ID })
	return rows, next, nil
}
