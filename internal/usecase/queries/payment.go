package queries

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/queries/payment.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type PaymentReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, page Keyset) ([]*PaymentView, error)
}

type PaymentQueries interface {
	ListMyPayments(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*PaymentView, *Cursor, error)
}

type paymentQueriesImpl struct {
	store PaymentReadStore
}

func NewPaymentQueries(store PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{store: store}
}

func (q *paymentQueriesImpl) ListMyPayments(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*PaymentView, *Cursor, error) {
	limit = ValidateLimit(limit)
	ks, err := newKeyset(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListByUser(ctx, userID, ks)
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, func(p *PaymentView) (time.Time, uuid.UUID) { return p.CreatedAt, p.ID })
	return rows, next, nil
}
