package readstore

import (
	"context"

	"gas-booking/internal/infra"
	"gas-booking/internal/pkg/pgconv"
	"gas-booking/internal/usecase/queries"
	"gas-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const listPaymentsByUserSQL = `
SELECT id, booking_id, user_id, amount_cents, method, status, created_at, refunded_at
FROM payments
WHERE user_id = $1
  AND ($2::timestamptz IS NULL OR (created_at, id) < ($2, $3))
ORDER BY created_at DESC, id DESC
LIMIT $4`

type PaymentReadStore struct {
	db shared.DBTX
}

func NewPaymentReadStore(db shared.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: db}
}

func (r *PaymentReadStore) ListByUser(ctx context.Context, userID uuid.UUID, page queries.Keyset) ([]*queries.PaymentView, error) {
	rows, err := r.db.Query(ctx, listPaymentsByUserSQL,
		userID, pgconv.TimePtrToPgtype(page.AfterCreatedAt), page.AfterID, page.Limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by user", err)
	}
	defer rows.Close()

	out := make([]*queries.PaymentView, 0)
	for rows.Next() {
		var (
			p          queries.PaymentView
			refundedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&p.ID, &p.BookingID, &p.UserID, &p.AmountCents, &p.Method, &p.Status, &p.CreatedAt, &refundedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment view", err)
		}
		p.RefundedAt = pgconv.TimePtrFromPgtype(refundedAt)
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment views", err)
	}
	return out, nil
}
