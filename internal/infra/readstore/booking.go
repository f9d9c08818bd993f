package readstore

import (
	"context"
	"time"

	"gas-booking/internal/domain/booking"
	"gas-booking/internal/infra"
	"gas-booking/internal/pkg/pgconv"
	"gas-booking/internal/usecase/queries"
	"gas-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewColumns = `
b.id, b.user_id, u.email, u.display_name, b.quantity, b.status, b.payment_status,
b.approved_by, b.approved_at, b.created_at, b.updated_at`

const (
	getBookingViewByIDSQL = `
SELECT` + bookingViewColumns + `
FROM bookings b
JOIN users u ON u.id = b.user_id
WHERE b.id = $1`

	listBookingsByUserSQL = `
SELECT` + bookingViewColumns + `
FROM bookings b
JOIN users u ON u.id = b.user_id
WHERE b.user_id = $1
  AND ($2::timestamptz IS NULL OR (b.created_at, b.id) < ($2, $3))
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4`

	listPendingBookingsSQL = `
SELECT` + bookingViewColumns + `
FROM bookings b
JOIN users u ON u.id = b.user_id
WHERE b.status = 'pending'
  AND ($1::timestamptz IS NULL OR (b.created_at, b.id) > ($1, $2))
ORDER BY b.created_at ASC, b.id ASC
LIMIT $3`

	sumBookingQuantitySQL = `
SELECT COALESCE(SUM(quantity), 0)::int
FROM bookings
WHERE user_id = $1
  AND status = ANY($2)
  AND created_at >= $3
  AND created_at < $4`
)

type BookingReadStore struct {
	db shared.DBTX
}

func NewBookingReadStore(db shared.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v, err := scanBookingView(r.db.QueryRow(ctx, getBookingViewByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return v, nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID, page queries.Keyset) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, listBookingsByUserSQL,
		userID, pgconv.TimePtrToPgtype(page.AfterCreatedAt), page.AfterID, page.Limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	return collectBookingViews(rows)
}

func (r *BookingReadStore) ListPending(ctx context.Context, page queries.Keyset) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, listPendingBookingsSQL,
		pgconv.TimePtrToPgtype(page.AfterCreatedAt), page.AfterID, page.Limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending bookings", err)
	}
	return collectBookingViews(rows)
}

func (r *BookingReadStore) SumQuantity(ctx context.Context, userID uuid.UUID, statuses []booking.Status, from, to time.Time) (int, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}
	var sum int32
	if err := r.db.QueryRow(ctx, sumBookingQuantitySQL, userID, names, from, to).Scan(&sum); err != nil {
		return 0, infra.WrapRepoErr("failed to sum booking quantity", err)
	}
	return int(sum), nil
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	defer rows.Close()
	out := make([]*queries.BookingView, 0)
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking views", err)
	}
	return out, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v          queries.BookingView
		approvedBy pgtype.UUID
		approvedAt pgtype.Timestamptz
	)
	err := row.Scan(&v.ID, &v.UserID, &v.UserEmail, &v.UserDisplayName, &v.Quantity, &v.Status, &v.PaymentStatus,
		&approvedBy, &approvedAt, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.ApprovedBy = pgconv.UUIDPtrFromPgtype(approvedBy)
	v.ApprovedAt = pgconv.TimePtrFromPgtype(approvedAt)
	return &v, nil
}
