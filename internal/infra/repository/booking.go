package repository

import (
	"context"
	"time"

	"gas-booking/internal/domain/booking"
	"gas-booking/internal/infra"
	"gas-booking/internal/pkg/pgconv"
	"gas-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertBookingSQL = `
INSERT INTO bookings (id, user_id, quantity, status, payment_status, approved_by, approved_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	selectBookingForUpdateSQL = `
SELECT id, user_id, quantity, status, payment_status, approved_by, approved_at, created_at, updated_at
FROM bookings
WHERE id = $1
FOR UPDATE`

	sumBookingQuantitySQL = `
SELECT COALESCE(SUM(quantity), 0)::int
FROM bookings
WHERE user_id = $1
  AND status = ANY($2)
  AND created_at >= $3
  AND created_at < $4`

	updateBookingStatusIfSQL = `
UPDATE bookings
SET status = $2, approved_by = $3, approved_at = $4, updated_at = $5
WHERE id = $1 AND status = $6`

	markBookingPaidSQL = `
UPDATE bookings
SET payment_status = $2, updated_at = $3
WHERE id = $1`
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx shared.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx, insertBookingSQL,
		b.ID(),
		b.UserID(),
		int32(b.Quantity().Value()),
		b.Status().String(),
		b.PaymentStatus().String(),
		pgconv.UUIDPtrToPgtype(b.ApprovedBy()),
		pgconv.TimePtrToPgtype(b.ApprovedAt()),
		b.CreatedAt(),
		b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx shared.DBTX, id uuid.UUID) (*booking.Booking, error) {
	b, err := scanBooking(tx.QueryRow(ctx, selectBookingForUpdateSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return b, nil
}

func (r *BookingRepository) SumQuantity(ctx context.Context, tx shared.DBTX, userID uuid.UUID, statuses []booking.Status, from, to time.Time) (int, error) {
	var sum int32
	err := tx.QueryRow(ctx, sumBookingQuantitySQL, userID, statusStrings(statuses), from, to).Scan(&sum)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum booking quantity", err)
	}
	return int(sum), nil
}

func (r *BookingRepository) UpdateStatusIf(ctx context.Context, tx shared.DBTX, b *booking.Booking, expected booking.Status) (bool, error) {
	tag, err := tx.Exec(ctx, updateBookingStatusIfSQL,
		b.ID(),
		b.Status().String(),
		pgconv.UUIDPtrToPgtype(b.ApprovedBy()),
		pgconv.TimePtrToPgtype(b.ApprovedAt()),
		b.UpdatedAt(),
		expected.String(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *BookingRepository) MarkPaid(ctx context.Context, tx shared.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx, markBookingPaidSQL, b.ID(), b.PaymentStatus().String(), b.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to mark booking paid", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, userID           uuid.UUID
		quantity             int32
		status, payStatus    string
		approvedBy           pgtype.UUID
		approvedAt           pgtype.Timestamptz
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &userID, &quantity, &status, &payStatus, &approvedBy, &approvedAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	qty, err := booking.NewQuantity(int(quantity))
	if err != nil {
		return nil, err
	}
	st, err := booking.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	ps, err := booking.ParsePaymentStatus(payStatus)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, userID, qty, st, ps,
		pgconv.UUIDPtrFromPgtype(approvedBy),
		pgconv.TimePtrFromPgtype(approvedAt),
		createdAt, updatedAt,
	), nil
}

func statusStrings(statuses []booking.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
