package repository

import (
	"context"
	"time"

	"gas-booking/internal/domain/payment"
	"gas-booking/internal/infra"
	"gas-booking/internal/pkg/pgconv"
	"gas-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertPaymentSQL = `
INSERT INTO payments (id, booking_id, user_id, amount_cents, method, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectPaymentForUpdateSQL = `
SELECT id, booking_id, user_id, amount_cents, method, status, created_at, refunded_at, refunded_by
FROM payments
WHERE id = $1
FOR UPDATE`

	refundPaymentIfSQL = `
UPDATE payments
SET status = $2, refunded_at = $3, refunded_by = $4
WHERE id = $1 AND status = $5`
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, tx shared.DBTX, p *payment.Payment) error {
	_, err := tx.Exec(ctx, insertPaymentSQL,
		p.ID(),
		p.BookingID(),
		p.UserID(),
		p.Amount().Cents(),
		p.Method().Value(),
		p.Status().String(),
		p.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByIDForUpdate(ctx context.Context, tx shared.DBTX, id uuid.UUID) (*payment.Payment, error) {
	var (
		pid, bookingID, userID uuid.UUID
		amountCents            int64
		method, status         string
		createdAt              time.Time
		refundedAt             pgtype.Timestamptz
		refundedBy             pgtype.UUID
	)
	err := tx.QueryRow(ctx, selectPaymentForUpdateSQL, id).
		Scan(&pid, &bookingID, &userID, &amountCents, &method, &status, &createdAt, &refundedAt, &refundedBy)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}

	amount, err := payment.NewAmount(amountCents)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt payment amount", err)
	}
	m, err := payment.NewMethod(method)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt payment method", err)
	}
	st, err := payment.ParseStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt payment status", err)
	}

	return payment.ReconstructPayment(pid, bookingID, userID, amount, m, st, createdAt,
		pgconv.TimePtrFromPgtype(refundedAt), pgconv.UUIDPtrFromPgtype(refundedBy)), nil
}

func (r *PaymentRepository) RefundIf(ctx context.Context, tx shared.DBTX, p *payment.Payment) (bool, error) {
	tag, err := tx.Exec(ctx, refundPaymentIfSQL,
		p.ID(),
		p.Status().String(),
		pgconv.TimePtrToPgtype(p.RefundedAt()),
		pgconv.UUIDPtrToPgtype(p.RefundedBy()),
		payment.StatusRecorded.String(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to refund payment", err)
	}
	return tag.RowsAffected() == 1, nil
}
