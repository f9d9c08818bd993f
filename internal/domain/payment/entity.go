package payment

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	userID     uuid.UUID
	amount     Amount
	method     Method
	status     Status
	createdAt  time.Time
	refundedAt *time.Time
	refundedBy *uuid.UUID
}

func NewPayment(bookingID, userID uuid.UUID, amount Amount, method Method, now time.Time) *Payment {
	return &Payment{
		id:        uuid.New(),
		bookingID: bookingID,
		userID:    userID,
		amount:    amount,
		method:    method,
		status:    StatusRecorded,
		createdAt: now,
	}
}

func ReconstructPayment(id, bookingID, userID uuid.UUID, amount Amount, method Method, status Status, createdAt time.Time, refundedAt *time.Time, refundedBy *uuid.UUID) *Payment {
	return &Payment{
		id:         id,
		bookingID:  bookingID,
		userID:     userID,
		amount:     amount,
		method:     method,
		status:     status,
		createdAt:  createdAt,
		refundedAt: refundedAt,
		refundedBy: refundedBy,
	}
}

func (p *Payment) ID() uuid.UUID          { return p.id }
func (p *Payment) BookingID() uuid.UUID   { return p.bookingID }
func (p *Payment) UserID() uuid.UUID      { return p.userID }
func (p *Payment) Amount() Amount         { return p.amount }
func (p *Payment) Method() Method         { return p.method }
func (p *Payment) Status() Status         { return p.status }
func (p *Payment) CreatedAt() time.Time   { return p.createdAt }
func (p *Payment) RefundedAt() *time.Time { return p.refundedAt }
func (p *Payment) RefundedBy() *uuid.UUID { return p.refundedBy }

// Refund marks the payment refunded. The booking's paid flag is left alone.
func (p *Payment) Refund(adminID uuid.UUID, now time.Time) error {
	if p.status == StatusRefunded {
		return ErrAlreadyRefunded
	}
	p.status = StatusRefunded
	at := now
	p.refundedAt = &at
	p.refundedBy = &adminID
	return nil
}
