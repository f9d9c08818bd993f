package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id            uuid.UUID
	userID        uuid.UUID
	quantity      Quantity
	status        Status
	paymentStatus PaymentStatus
	approvedBy    *uuid.UUID
	approvedAt    *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking creates a pending, unpaid booking. Quota is checked by the caller
// inside the same transaction as the insert.
func NewBooking(userID uuid.UUID, quantity Quantity, now time.Time) *Booking {
	return &Booking{
		id:            uuid.New(),
		userID:        userID,
		quantity:      quantity,
		status:        StatusPending,
		paymentStatus: PaymentUnpaid,
		createdAt:     now,
		updatedAt:     now,
	}
}

func ReconstructBooking(
	id, userID uuid.UUID,
	quantity Quantity,
	status Status,
	paymentStatus PaymentStatus,
	approvedBy *uuid.UUID,
	approvedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		userID:        userID,
		quantity:      quantity,
		status:        status,
		paymentStatus: paymentStatus,
		approvedBy:    approvedBy,
		approvedAt:    approvedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) Quantity() Quantity           { return b.quantity }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) ApprovedBy() *uuid.UUID       { return b.approvedBy }
func (b *Booking) ApprovedAt() *time.Time       { return b.approvedAt }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

func (b *Booking) Approve(adminID uuid.UUID, now time.Time) error {
	return b.decide(StatusApproved, adminID, now)
}

func (b *Booking) Reject(adminID uuid.UUID, now time.Time) error {
	return b.decide(StatusRejected, adminID, now)
}

func (b *Booking) decide(to Status, adminID uuid.UUID, now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = to
	b.approvedBy = &adminID
	at := now
	b.approvedAt = &at
	b.updatedAt = now
	return nil
}

// ReopenRejected moves a rejected booking back to pending and clears the
// decision stamp. The undo window is enforced by the ledger, not here.
func (b *Booking) ReopenRejected(now time.Time) error {
	if b.status != StatusRejected {
		return ErrInvalidTransition
	}
	b.status = StatusPending
	b.approvedBy = nil
	b.approvedAt = nil
	b.updatedAt = now
	return nil
}

// Cancel is allowed for the owner while pending and no later than window
// after creation (inclusive).
func (b *Booking) Cancel(actorID uuid.UUID, now time.Time, window time.Duration) error {
	if b.userID != actorID {
		return ErrNotOwner
	}
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	if now.Sub(b.createdAt) > window {
		return ErrCancelWindowExpired
	}
	b.status = StatusCanceled
	b.updatedAt = now
	return nil
}

// EnsurePayableBy checks that actorID may record a payment against b.
func (b *Booking) EnsurePayableBy(actorID uuid.UUID) error {
	if b.userID != actorID {
		return ErrNotOwner
	}
	if b.status != StatusApproved {
		return ErrNotPayable
	}
	return nil
}

func (b *Booking) MarkPaid(now time.Time) {
	b.paymentStatus = PaymentPaid
	b.updatedAt = now
}
