//go:build unit || e2e

package builder

import (
	"time"

	"gas-booking/internal/domain/booking"
	reqdto "gas-booking/internal/handler/dto/request"
	"gas-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Quantity      int
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	ApprovedBy    *uuid.UUID
	ApprovedAt    *time.Time
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Quantity:      1,
		Status:        booking.StatusPending,
		PaymentStatus: booking.PaymentUnpaid,
		CreatedAt:     fixedNow,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithQuantity(n int) *BookingBuilder {
	b.Quantity = n
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}

func (b *BookingBuilder) Approved(adminID uuid.UUID) *BookingBuilder {
	return b.decided(booking.StatusApproved, adminID)
}

func (b *BookingBuilder) Rejected(adminID uuid.UUID) *BookingBuilder {
	return b.decided(booking.StatusRejected, adminID)
}

func (b *BookingBuilder) Canceled() *BookingBuilder {
	b.Status = booking.StatusCanceled
	return b
}

func (b *BookingBuilder) decided(status booking.Status, adminID uuid.UUID) *BookingBuilder {
	at := b.CreatedAt.Add(time.Minute)
	b.Status = status
	b.ApprovedBy = &adminID
	b.ApprovedAt = &at
	return b
}

// BuildDomain panics on an invalid quantity; use booking.NewQuantity directly to test validation.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	qty, err := booking.NewQuantity(b.Quantity)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(b.ID, b.UserID, qty, b.Status, b.PaymentStatus, b.ApprovedBy, b.ApprovedAt, b.CreatedAt, b.CreatedAt)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		UserID:          b.UserID,
		UserEmail:       "test@example.com",
		UserDisplayName: "Test User",
		Quantity:        int32(b.Quantity),
		Status:          b.Status.String(),
		PaymentStatus:   b.PaymentStatus.String(),
		ApprovedBy:      b.ApprovedBy,
		ApprovedAt:      b.ApprovedAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{Quantity: b.Quantity}
}
