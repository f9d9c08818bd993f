package response

import (
	"time"

	"gas-booking/internal/usecase/commands"
	"gas-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID          uuid.UUID  `json:"id"`
	BookingID   uuid.UUID  `json:"booking_id"`
	AmountCents int64      `json:"amount_cents"`
	Method      string     `json:"method"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	RefundedAt  *time.Time `json:"refunded_at,omitempty"`
}

type PaymentListResponse struct {
	Items      []*PaymentResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type RecordPaymentResponse struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"booking_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPaymentList(views []*queries.PaymentView, next *queries.Cursor) *PaymentListResponse {
	items := make([]*PaymentResponse, len(views))
	for i, v := range views {
		items[i] = &PaymentResponse{
			ID:          v.ID,
			BookingID:   v.BookingID,
			AmountCents: v.AmountCents,
			Method:      v.Method,
			Status:      v.Status,
			CreatedAt:   v.CreatedAt,
			RefundedAt:  v.RefundedAt,
		}
	}
	return &PaymentListResponse{Items: items, NextCursor: nextCursor(next)}
}

func FromRecordPaymentResult(r *commands.RecordPaymentResult) *RecordPaymentResponse {
	return &RecordPaymentResponse{
		ID:        r.PaymentID,
		BookingID: r.BookingID,
		Status:    r.Status.String(),
		CreatedAt: r.CreatedAt,
	}
}
