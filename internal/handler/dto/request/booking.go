package request

import (
	"strings"

	"gas-booking/internal/usecase/commands"
	"gas-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type RecordPaymentRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Method      string `json:"method" binding:"required,max=50"`
}

func (r *RecordPaymentRequest) ToCommand(bookingID uuid.UUID) commands.RecordPaymentRequest {
	return commands.RecordPaymentRequest{
		BookingID:   bookingID,
		AmountCents: r.AmountCents,
		Method:      strings.TrimSpace(r.Method),
	}
}

type PageQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q PageQuery) ToCursor() *queries.Cursor {
	if q.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: q.Cursor}
}
