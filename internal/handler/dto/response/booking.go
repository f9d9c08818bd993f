package response

import (
	"time"

	"gas-booking/internal/usecase/commands"
	"gas-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	UserEmail       string     `json:"user_email,omitempty"`
	UserDisplayName string     `json:"user_display_name,omitempty"`
	Quantity        int32      `json:"quantity"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"payment_status"`
	ApprovedBy      *uuid.UUID `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type BookCylinderResponse struct {
	ID             uuid.UUID `json:"id"`
	Quantity       int       `json:"quantity"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	QuotaUsed      int       `json:"quota_used"`
	QuotaRemaining int       `json:"quota_remaining"`
}

type QuotaResponse struct {
	Year        int       `json:"year"`
	Limit       int       `json:"limit"`
	Used        int       `json:"used"`
	Remaining   int       `json:"remaining"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID,
		UserID:          v.UserID,
		UserEmail:       v.UserEmail,
		UserDisplayName: v.UserDisplayName,
		Quantity:        v.Quantity,
		Status:          v.Status,
		PaymentStatus:   v.PaymentStatus,
		ApprovedBy:      v.ApprovedBy,
		ApprovedAt:      v.ApprovedAt,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromBookingList(views []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	items := make([]*BookingResponse, len(views))
	for i, v := range views {
		items[i] = FromBookingView(v)
	}
	return &BookingListResponse{Items: items, NextCursor: nextCursor(next)}
}

func FromBookCylinderResult(r *commands.BookCylinderResult) *BookCylinderResponse {
	return &BookCylinderResponse{
		ID:             r.BookingID,
		Quantity:       r.Quantity,
		Status:         r.Status.String(),
		CreatedAt:      r.CreatedAt,
		QuotaUsed:      r.QuotaUsed,
		QuotaRemaining: r.QuotaRemaining,
	}
}

func FromQuotaUsageView(v *queries.QuotaUsageView) *QuotaResponse {
	return &QuotaResponse{
		Year:        v.Year,
		Limit:       v.Limit,
		Used:        v.Used,
		Remaining:   v.Remaining,
		PeriodStart: v.PeriodStart,
		PeriodEnd:   v.PeriodEnd,
	}
}

func nextCursor(c *queries.Cursor) string {
	if c == nil {
		return ""
	}
	return c.After
}
