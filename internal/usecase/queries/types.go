package queries

import (
	"time"

	"github.com/google/uuid"
)

type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	UserEmail       string     `json:"user_email"`
	UserDisplayName string     `json:"user_display_name"`
	Quantity        int32      `json:"quantity"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"payment_status"`
	ApprovedBy      *uuid.UUID `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type QuotaUsageView struct {
	Year        int       `json:"year"`
	Limit       int       `json:"limit"`
	Used        int       `json:"used"`
	Remaining   int       `json:"remaining"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}

type PaymentView struct {
	ID          uuid.UUID  `json:"id"`
	BookingID   uuid.UUID  `json:"booking_id"`
	UserID      uuid.UUID  `json:"user_id"`
	AmountCents int64      `json:"amount_cents"`
	Method      string     `json:"method"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	RefundedAt  *time.Time `json:"refunded_at,omitempty"`
}

type NoticeView struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PaymentTotals struct {
	Count      int64 `json:"count"`
	TotalCents int64 `json:"total_cents"`
}

type DashboardStats struct {
	BookingsByStatus map[string]int64 `json:"bookings_by_status"`
	PendingCount     int64            `json:"pending_count"`
	ActiveUsers      int64            `json:"active_users"`
	Recorded         PaymentTotals    `json:"recorded"`
	Refunded         PaymentTotals    `json:"refunded"`
}
