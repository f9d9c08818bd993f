package response

import "gas-booking/internal/usecase/queries"

type PaymentTotalsResponse struct {
	Count      int64 `json:"count"`
	TotalCents int64 `json:"total_cents"`
}

type DashboardResponse struct {
	BookingsByStatus map[string]int64      `json:"bookings_by_status"`
	PendingCount     int64                 `json:"pending_count"`
	ActiveUsers      int64                 `json:"active_users"`
	Recorded         PaymentTotalsResponse `json:"recorded"`
	Refunded         PaymentTotalsResponse `json:"refunded"`
}

func FromDashboardStats(s *queries.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		BookingsByStatus: s.BookingsByStatus,
		PendingCount:     s.PendingCount,
		ActiveUsers:      s.ActiveUsers,
		Recorded:         PaymentTotalsResponse(s.Recorded),
		Refunded:         PaymentTotalsResponse(s.Refunded),
	}
}
