package queries

//go:generate mockgen -source=dashboard.go -destination=../../../tests/mock/queries/dashboard.go -package=queriesmock

import (
	"context"

	"gas-booking/internal/domain/booking"
	"gas-booking/internal/domain/payment"
	"gas-booking/internal/domain/user"
)

type DashboardReadStore interface {
	CountBookingsByStatus(ctx context.Context) (map[string]int64, error)
	CountActiveUsers(ctx context.Context) (int64, error)
	PaymentTotalsByStatus(ctx context.Context) (map[string]PaymentTotals, error)
}

type DashboardQueries interface {
	Stats(ctx context.Context, actorRole user.Role) (*DashboardStats, error)
}

type dashboardQueriesImpl struct {
	store DashboardReadStore
}

func NewDashboardQueries(store DashboardReadStore) DashboardQueries {
	return &dashboardQueriesImpl{store: store}
}

// Stats reports refunded payments apart from recorded ones; a refund does not
// reset the booking's paid flag.
func (q *dashboardQueriesImpl) Stats(ctx context.Context, actorRole user.Role) (*DashboardStats, error) {
	if !actorRole.IsAdmin() {
		return nil, ErrForbidden
	}

	byStatus, err := q.store.CountBookingsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	active, err := q.store.CountActiveUsers(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := q.store.PaymentTotalsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		BookingsByStatus: byStatus,
		PendingCount:     byStatus[booking.StatusPending.String()],
		ActiveUsers:      active,
		Recorded:         totals[payment.StatusRecorded.String()],
		Refunded:         totals[payment.StatusRefunded.String()],
	}, nil
}
