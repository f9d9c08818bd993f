package readstore

import (
	"context"

	"gas-booking/internal/infra"
	"gas-booking/internal/usecase/queries"
	"gas-booking/internal/usecase/shared"
)

const (
	countBookingsByStatusSQL = `SELECT status, count(*) FROM bookings GROUP BY status`

	countActiveUsersSQL = `SELECT count(*) FROM users WHERE is_active`

	paymentTotalsByStatusSQL = `
SELECT status, count(*), COALESCE(SUM(amount_cents), 0)::bigint
FROM payments
GROUP BY status`
)

type DashboardReadStore struct {
	db shared.DBTX
}

func NewDashboardReadStore(db shared.DBTX) *DashboardReadStore {
	return &DashboardReadStore{db: db}
}

func (r *DashboardReadStore) CountBookingsByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, countBookingsByStatusSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by status", err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking count", err)
		}
		out[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking counts", err)
	}
	return out, nil
}

func (r *DashboardReadStore) CountActiveUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, countActiveUsersSQL).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count active users", err)
	}
	return n, nil
}

func (r *DashboardReadStore) PaymentTotalsByStatus(ctx context.Context) (map[string]queries.PaymentTotals, error) {
	rows, err := r.db.Query(ctx, paymentTotalsByStatusSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to total payments", err)
	}
	defer rows.Close()

	out := make(map[string]queries.PaymentTotals)
	for rows.Next() {
		var (
			status string
			t      queries.PaymentTotals
		)
		if err := rows.Scan(&status, &t.Count, &t.TotalCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment totals", err)
		}
		out[status] = t
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment totals", err)
	}
	return out, nil
}
