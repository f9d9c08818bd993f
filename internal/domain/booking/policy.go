package booking

import (
	"time"

	"gas-booking/internal/pkg/clock"
)

const DefaultAnnualQuota = 12

// QuotaPolicy bounds the cylinders a user may hold in pending or approved
// bookings created within one calendar year.
type QuotaPolicy struct {
	limit    int
	location *time.Location
}

func NewQuotaPolicy(limit int, loc *time.Location) QuotaPolicy {
	if limit <= 0 {
		limit = DefaultAnnualQuota
	}
	if loc == nil {
		loc = time.UTC
	}
	return QuotaPolicy{limit: limit, location: loc}
}

func (p QuotaPolicy) Limit() int { return p.limit }

// Period returns the half-open [start, end) calendar year containing now.
func (p QuotaPolicy) Period(now time.Time) (time.Time, time.Time) {
	start := clock.StartOfYear(now, p.location)
	return start, start.AddDate(1, 0, 0)
}

// Check fails with ErrQuotaExceeded when used+requested would pass the limit.
func (p QuotaPolicy) Check(used int, requested Quantity) error {
	if used+requested.Value() > p.limit {
		return ErrQuotaExceeded
	}
	return nil
}

func (p QuotaPolicy) Remaining(used int) int {
	if used >= p.limit {
		return 0
	}
	return p.limit - used
}
