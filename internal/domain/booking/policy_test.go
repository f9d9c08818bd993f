//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gas-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQty(t *testing.T, n int) booking.Quantity {
	t.Helper()
	q, err := booking.NewQuantity(n)
	require.NoError(t, err)
	return q
}

func TestQuotaPolicy_Check(t *testing.T) {
	policy := booking.NewQuotaPolicy(12, time.UTC)

	cases := []struct {
		name      string
		used      int
		requested int
		errIs     error
	}{
		{name: "10 held plus 2 fills the quota", used: 10, requested: 2},
		{name: "10 held plus 3 exceeds the quota", used: 10, requested: 3, errIs: booking.ErrQuotaExceeded},
		{name: "empty year, full quota at once", used: 0, requested: 12},
		{name: "empty year, one over", used: 0, requested: 13, errIs: booking.ErrQuotaExceeded},
		{name: "quota already used up", used: 12, requested: 1, errIs: booking.ErrQuotaExceeded},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := policy.Check(c.used, mustQty(t, c.requested))
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestQuotaPolicy_Remaining(t *testing.T) {
	policy := booking.NewQuotaPolicy(12, time.UTC)

	assert.Equal(t, 12, policy.Remaining(0))
	assert.Equal(t, 2, policy.Remaining(10))
	assert.Equal(t, 0, policy.Remaining(12))
	assert.Equal(t, 0, policy.Remaining(15))
}

func TestQuotaPolicy_Defaults(t *testing.T) {
	policy := booking.NewQuotaPolicy(0, nil)
	assert.Equal(t, booking.DefaultAnnualQuota, policy.Limit())
}

func TestQuotaPolicy_Period(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	policy := booking.NewQuotaPolicy(12, kolkata)

	t.Run("mid year", func(t *testing.T) {
		start, end := policy.Period(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
		assert.True(t, start.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, kolkata)))
		assert.True(t, end.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, kolkata)))
	})

	t.Run("UTC new year's eve is already next year in Kolkata", func(t *testing.T) {
		// 2025-12-31 20:00 UTC is 2026-01-01 01:30 IST
		start, _ := policy.Period(time.Date(2025, 12, 31, 20, 0, 0, 0, time.UTC))
		assert.Equal(t, 2026, start.Year())
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, booking.StatusPending.CountsTowardQuota())
	assert.True(t, booking.StatusApproved.CountsTowardQuota())
	assert.False(t, booking.StatusRejected.CountsTowardQuota())
	assert.False(t, booking.StatusCanceled.CountsTowardQuota())

	_, err := booking.ParseStatus("shipped")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)

	st, err := booking.ParseStatus("approved")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusApproved, st)
}
