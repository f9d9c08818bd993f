//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"gas-booking/internal/domain/booking"
	"gas-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingBooking(t *testing.T) *booking.Booking {
	t.Helper()
	qty, err := booking.NewQuantity(2)
	require.NoError(t, err)
	return booking.NewBooking(uuid.New(), qty, time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC))
}

func TestBookingRepository_Create(t *testing.T) {
	tests := []struct {
		name      string
		dbErr     error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", dbErr: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newPendingBooking(t)
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, insertBookingSQL, mock.MatchedBy(func(args []any) bool {
				return len(args) == 9 && args[0] == b.ID() && args[2] == int32(2) && args[3] == "pending" && args[4] == "unpaid"
			})).Return(tag("INSERT 0 1"), tt.dbErr)

			err := NewBookingRepository().Create(context.Background(), db, b)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestBookingRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()
	id, userID, adminID := uuid.New(), uuid.New(), uuid.New()
	created := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	approvedAt := created.Add(time.Hour)

	t.Run("reconstructs an approved booking", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, selectBookingForUpdateSQL, []any{id}).Return(stubRow{values: []any{
			id, userID, int32(3), "approved", "unpaid",
			pgtype.UUID{Bytes: adminID, Valid: true},
			pgtype.Timestamptz{Time: approvedAt, Valid: true},
			created, approvedAt,
		}})

		b, err := NewBookingRepository().FindByIDForUpdate(ctx, db, id)

		require.NoError(t, err)
		assert.Equal(t, id, b.ID())
		assert.Equal(t, userID, b.UserID())
		assert.Equal(t, 3, b.Quantity().Value())
		assert.Equal(t, booking.StatusApproved, b.Status())
		assert.Equal(t, booking.PaymentUnpaid, b.PaymentStatus())
		require.NotNil(t, b.ApprovedBy())
		assert.Equal(t, adminID, *b.ApprovedBy())
		assert.Equal(t, approvedAt, *b.ApprovedAt())
	})

	t.Run("missing row maps to NOT_FOUND", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, selectBookingForUpdateSQL, []any{id}).Return(stubRow{err: pgx.ErrNoRows})

		_, err := NewBookingRepository().FindByIDForUpdate(ctx, db, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, selectBookingForUpdateSQL, []any{id}).Return(stubRow{values: []any{
			id, userID, int32(1), "delivered", "unpaid",
			pgtype.UUID{}, pgtype.Timestamptz{}, created, created,
		}})

		_, err := NewBookingRepository().FindByIDForUpdate(ctx, db, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingRepository_SumQuantity(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	db := new(MockDBTX)
	db.On("QueryRow", ctx, sumBookingQuantitySQL, []any{userID, []string{"pending", "approved"}, from, to}).
		Return(stubRow{values: []any{int32(10)}})

	sum, err := NewBookingRepository().SumQuantity(ctx, db, userID, booking.QuotaStatuses, from, to)

	require.NoError(t, err)
	assert.Equal(t, 10, sum)
	db.AssertExpectations(t)
}

func TestBookingRepository_UpdateStatusIf(t *testing.T) {
	tests := []struct {
		name        string
		commandTag  string
		wantChanged bool
	}{
		{name: "row still pending", commandTag: "UPDATE 1", wantChanged: true},
		{name: "row moved on concurrently", commandTag: "UPDATE 0", wantChanged: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newPendingBooking(t)
			require.NoError(t, b.Approve(uuid.New(), time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)))

			db := new(MockDBTX)
			db.On("Exec", mock.Anything, updateBookingStatusIfSQL, mock.MatchedBy(func(args []any) bool {
				return args[1] == "approved" && args[5] == "pending"
			})).Return(tag(tt.commandTag), nil)

			changed, err := NewBookingRepository().UpdateStatusIf(context.Background(), db, b, booking.StatusPending)

			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestBookingRepository_MarkPaid(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		b := newPendingBooking(t)
		b.MarkPaid(b.CreatedAt())
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, markBookingPaidSQL, []any{b.ID(), "paid", b.UpdatedAt()}).Return(tag("UPDATE 1"), nil)

		assert.NoError(t, NewBookingRepository().MarkPaid(context.Background(), db, b))
	})

	t.Run("no row", func(t *testing.T) {
		b := newPendingBooking(t)
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, markBookingPaidSQL, mock.Anything).Return(tag("UPDATE 0"), nil)

		err := NewBookingRepository().MarkPaid(context.Background(), db, b)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
