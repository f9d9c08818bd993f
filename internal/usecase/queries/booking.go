package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"
	"time"

	"gas-booking/internal/domain/booking"
	"gas-booking/internal/domain/user"
	"gas-booking/internal/infra"
	"gas-booking/internal/pkg/clock"
	"gas-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
	ErrForbidden       = errs.New("operation requires administrator role")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListByUser orders by created_at desc, id desc.
	ListByUser(ctx context.Context, userID uuid.UUID, page Keyset) ([]*BookingView, error)
	// ListPending orders by created_at asc, id asc so the oldest request is reviewed first.
	ListPending(ctx context.Context, page Keyset) ([]*BookingView, error)
	SumQuantity(ctx context.Context, userID uuid.UUID, statuses []booking.Status, from, to time.Time) (int, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*BookingView, error)
	ListMyBookings(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	ListPendingBookings(ctx context.Context, actorRole user.Role, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	QuotaUsage(ctx context.Context, userID uuid.UUID) (*QuotaUsageView, error)
}

type bookingQueriesImpl struct {
	store  BookingReadStore
	policy booking.QuotaPolicy
	clock  clock.Clock
}

func NewBookingQueries(store BookingReadStore, policy booking.QuotaPolicy, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, policy: policy, clock: clk}
}

func bookingKey(b *BookingView) (time.Time, uuid.UUID) { return b.CreatedAt, b.ID }

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !actorRole.IsAdmin() && b.UserID != actorID {
		return nil, ErrBookingAccess
	}
	return b, nil
}

func (q *bookingQueriesImpl) ListMyBookings(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	ks, err := newKeyset(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListByUser(ctx, userID, ks)
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, bookingKey)
	return rows, next, nil
}

func (q *bookingQueriesImpl) ListPendingBookings(ctx context.Context, actorRole user.Role, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if !actorRole.IsAdmin() {
		return nil, nil, ErrForbidden
	}
	limit = ValidateLimit(limit)
	ks, err := newKeyset(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListPending(ctx, ks)
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, bookingKey)
	return rows, next, nil
}

func (q *bookingQueriesImpl) QuotaUsage(ctx context.Context, userID uuid.UUID) (*QuotaUsageView, error) {
	start, end := q.policy.Period(q.clock.Now())
	used, err := q.store.SumQuantity(ctx, userID, booking.QuotaStatuses, start, end)
	if err != nil {
		return nil, err
	}
	return &QuotaUsageView{
		Year:        start.Year(),
		Limit:       q.policy.Limit(),
		Used:        used,
		Remaining:   q.policy.Remaining(used),
		PeriodStart: start,
		PeriodEnd:   end,
	}, nil
}
