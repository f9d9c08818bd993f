package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"gas-booking/internal/domain/booking"
	"gas-booking/internal/domain/notice"
	"gas-booking/internal/domain/notification"
	"gas-booking/internal/domain/payment"
	"gas-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, pgx.Tx and *pgx.Conn.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Payments() PaymentRepository
	Notices() NoticeRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() DBTX
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx DBTX, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, tx DBTX, id uuid.UUID) (*booking.Booking, error)
	// SumQuantity totals quantities of the user's bookings in statuses created in [from, to).
	SumQuantity(ctx context.Context, tx DBTX, userID uuid.UUID, statuses []booking.Status, from, to time.Time) (int, error)
	// UpdateStatusIf writes b's status and decision stamp only while the row is
	// still in expected. It reports whether a row changed.
	UpdateStatusIf(ctx context.Context, tx DBTX, b *booking.Booking, expected booking.Status) (bool, error)
	MarkPaid(ctx context.Context, tx DBTX, b *booking.Booking) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx DBTX, p *payment.Payment) error
	FindByIDForUpdate(ctx context.Context, tx DBTX, id uuid.UUID) (*payment.Payment, error)
	// RefundIf stamps the refund only while the row is still recorded.
	RefundIf(ctx context.Context, tx DBTX, p *payment.Payment) (bool, error)
}

type NoticeRepository interface {
	Create(ctx context.Context, tx DBTX, n *notice.Notice) error
	FindByIDForUpdate(ctx context.Context, tx DBTX, id uuid.UUID) (*notice.Notice, error)
	Update(ctx context.Context, tx DBTX, n *notice.Notice) error
	Delete(ctx context.Context, tx DBTX, id uuid.UUID) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, tx DBTX, n *notification.Notification) error
	MarkRead(ctx context.Context, tx DBTX, userID, id uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, tx DBTX, userID uuid.UUID) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx DBTX, userID uuid.UUID, at time.Time) error
	// LockForBooking takes a row lock that serializes quota checks per user.
	LockForBooking(ctx context.Context, tx DBTX, userID uuid.UUID) error
}
