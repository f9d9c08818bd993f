//go:build unit

package commands_test

import (
	"context"
	"time"

	"gas-booking/internal/domain/booking"
	"gas-booking/internal/pkg/clock"
	"gas-booking/internal/usecase/commands"
	"gas-booking/internal/usecase/shared"
	sharedmock "gas-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

// txHarness runs every Within callback against one mocked Tx.
type txHarness struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	bookings      *sharedmock.MockBookingRepository
	payments      *sharedmock.MockPaymentRepository
	notices       *sharedmock.MockNoticeRepository
	notifications *sharedmock.MockNotificationRepository
	users         *sharedmock.MockUserRepository
	limiter       *sharedmock.MockRateLimiter
	ledger        *sharedmock.MockUndoLedger
	sink          *sharedmock.MockEventSink
	clock         *clock.MockClock
	events        []shared.Event
}

func newTxHarness(ctrl *gomock.Controller) *txHarness {
	h := &txHarness{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		payments:      sharedmock.NewMockPaymentRepository(ctrl),
		notices:       sharedmock.NewMockNoticeRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		limiter:       sharedmock.NewMockRateLimiter(ctrl),
		ledger:        sharedmock.NewMockUndoLedger(ctrl),
		sink:          sharedmock.NewMockEventSink(ctrl),
		clock:         clock.NewMockClock(testNow),
	}

	h.tx.EXPECT().Bookings().Return(h.bookings).AnyTimes()
	h.tx.EXPECT().Payments().Return(h.payments).AnyTimes()
	h.tx.EXPECT().Notices().Return(h.notices).AnyTimes()
	h.tx.EXPECT().Notifications().Return(h.notifications).AnyTimes()
	h.tx.EXPECT().Users().Return(h.users).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()
	h.sink.EXPECT().Emit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e shared.Event) error {
			h.events = append(h.events, e)
			return nil
		}).AnyTimes()
	return h
}

// failures returns the client_error events emitted so far.
func (h *txHarness) failures() []shared.Event {
	var out []shared.Event
	for _, e := range h.events {
		if e.Name == commands.EventClientError {
			out = append(out, e)
		}
	}
	return out
}

func (h *txHarness) expectWithin() *gomock.Call {
	return h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		})
}

func (h *txHarness) allow(key string, interval time.Duration) *gomock.Call {
	return h.limiter.EXPECT().TryProceed(gomock.Any(), key, interval).Return(true, nil)
}

func testSettings() commands.BookingSettings {
	return commands.BookingSettings{
		Quota:        booking.NewQuotaPolicy(12, time.UTC),
		CancelWindow: 2 * time.Hour,
		Rates: commands.RateIntervals{
			BookCylinder:  10 * time.Second,
			RecordPayment: 10 * time.Second,
		},
	}
}
