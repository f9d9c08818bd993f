//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gas-booking/internal/domain/booking"
	"gas-booking/internal/domain/notification"
	"gas-booking/internal/domain/user"
	"gas-booking/internal/infra"
	"gas-booking/internal/infra/undo"
	"gas-booking/internal/usecase/commands"
	"gas-booking/internal/usecase/shared"
	"gas-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	h       *txHarness
	uc      commands.BookingCommands
	userID  uuid.UUID
	adminID uuid.UUID
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = newTxHarness(s.ctrl)
	s.uc = commands.NewBookingCommands(s.h.uow, s.h.clock, s.h.limiter, s.h.ledger, s.h.sink, testSettings())
	s.userID = uuid.New()
	s.adminID = uuid.New()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) bookKey() string {
	return commands.RateLimitKey(commands.ActionBookCylinder, s.userID)
}

func (s *BookingCommandsTestSuite) expectQuotaSum(sum int) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.h.users.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), s.userID).Return(nil)
	s.h.bookings.EXPECT().
		SumQuantity(gomock.Any(), gomock.Any(), s.userID, booking.QuotaStatuses, from, to).
		Return(sum, nil)
}

func (s *BookingCommandsTestSuite) TestBookCylinder_FillsQuotaExactly() {
	s.h.allow(s.bookKey(), 10*time.Second)
	s.h.expectWithin()
	s.expectQuotaSum(10)

	var stored *booking.Booking
	s.h.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ shared.DBTX, b *booking.Booking) error {
			stored = b
			return nil
		})

	res, err := s.uc.BookCylinder(context.Background(), s.userID, 2)

	s.Require().NoError(err)
	s.Equal(2, res.Quantity)
	s.Equal(booking.StatusPending, res.Status)
	s.Equal(12, res.QuotaUsed)
	s.Equal(0, res.QuotaRemaining)
	s.Equal(testNow, res.CreatedAt)
	s.Require().NotNil(stored)
	s.Equal(stored.ID(), res.BookingID)
	s.Equal(s.userID, stored.UserID())
}

func (s *BookingCommandsTestSuite) TestBookCylinder_QuotaExceededWritesNothing() {
	s.h.allow(s.bookKey(), 10*time.Second)
	s.h.expectWithin()
	s.expectQuotaSum(10)
	// no Create expectation: gomock fails the test if the booking is inserted

	_, err := s.uc.BookCylinder(context.Background(), s.userID, 3)

	s.ErrorIs(err, booking.ErrQuotaExceeded)
	failures := s.h.failures()
	s.Require().Len(failures, 1)
	s.Equal("bookCylinder", failures[0].Params["context"])
}

func (s *BookingCommandsTestSuite) TestBookCylinder_RateLimited() {
	s.h.limiter.EXPECT().TryProceed(gomock.Any(), s.bookKey(), 10*time.Second).Return(false, nil)

	_, err := s.uc.BookCylinder(context.Background(), s.userID, 1)

	s.ErrorIs(err, commands.ErrRateLimited)
	s.Len(s.h.failures(), 1)
}

func (s *BookingCommandsTestSuite) TestBookCylinder_InvalidQuantitySkipsThrottle() {
	for _, qty := range []int{0, -1} {
		_, err := s.uc.BookCylinder(context.Background(), s.userID, qty)
		s.ErrorIs(err, commands.ErrInvalidInput)
		s.ErrorIs(err, booking.ErrInvalidQuantity)
	}
}

func (s *BookingCommandsTestSuite) TestBookCylinder_LimiterFailureFailsOpen() {
	s.h.limiter.EXPECT().TryProceed(gomock.Any(), s.bookKey(), 10*time.Second).Return(false, errors.New("redis down"))
	s.h.expectWithin()
	s.expectQuotaSum(0)
	s.h.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.uc.BookCylinder(context.Background(), s.userID, 1)

	s.Require().NoError(err)
	s.Equal(11, res.QuotaRemaining)
}

func (s *BookingCommandsTestSuite) TestSetBookingStatus_RequiresAdmin() {
	err := s.uc.SetBookingStatus(context.Background(), s.userID, user.RoleUser, uuid.New(), true)
	s.ErrorIs(err, commands.ErrForbidden)
}

func (s *BookingCommandsTestSuite) TestSetBookingStatus_Approve() {
	b := builder.NewBookingBuilder().WithUserID(s.userID).BuildDomain()
	s.h.expectWithin()
	s.h.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
	s.h.bookings.EXPECT().UpdateStatusIf(gomock.Any(), gomock.Any(), b, booking.StatusPending).Return(true, nil)
	s.h.notifications.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ shared.DBTX, n *notification.Notification) error {
			s.Equal(s.userID, n.UserID())
			s.Contains(n.Title(), "approved")
			return nil
		})

	err := s.uc.SetBookingStatus(context.Background(), s.adminID, user.RoleAdmin, b.ID(), true)

	s.Require().NoError(err)
	s.Equal(booking.StatusApproved, b.Status())
	s.Equal(s.adminID, *b.ApprovedBy())
}

func (s *BookingCommandsTestSuite) TestSetBookingStatus_RejectRegistersUndo() {
	b := builder.NewBookingBuilder().WithUserID(s.userID).BuildDomain()
	s.h.expectWithin()
	s.h.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
	s.h.bookings.EXPECT().UpdateStatusIf(gomock.Any(), gomock.Any(), b, booking.StatusPending).Return(true, nil)
	s.h.notifications.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.h.ledger.EXPECT().Register(b.ID(), s.adminID, testNow)

	err := s.uc.SetBookingStatus(context.Background(), s.adminID, user.RoleAdmin, b.ID(), false)

	s.Require().NoError(err)
	s.Equal(booking.StatusRejected, b.Status())
}

func (s *BookingCommandsTestSuite) TestSetBookingStatus_AlreadyDecided() {
	b := builder.NewBookingBuilder().Approved(uuid.New()).BuildDomain()
	s.h.expectWithin()
	s.h.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

	err := s.uc.SetBookingStatus(context.Background(), s.adminID, user.RoleAdmin, b.ID(), false)

	s.ErrorIs(err, commands.ErrInvalidStateTransition)
}

func (s *BookingCommandsTestSuite) TestSetBookingStatus_LostRace() {
	b := builder.NewBookingBuilder().BuildDomain()
	s.h.expectWithin()
	s.h.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
	s.h.bookings.EXPECT().UpdateStatusIf(gomock.Any(), gomock.Any(), b, booking.StatusPending).Return(false, nil)

	err := s.uc.SetBookingStatus(context.Background(), s.adminID, user.RoleAdmin, b.ID(), true)

	s.ErrorIs(err, commands.ErrInvalidStateTransition)
}

func (s *BookingCommandsTestSuite) TestSetBookingStatus_NotFound() {
	id := uuid.New()
	s.h.expectWithin()
	s.h.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

	err := s.uc.SetBookingStatus(context.Background(), s.adminID, user.RoleAdmin, id, true)

	s.ErrorIs(err, commands.ErrBookingNotFound)
}

func (s *BookingCommandsTestSuite) TestUndoRejection() {
	b := builder.NewBookingBuilder().WithUserID(s.userID).Rejected(s.adminID).BuildDomain()
	entry := shared.UndoEntry{BookingID: b.ID(), RejectedBy: s.adminID, RejectedAt: testNow}

	s.h.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(&shared.BookingSnapshot{ID: b.ID()}, nil)
	s.h.ledger.EXPECT().TryConsume(b.ID(), s.adminID).Return(entry, true)
	s.h.expectWithin()
	s.h.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
	s.h.bookings.EXPECT().UpdateStatusIf(gomock.Any(), gomock.Any(), b, booking.StatusRejected).Return(true, nil)
	s.h.notifications.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	err := s.uc.UndoRejection(context.Background(), s.adminID, user.RoleAdmin, b.ID())

	s.Require().NoError(err)
	s.Equal(booking.StatusPending, b.Status())
	s.Nil(b.ApprovedBy())
	s.Nil(b.ApprovedAt())
}

func (s *BookingCommandsTestSuite) TestUndoRejection_Unavailable() {
	id := uuid.New()
	s.h.reads.EXPECT().BookingByID(gomock.Any(), id).Return(&shared.BookingSnapshot{ID: id}, nil)
	s.h.ledger.EXPECT().TryConsume(id, s.adminID).Return(shared.UndoEntry{}, false)

	err := s.uc.UndoRejection(context.Background(), s.adminID, user.RoleAdmin, id)

	s.ErrorIs(err, commands.ErrUndoUnavailable)
}

func (s *BookingCommandsTestSuite) TestUndoRejection_UnknownBooking() {
	id := uuid.New()
	s.h.reads.EXPECT().BookingByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

	err := s.uc.UndoRejection(context.Background(), s.adminID, user.RoleAdmin, id)

	s.ErrorIs(err, commands.ErrBookingNotFound)
}

func (s *BookingCommandsTestSuite) TestUndoRejection_StoreFailureRestoresEntry() {
	b := builder.NewBookingBuilder().Rejected(s.adminID).BuildDomain()
	entry := shared.UndoEntry{BookingID: b.ID(), RejectedBy: s.adminID, RejectedAt: testNow}

	s.h.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(&shared.BookingSnapshot{ID: b.ID()}, nil)
	s.h.ledger.EXPECT().TryConsume(b.ID(), s.adminID).Return(entry, true)
	s.h.expectWithin()
	s.h.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
	s.h.bookings.EXPECT().UpdateStatusIf(gomock.Any(), gomock.Any(), b, booking.StatusRejected).
		Return(false, infra.WrapRepoErr("failed to update booking status", errors.New("conn reset")))
	s.h.ledger.EXPECT().Restore(entry)

	err := s.uc.UndoRejection(context.Background(), s.adminID, user.RoleAdmin, b.ID())

	s.Error(err)
}

func (s *BookingCommandsTestSuite) TestUndoRejection_NotRejectedAnymoreConsumesEntry() {
	b := builder.NewBookingBuilder().Approved(s.adminID).BuildDomain()
	entry := shared.UndoEntry{BookingID: b.ID(), RejectedBy: s.adminID, RejectedAt: testNow}

	s.h.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(&shared.BookingSnapshot{ID: b.ID()}, nil)
	s.h.ledger.EXPECT().TryConsume(b.ID(), s.adminID).Return(entry, true)
	s.h.expectWithin()
	s.h.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

	err := s.uc.UndoRejection(context.Background(), s.adminID, user.RoleAdmin, b.ID())

	s.ErrorIs(err, commands.ErrInvalidStateTransition)
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	tests := []struct {
		name    string
		actor   func() uuid.UUID
		status  func(*builder.BookingBuilder)
		elapsed time.Duration
		wantErr error
	}{
		{name: "owner inside window", elapsed: 2 * time.Hour},
		{name: "window expired", elapsed: 2*time.Hour + time.Second, wantErr: commands.ErrCancelWindowExpired},
		{name: "other user", actor: uuid.New, wantErr: commands.ErrBookingNotOwned},
		{name: "already approved", status: func(b *builder.BookingBuilder) { b.Approved(uuid.New()) }, wantErr: commands.ErrInvalidStateTransition},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			bb := builder.NewBookingBuilder().WithUserID(s.userID).WithCreatedAt(testNow)
			if tt.status != nil {
				tt.status(bb)
			}
			b := bb.BuildDomain()
			actor := s.userID
			if tt.actor != nil {
				actor = tt.actor()
			}
			s.h.clock.Set(testNow.Add(tt.elapsed))

			s.h.expectWithin()
			s.h.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
			if tt.wantErr == nil {
				s.h.bookings.EXPECT().UpdateStatusIf(gomock.Any(), gomock.Any(), b, booking.StatusPending).Return(true, nil)
			}

			err := s.uc.CancelBooking(context.Background(), actor, b.ID())

			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
				s.NotEqual(booking.StatusCanceled, b.Status())
				failures := s.h.failures()
				s.Require().Len(failures, 1)
				s.Equal("cancelBooking", failures[0].Params["context"])
				s.Equal(err.Error(), failures[0].Params["error"])
				s.Equal(testNow.Add(tt.elapsed), failures[0].OccurredAt)
				return
			}
			s.Require().NoError(err)
			s.Equal(booking.StatusCanceled, b.Status())
			s.Empty(s.h.failures())
		})
	}
}

// The real ledger decides the two-minute boundary; the store is mocked.
func TestUndoRejection_WindowWithLedger(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		wantErr error
	}{
		{name: "119 seconds after rejection", elapsed: 119 * time.Second},
		{name: "121 seconds after rejection", elapsed: 121 * time.Second, wantErr: commands.ErrUndoUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := newTxHarness(ctrl)
			ledger := undo.NewLedger(h.clock, 2*time.Minute)
			uc := commands.NewBookingCommands(h.uow, h.clock, h.limiter, ledger, h.sink, testSettings())

			adminID := uuid.New()
			b := builder.NewBookingBuilder().BuildDomain()

			h.expectWithin().Times(1)
			h.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
			h.bookings.EXPECT().UpdateStatusIf(gomock.Any(), gomock.Any(), b, booking.StatusPending).Return(true, nil)
			h.notifications.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

			require.NoError(t, uc.SetBookingStatus(context.Background(), adminID, user.RoleAdmin, b.ID(), false))

			h.clock.Add(tt.elapsed)
			h.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(&shared.BookingSnapshot{ID: b.ID()}, nil)
			if tt.wantErr == nil {
				h.expectWithin().Times(1)
				h.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
				h.bookings.EXPECT().UpdateStatusIf(gomock.Any(), gomock.Any(), b, booking.StatusRejected).Return(true, nil)
				h.notifications.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			err := uc.UndoRejection(context.Background(), adminID, user.RoleAdmin, b.ID())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusPending, b.Status())
		})
	}
}
