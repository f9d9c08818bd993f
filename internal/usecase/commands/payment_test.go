//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gas-booking/internal/domain/booking"
	"gas-booking/internal/domain/payment"
	"gas-booking/internal/domain/user"
	"gas-booking/internal/infra"
	"gas-booking/internal/usecase/commands"
	"gas-booking/internal/usecase/shared"
	"gas-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	h       *txHarness
	uc      commands.PaymentCommands
	userID  uuid.UUID
	adminID uuid.UUID
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = newTxHarness(s.ctrl)
	s.uc = commands.NewPaymentCommands(s.h.uow, s.h.clock, s.h.limiter, s.h.sink, testSettings().Rates)
	s.userID = uuid.New()
	s.adminID = uuid.New()
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) payKey() string {
	return commands.RateLimitKey(commands.ActionRecordPayment, s.userID)
}

func (s *PaymentCommandsTestSuite) TestRecordPayment() {
	b := builder.NewBookingBuilder().WithUserID(s.userID).Approved(s.adminID).BuildDomain()
	s.h.allow(s.payKey(), 10*time.Second)
	s.h.expectWithin()
	s.h.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
	s.h.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ shared.DBTX, p *payment.Payment) error {
			s.Equal(int64(110050), p.Amount().Cents())
			s.Equal("upi", p.Method().Value())
			s.Equal(s.userID, p.UserID())
			return nil
		})
	s.h.bookings.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), b).Return(nil)

	res, err := s.uc.RecordPayment(context.Background(), s.userID, commands.RecordPaymentRequest{
		BookingID:   b.ID(),
		AmountCents: 110050,
		Method:      " upi ",
	})

	s.Require().NoError(err)
	s.Equal(b.ID(), res.BookingID)
	s.Equal(payment.StatusRecorded, res.Status)
	s.Equal(testNow, res.CreatedAt)
	s.Equal(booking.PaymentPaid, b.PaymentStatus())
}

func (s *PaymentCommandsTestSuite) TestRecordPayment_Rejections() {
	tests := []struct {
		name    string
		booking func() *booking.Booking
		wantErr error
	}{
		{
			name:    "booking still pending",
			booking: func() *booking.Booking { return builder.NewBookingBuilder().WithUserID(s.userID).BuildDomain() },
			wantErr: commands.ErrInvalidStateTransition,
		},
		{
			name:    "booking of another user",
			booking: func() *booking.Booking { return builder.NewBookingBuilder().Approved(s.adminID).BuildDomain() },
			wantErr: commands.ErrBookingNotOwned,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			b := tt.booking()
			s.h.allow(s.payKey(), 10*time.Second)
			s.h.expectWithin()
			s.h.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

			_, err := s.uc.RecordPayment(context.Background(), s.userID, commands.RecordPaymentRequest{
				BookingID: b.ID(), AmountCents: 100, Method: "cash",
			})

			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *PaymentCommandsTestSuite) TestRecordPayment_InvalidInput() {
	tests := []struct {
		name string
		req  commands.RecordPaymentRequest
	}{
		{name: "zero amount", req: commands.RecordPaymentRequest{AmountCents: 0, Method: "upi"}},
		{name: "negative amount", req: commands.RecordPaymentRequest{AmountCents: -5, Method: "upi"}},
		{name: "blank method", req: commands.RecordPaymentRequest{AmountCents: 100, Method: "  "}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.uc.RecordPayment(context.Background(), s.userID, tt.req)
			s.ErrorIs(err, commands.ErrInvalidInput)
		})
	}
}

func (s *PaymentCommandsTestSuite) TestRecordPayment_RateLimited() {
	s.h.limiter.EXPECT().TryProceed(gomock.Any(), s.payKey(), 10*time.Second).Return(false, nil)

	_, err := s.uc.RecordPayment(context.Background(), s.userID, commands.RecordPaymentRequest{
		BookingID: uuid.New(), AmountCents: 100, Method: "cash",
	})

	s.ErrorIs(err, commands.ErrRateLimited)
}

func (s *PaymentCommandsTestSuite) TestRecordPayment_UnknownBooking() {
	id := uuid.New()
	s.h.allow(s.payKey(), 10*time.Second)
	s.h.expectWithin()
	s.h.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

	_, err := s.uc.RecordPayment(context.Background(), s.userID, commands.RecordPaymentRequest{
		BookingID: id, AmountCents: 100, Method: "cash",
	})

	s.ErrorIs(err, commands.ErrBookingNotFound)
}

func (s *PaymentCommandsTestSuite) TestRefundPayment() {
	p := builder.NewPaymentBuilder().BuildDomain()
	s.h.expectWithin()
	s.h.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)
	s.h.payments.EXPECT().RefundIf(gomock.Any(), gomock.Any(), p).Return(true, nil)
	s.h.notifications.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	err := s.uc.RefundPayment(context.Background(), s.adminID, user.RoleAdmin, p.ID())

	s.Require().NoError(err)
	s.Equal(payment.StatusRefunded, p.Status())
	s.Equal(s.adminID, *p.RefundedBy())
	s.Empty(s.h.failures())
}

func (s *PaymentCommandsTestSuite) TestRefundPayment_Failures() {
	s.Run("non admin", func() {
		err := s.uc.RefundPayment(context.Background(), s.userID, user.RoleUser, uuid.New())
		s.ErrorIs(err, commands.ErrForbidden)
	})

	s.Run("already refunded", func() {
		s.SetupTest()
		p := builder.NewPaymentBuilder().Refunded().BuildDomain()
		s.h.expectWithin()
		s.h.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)

		err := s.uc.RefundPayment(context.Background(), s.adminID, user.RoleAdmin, p.ID())
		s.ErrorIs(err, commands.ErrInvalidStateTransition)
		s.ErrorIs(err, payment.ErrAlreadyRefunded)
		failures := s.h.failures()
		s.Require().Len(failures, 1)
		s.Equal("refundPayment", failures[0].Params["context"])
	})

	s.Run("refunded concurrently", func() {
		s.SetupTest()
		p := builder.NewPaymentBuilder().BuildDomain()
		s.h.expectWithin()
		s.h.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)
		s.h.payments.EXPECT().RefundIf(gomock.Any(), gomock.Any(), p).Return(false, nil)

		err := s.uc.RefundPayment(context.Background(), s.adminID, user.RoleAdmin, p.ID())
		s.ErrorIs(err, commands.ErrInvalidStateTransition)
	})

	s.Run("not found", func() {
		s.SetupTest()
		id := uuid.New()
		s.h.expectWithin()
		s.h.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound))

		err := s.uc.RefundPayment(context.Background(), s.adminID, user.RoleAdmin, id)
		s.ErrorIs(err, commands.ErrPaymentNotFound)
	})
}
