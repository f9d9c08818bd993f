//go:build unit

package undo_test

import (
	"context"
	"testing"
	"time"

	"gas-booking/internal/infra/undo"
	"gas-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LedgerTestSuite struct {
	suite.Suite
	clock     *clock.MockClock
	ledger    *undo.Ledger
	bookingID uuid.UUID
	adminID   uuid.UUID
	t0        time.Time
}

func (s *LedgerTestSuite) SetupTest() {
	s.t0 = time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.t0)
	s.ledger = undo.NewLedger(s.clock, 2*time.Minute)
	s.bookingID = uuid.New()
	s.adminID = uuid.New()
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) TestConsumeWithinWindow() {
	s.ledger.Register(s.bookingID, s.adminID, s.t0)
	s.clock.Add(119 * time.Second)

	entry, ok := s.ledger.TryConsume(s.bookingID, s.adminID)

	s.True(ok)
	s.Equal(s.bookingID, entry.BookingID)
	s.Equal(s.adminID, entry.RejectedBy)
	s.Equal(s.t0, entry.RejectedAt)
	s.Equal(0, s.ledger.Len())
}

func (s *LedgerTestSuite) TestConsumeAfterWindow() {
	s.ledger.Register(s.bookingID, s.adminID, s.t0)
	s.clock.Add(121 * time.Second)

	_, ok := s.ledger.TryConsume(s.bookingID, s.adminID)

	s.False(ok)
	s.Equal(0, s.ledger.Len(), "expired entry is dropped on read")
}

func (s *LedgerTestSuite) TestWindowBoundaryIsExclusive() {
	s.ledger.Register(s.bookingID, s.adminID, s.t0)
	s.clock.Add(2 * time.Minute)

	_, ok := s.ledger.TryConsume(s.bookingID, s.adminID)
	s.False(ok)
}

func (s *LedgerTestSuite) TestSecondConsumeFails() {
	s.ledger.Register(s.bookingID, s.adminID, s.t0)

	_, ok := s.ledger.TryConsume(s.bookingID, s.adminID)
	s.Require().True(ok)

	_, ok = s.ledger.TryConsume(s.bookingID, s.adminID)
	s.False(ok)
}

func (s *LedgerTestSuite) TestOtherAdminCannotConsume() {
	s.ledger.Register(s.bookingID, s.adminID, s.t0)

	_, ok := s.ledger.TryConsume(s.bookingID, uuid.New())
	s.False(ok)

	// the rejecting admin still can
	_, ok = s.ledger.TryConsume(s.bookingID, s.adminID)
	s.True(ok)
}

func (s *LedgerTestSuite) TestUnknownBooking() {
	_, ok := s.ledger.TryConsume(uuid.New(), s.adminID)
	s.False(ok)
}

func (s *LedgerTestSuite) TestRestoreKeepsOriginalTime() {
	s.ledger.Register(s.bookingID, s.adminID, s.t0)
	s.clock.Add(60 * time.Second)
	entry, ok := s.ledger.TryConsume(s.bookingID, s.adminID)
	s.Require().True(ok)

	s.ledger.Restore(entry)

	// 61s after restore is 121s after the rejection
	s.clock.Add(61 * time.Second)
	_, ok = s.ledger.TryConsume(s.bookingID, s.adminID)
	s.False(ok)
}

func (s *LedgerTestSuite) TestRestoreDoesNotOverwriteNewerEntry() {
	s.ledger.Register(s.bookingID, s.adminID, s.t0)
	entry, ok := s.ledger.TryConsume(s.bookingID, s.adminID)
	s.Require().True(ok)

	other := uuid.New()
	s.ledger.Register(s.bookingID, other, s.t0.Add(30*time.Second))
	s.ledger.Restore(entry)

	got, ok := s.ledger.TryConsume(s.bookingID, other)
	s.True(ok)
	s.Equal(other, got.RejectedBy)
}

func (s *LedgerTestSuite) TestSweep() {
	s.ledger.Register(s.bookingID, s.adminID, s.t0)
	s.ledger.Register(uuid.New(), s.adminID, s.t0.Add(90*time.Second))
	s.clock.Add(150 * time.Second)

	s.Equal(1, s.ledger.Sweep())
	s.Equal(1, s.ledger.Len())
}

func TestLedger_DefaultWindow(t *testing.T) {
	l := undo.NewLedger(clock.NewMockClock(time.Now()), 0)
	assert.Equal(t, undo.DefaultWindow, l.Window())
}

func TestLedger_StartStop(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC))
	l := undo.NewLedger(clk, time.Minute)
	l.Register(uuid.New(), uuid.New(), clk.Now())
	clk.Add(2 * time.Minute)

	require.NoError(t, l.Start(context.Background(), 5*time.Millisecond))
	require.Eventually(t, func() bool { return l.Len() == 0 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, l.Stop(ctx))
	// stopping twice is harmless
	require.NoError(t, l.Stop(ctx))
}
