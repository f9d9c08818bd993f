package undo

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gas-booking/internal/pkg/clock"
	"gas-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const DefaultWindow = 2 * time.Minute

// Ledger remembers recent rejections so the rejecting admin can reverse them.
// An entry is live while now - RejectedAt < window. Expiry is checked on every
// read; Sweep only reclaims memory. State is process-local and lost on restart.
type Ledger struct {
	mu      sync.Mutex
	clock   clock.Clock
	window  time.Duration
	entries map[uuid.UUID]shared.UndoEntry

	stop chan struct{}
	done chan struct{}
}

func NewLedger(clk clock.Clock, window time.Duration) *Ledger {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Ledger{
		clock:   clk,
		window:  window,
		entries: make(map[uuid.UUID]shared.UndoEntry),
	}
}

func (l *Ledger) Window() time.Duration { return l.window }

// Register replaces any earlier entry for the booking.
func (l *Ledger) Register(bookingID, adminID uuid.UUID, at time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[bookingID] = shared.UndoEntry{BookingID: bookingID, RejectedBy: adminID, RejectedAt: at}
}

func (l *Ledger) TryConsume(bookingID, adminID uuid.UUID) (shared.UndoEntry, bool) {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[bookingID]
	if !ok {
		return shared.UndoEntry{}, false
	}
	if !l.live(entry, now) {
		delete(l.entries, bookingID)
		return shared.UndoEntry{}, false
	}
	if entry.RejectedBy != adminID {
		return shared.UndoEntry{}, false
	}
	delete(l.entries, bookingID)
	return entry, true
}

// Restore puts back a consumed entry with its original rejection time, unless
// a newer entry was registered meanwhile.
func (l *Ledger) Restore(entry shared.UndoEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if cur, ok := l.entries[entry.BookingID]; ok && cur.RejectedAt.After(entry.RejectedAt) {
		return
	}
	l.entries[entry.BookingID] = entry
}

// Sweep deletes expired entries and returns how many were removed.
func (l *Ledger) Sweep() int {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for id, e := range l.entries {
		if !l.live(e, now) {
			delete(l.entries, id)
			removed++
		}
	}
	return removed
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Ledger) live(e shared.UndoEntry, now time.Time) bool {
	return now.Sub(e.RejectedAt) < l.window
}

// Start runs Sweep every interval until Stop is called.
func (l *Ledger) Start(_ context.Context, interval time.Duration) error {
	if interval <= 0 {
		return nil
	}
	l.mu.Lock()
	if l.stop != nil {
		l.mu.Unlock()
		return nil
	}
	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	stop, done := l.stop, l.done
	l.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if n := l.Sweep(); n > 0 {
					slog.Debug("swept expired undo entries", "removed", n)
				}
			}
		}
	}()
	return nil
}

func (l *Ledger) Stop(ctx context.Context) error {
	l.mu.Lock()
	stop, done := l.stop, l.done
	l.stop, l.done = nil, nil
	l.mu.Unlock()

	if stop == nil {
		return nil
	}
	close(stop)
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
