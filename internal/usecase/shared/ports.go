package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type RateLimiter interface {
	// TryProceed records the call and returns true when at least minInterval
	// has passed since the last permitted call for key.
	TryProceed(ctx context.Context, key string, minInterval time.Duration) (bool, error)
}

type UndoEntry struct {
	BookingID  uuid.UUID
	RejectedBy uuid.UUID
	RejectedAt time.Time
}

type UndoLedger interface {
	Register(bookingID, adminID uuid.UUID, at time.Time)
	// TryConsume removes and returns a live entry registered by adminID.
	TryConsume(bookingID, adminID uuid.UUID) (UndoEntry, bool)
	Restore(entry UndoEntry)
	Sweep() int
	Len() int
}

type Event struct {
	Name       string         `json:"name"`
	OccurredAt time.Time      `json:"occurred_at"`
	Params     map[string]any `json:"params"`
}

type EventSink interface {
	Emit(ctx context.Context, event Event) error
}
