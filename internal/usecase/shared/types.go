package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads
type BookingSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Quantity  int
	Status    string
	CreatedAt time.Time
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}
