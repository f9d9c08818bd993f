package repository

import (
	"context"
	"time"

	"gas-booking/internal/domain/user"
	"gas-booking/internal/infra"
	"gas-booking/internal/pkg/pgconv"
	"gas-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	insertUserSQL = `
INSERT INTO users (id, email, password_hash, display_name, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	updateUserLastLoginSQL = `
UPDATE users SET last_login = $2, updated_at = $2
WHERE id = $1`

	lockUserForBookingSQL = `SELECT id FROM users WHERE id = $1 FOR UPDATE`
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx shared.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, insertUserSQL,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.DisplayName().Value(),
		u.Role().String(),
		u.IsActive(),
		u.CreatedAt(),
		u.UpdatedAt(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx shared.DBTX, userID uuid.UUID, at time.Time) error {
	_, err := tx.Exec(ctx, updateUserLastLoginSQL, userID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) LockForBooking(ctx context.Context, tx shared.DBTX, userID uuid.UUID) error {
	var id uuid.UUID
	if err := tx.QueryRow(ctx, lockUserForBookingSQL, userID).Scan(&id); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock user", err)
	}
	return nil
}
