package readstore

import (
	"context"

	"gas-booking/internal/infra"
	"gas-booking/internal/pkg/pgconv"
	"gas-booking/internal/usecase/queries"
	"gas-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	userViewColumns = `id, email, display_name, role, is_active, last_login, created_at`

	findUserViewByIDSQL = `SELECT ` + userViewColumns + ` FROM users WHERE id = $1`

	listUsersSQL = `SELECT ` + userViewColumns + ` FROM users ORDER BY email ASC`

	findUserCredentialsByEmailSQL = `
SELECT id, email, password_hash, role, is_active
FROM users
WHERE email = $1`

	findUserCredentialsByIDSQL = `
SELECT id, email, password_hash, role, is_active
FROM users
WHERE id = $1`
)

type UserReadStore struct {
	db shared.DBTX
}

func NewUserReadStore(db shared.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	v, err := scanUserView(r.db.QueryRow(ctx, findUserViewByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return v, nil
}

func (r *UserReadStore) ListAll(ctx context.Context) ([]*queries.AuthorizedUserView, error) {
	rows, err := r.db.Query(ctx, listUsersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	out := make([]*queries.AuthorizedUserView, 0)
	for rows.Next() {
		v, err := scanUserView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user view", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate users", err)
	}
	return out, nil
}

// FindCredentialsByEmail returns the password hash for login checks only.
func (r *UserReadStore) FindCredentialsByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	return r.findCredentials(ctx, findUserCredentialsByEmailSQL, email)
}

func (r *UserReadStore) FindCredentialsByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.findCredentials(ctx, findUserCredentialsByIDSQL, id)
}

func (r *UserReadStore) findCredentials(ctx context.Context, sql string, arg any) (*shared.UserSnapshot, error) {
	var s shared.UserSnapshot
	err := r.db.QueryRow(ctx, sql, arg).Scan(&s.ID, &s.Email, &s.PasswordHash, &s.Role, &s.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user credentials", err)
	}
	return &s, nil
}

func scanUserView(row pgx.Row) (*queries.AuthorizedUserView, error) {
	var (
		v         queries.AuthorizedUserView
		lastLogin pgtype.Timestamptz
	)
	if err := row.Scan(&v.ID, &v.Email, &v.DisplayName, &v.Role, &v.IsActive, &lastLogin, &v.CreatedAt); err != nil {
		return nil, err
	}
	v.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &v, nil
}
