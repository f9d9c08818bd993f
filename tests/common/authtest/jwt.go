//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"gas-booking/internal/domain/user"
	"gas-booking/internal/pkg/clock"
	"gas-booking/internal/pkg/config"
	"gas-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.issue(t, clock.NewRealClock(), userID, role, false)
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.issue(t, clock.NewRealClock(), userID, role, true)
}

// CreateExpiredToken signs with a clock set far enough back that the token is already expired.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-h.cfg.AccessTokenDuration - time.Minute))
	return h.issue(t, past, userID, role, false)
}

func (h *JWTHelper) issue(t *testing.T, clk clock.Clock, userID uuid.UUID, role user.Role, refresh bool) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.AccessTokenDuration, h.cfg.RefreshTokenDuration, clk)
	var (
		token string
		err   error
	)
	if refresh {
		token, err = service.GenerateRefreshToken(userID, role)
	} else {
		token, err = service.GenerateAccessToken(userID, role)
	}
	require.NoError(t, err)
	return token
}
