package bootstrap

import (
	"gas-booking/internal/handler/api"
	"gas-booking/internal/handler/middleware"
	"gas-booking/internal/pkg/clock"
	"gas-booking/internal/pkg/config"
	"gas-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		NewTokenLifetimes,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	if cfg.JWT.AccessTokenDuration <= 0 || cfg.JWT.RefreshTokenDuration <= 0 {
		panic("JWT token durations must be positive")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration, clk)
}

func NewTokenLifetimes(s *jwt.Service) api.TokenLifetimes {
	return api.TokenLifetimes{
		Access:  s.AccessTokenDuration(),
		Refresh: s.RefreshTokenDuration(),
	}
}
