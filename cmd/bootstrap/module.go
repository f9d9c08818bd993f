package bootstrap

import (
	"gas-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	RateLimitModule,
	AuditModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
