package bootstrap

import (
	"context"
	"log/slog"

	"gas-booking/internal/infra/audit"
	"gas-booking/internal/pkg/config"
	"gas-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var AuditModule = fx.Module("audit",
	fx.Provide(
		NewEventSink,
	),
)

func NewEventSink(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventSink, error) {
	sinks := []shared.EventSink{audit.NewLogSink(logger)}

	if cfg.AMQP.Enabled {
		publisher, err := audit.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return publisher.Close()
			},
		})
		sinks = append(sinks, publisher)
		logger.Info("audit events published to rabbitmq", "exchange", cfg.AMQP.Exchange)
	}

	return audit.NewMultiSink(sinks...), nil
}
