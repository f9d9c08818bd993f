package components

import (
	"context"

	"gas-booking/internal/domain/booking"
	"gas-booking/internal/infra/undo"
	"gas-booking/internal/pkg/clock"
	"gas-booking/internal/pkg/config"
	"gas-booking/internal/usecase/commands"
	"gas-booking/internal/usecase/queries"
	"gas-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewQuotaPolicy,
	NewRateIntervals,
	NewBookingSettings,
	fx.Annotate(
		NewUndoLedger,
		fx.As(new(shared.UndoLedger)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewPaymentCommands,
		commands.NewNoticeCommands,
		commands.NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
		queries.NewNoticeQueries,
		queries.NewNotificationQueries,
		queries.NewDashboardQueries,
	),
)

func NewQuotaPolicy(cfg config.Config) booking.QuotaPolicy {
	return booking.NewQuotaPolicy(cfg.Booking.AnnualQuota, cfg.Booking.Location())
}

func NewRateIntervals(cfg config.Config) commands.RateIntervals {
	return commands.RateIntervals{
		BookCylinder:    cfg.Booking.BookingRateInterval,
		RecordPayment:   cfg.Booking.PaymentRateInterval,
		BookingApproval: cfg.Booking.ApprovalRateInterval,
	}
}

func NewBookingSettings(cfg config.Config, policy booking.QuotaPolicy, rates commands.RateIntervals) commands.BookingSettings {
	return commands.BookingSettings{
		Quota:        policy,
		CancelWindow: cfg.Booking.CancelWindow,
		Rates:        rates,
	}
}

// NewUndoLedger ties the expiry sweep to the application lifecycle.
func NewUndoLedger(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) *undo.Ledger {
	ledger := undo.NewLedger(clk, cfg.Booking.UndoWindow)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return ledger.Start(ctx, cfg.Booking.UndoSweepInterval)
		},
		OnStop: func(ctx context.Context) error {
			return ledger.Stop(ctx)
		},
	})
	return ledger
}
