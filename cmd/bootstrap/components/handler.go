package components

import (
	"gas-booking/internal/handler"
	"gas-booking/internal/handler/api"
	"gas-booking/internal/handler/middleware"
	"gas-booking/internal/pkg/config"
	"gas-booking/internal/usecase/commands"
	"gas-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewNoticeHandler,
		api.NewNotificationHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config, lifetimes api.TokenLifetimes) *api.AuthHandler {
	return api.NewAuthHandler(cmds, q, cfg.Cookie, lifetimes)
}

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Booking      *api.BookingHandler
	Payment      *api.PaymentHandler
	Notice       *api.NoticeHandler
	Notification *api.NotificationHandler
	Admin        *api.AdminHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:         p.Auth,
		Booking:      p.Booking,
		Payment:      p.Payment,
		Notice:       p.Notice,
		Notification: p.Notification,
		Admin:        p.Admin,
	}
}
