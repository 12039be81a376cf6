package components

import (
	"studio-booking/internal/handler"
	"studio-booking/internal/handler/api"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWizardHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewConfirmRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
