package components

import (
	"studio-booking/internal/infra/collab"
	"studio-booking/internal/infra/provider"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/jwt"
	"studio-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var ProviderModule = fx.Module("provider",
	fx.Provide(
		func(cfg config.Config) (*provider.Static, error) {
			return provider.Load(cfg.Catalog.SeedPath)
		},
		func(s *provider.Static) shared.CatalogProvider { return s },
		func(s *provider.Static) shared.PaymentProvider { return s },
		func(s *provider.Static) shared.AddOnCatalog { return s },
	),
)

var CollabModule = fx.Module("collab",
	fx.Provide(
		fx.Annotate(
			collab.NewCalendar,
			fx.As(new(shared.CalendarLinker)),
		),
		fx.Annotate(
			func(jwtService *jwt.Service, cfg config.Config, clk clock.Clock) *collab.Invite {
				return collab.NewInvite(jwtService, cfg.Share.BaseURL, cfg.Share.InviteTTL, clk)
			},
			fx.As(new(shared.InviteLinker)),
		),
	),
)
