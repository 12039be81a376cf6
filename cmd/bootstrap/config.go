package bootstrap

import (
	"studio-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies the already loaded config; backends are chosen from it
// before the graph is built.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
