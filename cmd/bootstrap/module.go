package bootstrap

import (
	"studio-booking/cmd/bootstrap/components"
	"studio-booking/internal/pkg/config"

	"go.uber.org/fx"
)

const (
	backendRedis    = "redis"
	backendPostgres = "postgres"
)

func NewModule(cfg config.Config) fx.Option {
	opts := []fx.Option{
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
		components.ProviderModule,
		components.CollabModule,
		components.UseCaseModule,
		components.HandlerModule,
	}

	if cfg.Session.Backend == backendRedis {
		opts = append(opts, RedisModule, components.RedisSessionModule)
	} else {
		opts = append(opts, components.MemorySessionModule)
	}

	if cfg.Submission.Backend == backendPostgres {
		opts = append(opts, DBModule, components.PostgresSubmissionModule)
	} else {
		opts = append(opts, components.SimulatedSubmissionModule)
	}

	return fx.Options(opts...)
}
