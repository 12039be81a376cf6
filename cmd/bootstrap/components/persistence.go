package components

import (
	"context"
	"log/slog"
	"time"

	"studio-booking/internal/infra/session"
	"studio-booking/internal/infra/submission"
	"studio-booking/internal/infra/uow"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const sweepInterval = time.Minute

var MemorySessionModule = fx.Module("persistence/session/memory",
	fx.Provide(
		func(clk clock.Clock, cfg config.Config) *session.MemoryStore {
			return session.NewMemoryStore(clk, cfg.Session.TTL)
		},
		func(s *session.MemoryStore) shared.SessionStore {
			return s
		},
	),
	fx.Invoke(startSessionSweeper),
)

var RedisSessionModule = fx.Module("persistence/session/redis",
	fx.Provide(
		fx.Annotate(
			func(client *redis.Client, cfg config.Config, logger *slog.Logger) *session.RedisStore {
				return session.NewRedisStore(client, cfg.Session.TTL, logger)
			},
			fx.As(new(shared.SessionStore)),
		),
	),
)

var SimulatedSubmissionModule = fx.Module("persistence/submission/simulated",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config, clk clock.Clock, logger *slog.Logger) *submission.Simulated {
				return submission.NewSimulated(cfg.Submission.Latency, clk, logger)
			},
			fx.As(new(shared.BookingSubmitter)),
		),
	),
)

var PostgresSubmissionModule = fx.Module("persistence/submission/postgres",
	fx.Provide(
		fx.Annotate(
			uow.NewRunner,
			fx.As(new(submission.TxRunner)),
		),
		submission.NewBookingQueries,
		fx.Annotate(
			submission.NewPostgres,
			fx.As(new(shared.BookingSubmitter)),
		),
	),
)

// Expired sessions are already invisible to Get; the sweeper only frees memory.
func startSessionSweeper(lc fx.Lifecycle, store *session.MemoryStore, logger *slog.Logger) {
	done := make(chan struct{})
	stopped := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(stopped)
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						if n := store.Sweep(); n > 0 {
							logger.Debug("expired booking sessions swept", "count", n)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			select {
			case <-stopped:
			case <-ctx.Done():
			}
			return nil
		},
	})
}
