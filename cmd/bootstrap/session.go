package bootstrap

import (
	"context"
	"log/slog"

	"booking-assistant/internal/infra/sessionstore"
	"booking-assistant/internal/pkg/config"
	"booking-assistant/internal/usecase"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionStore,
	),
)

// NewSessionStore picks Redis when an address is configured, otherwise the
// in-process store.
func NewSessionStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) usecase.SessionStore {
	if cfg.Redis.Addr == "" {
		logger.Info("using in-memory session store")
		return sessionstore.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("using redis session store", "addr", cfg.Redis.Addr)
	return sessionstore.NewRedisStore(client, cfg.Session.TTL)
}
