package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/logging"
)

// Open builds the backend named by cfg.SessionStore. The returned close func
// releases any connection the backend holds and is never nil.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (Repository, func(), error) {
	logger = logging.OrNop(logger)
	switch cfg.SessionStore {
	case config.SessionStoreMemory, "":
		logger.Info("using in-memory session store", zap.Duration("ttl", cfg.SessionTTL))
		return NewMemory(cfg.SessionTTL), func() {}, nil
	case config.SessionStorePostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to db: %w", err)
		}
		logger.Info("using postgres session store", zap.Duration("ttl", cfg.SessionTTL))
		return NewPostgres(pool, cfg.SessionTTL), pool.Close, nil
	case config.SessionStoreRedis:
		client, err := db.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("using redis session store", zap.Duration("ttl", cfg.SessionTTL))
		return NewRedis(client, cfg.SessionTTL), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}
