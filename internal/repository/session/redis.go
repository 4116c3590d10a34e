package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/domain"
)

const redisKeyPrefix = "storefront:cart:"

type redisRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) Repository {
	return &redisRepo{client: client, ttl: ttlOrDefault(ttl)}
}

func (r *redisRepo) Get(ctx context.Context, sessionID string) (string, error) {
	cartID, err := r.client.Get(ctx, redisKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return cartID, nil
}

func (r *redisRepo) Bind(ctx context.Context, sessionID, cartID string) (string, error) {
	key := redisKeyPrefix + sessionID
	ok, err := r.client.SetNX(ctx, key, cartID, r.ttl).Result()
	if err != nil {
		return "", err
	}
	if ok {
		return cartID, nil
	}
	return r.Get(ctx, sessionID)
}

func (r *redisRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
