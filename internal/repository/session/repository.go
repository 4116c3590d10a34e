package session

import (
	"context"
	"time"
)

// Repository persists the cart id held by each browsing session. Get returns
// domain.ErrNotFound when the session holds no cart or the entry expired.
//
// Bind stores cartID only when the session holds no live binding and returns
// the id the session is bound to afterwards. The first writer wins, also
// across processes sharing a postgres or redis store.
type Repository interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Bind(ctx context.Context, sessionID, cartID string) (string, error)
	Ping(ctx context.Context) error
}

// DefaultTTL applies when a backend is built with a non-positive ttl.
const DefaultTTL = 24 * time.Hour

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}
