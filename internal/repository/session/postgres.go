package session

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
	ttl  time.Duration
}

func NewPostgres(pool *pgxpool.Pool, ttl time.Duration) Repository {
	return &postgresRepo{pool: pool, ttl: ttlOrDefault(ttl)}
}

func (r *postgresRepo) Get(ctx context.Context, sessionID string) (string, error) {
	const q = `
SELECT cart_id
FROM cart_sessions
WHERE session_id = $1 AND expires_at > now()
`
	var cartID string
	if err := r.pool.QueryRow(ctx, q, sessionID).Scan(&cartID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return cartID, nil
}

// Bind only replaces an existing row once it has expired. When a live row
// wins the conflict nothing is returned and the stored id is read back.
func (r *postgresRepo) Bind(ctx context.Context, sessionID, cartID string) (string, error) {
	const q = `
INSERT INTO cart_sessions (session_id, cart_id, expires_at)
VALUES ($1, $2, now() + make_interval(secs => $3))
ON CONFLICT (session_id) DO UPDATE
SET cart_id = EXCLUDED.cart_id,
    expires_at = EXCLUDED.expires_at,
    updated_at = now()
WHERE cart_sessions.expires_at <= now()
RETURNING cart_id
`
	var bound string
	err := r.pool.QueryRow(ctx, q, sessionID, cartID, r.ttl.Seconds()).Scan(&bound)
	if err == nil {
		return bound, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}
	return r.Get(ctx, sessionID)
}

func (r *postgresRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// PurgeExpired deletes expired rows and reports how many were removed.
func PurgeExpired(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	cmd, err := pool.Exec(ctx, `DELETE FROM cart_sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
