package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "auth:session:"

// SessionRepository stores issued login sessions in Redis, keyed by
// the token's JTI. A token whose session was deleted (logout) is no
// longer accepted even before its JWT expiry.
type SessionRepository struct {
	rdb *redis.Client
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

// Save registers a session with the given time-to-live.
func (r *SessionRepository) Save(ctx context.Context, jti string, ttl time.Duration) error {
	return r.rdb.Set(ctx, sessionKeyPrefix+jti, "1", ttl).Err()
}

// Exists reports whether the session is still registered.
func (r *SessionRepository) Exists(ctx context.Context, jti string) (bool, error) {
	_, err := r.rdb.Get(ctx, sessionKeyPrefix+jti).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Delete removes a session, invalidating its token.
func (r *SessionRepository) Delete(ctx context.Context, jti string) error {
	return r.rdb.Del(ctx, sessionKeyPrefix+jti).Err()
}
