package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/writehub/auth/internal/common"
)

// keyPrefix namespaces session keys so the database can be shared with
// other keyspaces.
const keyPrefix = "session:"

// RedisRepository implements Repository on a Redis client. Each session
// is a single key, so every operation is atomic at the key level and no
// multi-key transaction is needed.
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository constructs a repository issuing sessions with the
// given fixed TTL.
func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{client: client, ttl: ttl}
}

// Create writes token -> userID with the configured TTL. Tokens are
// UUIDv4, 122 bits of randomness; collision probability is negligible
// and no retry loop is attempted.
func (r *RedisRepository) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()

	if err := r.client.Set(ctx, keyPrefix+token, userID, r.ttl).Err(); err != nil {
		return "", fmt.Errorf("redis error: %w", err)
	}

	return token, nil
}

// Resolve looks up the user id for token without touching its TTL.
func (r *RedisRepository) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrorSessionNotFound
		}
		return "", fmt.Errorf("redis error: %w", err)
	}

	return userID, nil
}

// Revoke deletes the session key.
func (r *RedisRepository) Revoke(ctx context.Context, token string) error {
	removed, err := r.client.Del(ctx, keyPrefix+token).Result()
	if err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	if removed == 0 {
		return common.ErrorSessionNotFound
	}

	return nil
}
