package tokens

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/healthsync/internal/server/models"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "healthsync:token:"

// RedisCache implements Cache on Redis. Keys are SHA-256 digests of the
// token so raw tokens never appear in Redis.
type RedisCache struct {
	client redis.Cmdable
}

func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

type cachedBinding struct {
	IdentityID string          `json:"identity_id"`
	Email      string          `json:"email"`
	Response   json.RawMessage `json:"response"`
	IssuedAt   time.Time       `json:"issued_at"`
	ExpiresAt  time.Time       `json:"expires_at"`
}

func (c *RedisCache) Get(ctx context.Context, token string) (*models.TokenBinding, error) {
	raw, err := c.client.Get(ctx, redisKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var cb cachedBinding
	if err := json.Unmarshal(raw, &cb); err != nil {
		return nil, fmt.Errorf("decode cached binding: %w", err)
	}
	return &models.TokenBinding{
		Token:      token,
		IdentityID: cb.IdentityID,
		Email:      cb.Email,
		Response:   cb.Response,
		IssuedAt:   cb.IssuedAt,
		ExpiresAt:  cb.ExpiresAt,
	}, nil
}

func (c *RedisCache) Set(ctx context.Context, b models.TokenBinding, ttl time.Duration) error {
	raw, err := json.Marshal(cachedBinding{
		IdentityID: b.IdentityID,
		Email:      b.Email,
		Response:   b.Response,
		IssuedAt:   b.IssuedAt,
		ExpiresAt:  b.ExpiresAt,
	})
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, redisKey(b.Token), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func redisKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return redisKeyPrefix + hex.EncodeToString(sum[:])
}
