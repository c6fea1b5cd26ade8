package tokens

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/healthsync/internal/logging"
	"github.com/dmitrijs2005/healthsync/internal/server/models"
)

// ErrCacheMiss is returned by a Cache that holds no entry for a token.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a best-effort store for token bindings.
type Cache interface {
	Get(ctx context.Context, token string) (*models.TokenBinding, error)
	Set(ctx context.Context, binding models.TokenBinding, ttl time.Duration) error
}

// CachedRegistry is a read-through cache in front of a Registry. Cache
// failures are logged and never fail the call.
type CachedRegistry struct {
	next   Registry
	cache  Cache
	logger logging.Logger
	now    func() time.Time
}

func NewCachedRegistry(next Registry, cache Cache, logger logging.Logger) *CachedRegistry {
	return &CachedRegistry{
		next:   next,
		cache:  cache,
		logger: logger.With("module", "token_cache"),
		now:    time.Now,
	}
}

func (r *CachedRegistry) Record(ctx context.Context, b models.TokenBinding) error {
	if err := r.next.Record(ctx, b); err != nil {
		return err
	}
	r.store(ctx, b)
	return nil
}

func (r *CachedRegistry) Lookup(ctx context.Context, token string) (*models.TokenBinding, error) {
	b, err := r.cache.Get(ctx, token)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		r.logger.Warn(ctx, "cache get failed", "error", err)
	}

	b, err = r.next.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	r.store(ctx, *b)
	return b, nil
}

// store caches b until the token expires. Already-expired bindings are
// skipped.
func (r *CachedRegistry) store(ctx context.Context, b models.TokenBinding) {
	ttl := b.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return
	}
	if err := r.cache.Set(ctx, b, ttl); err != nil {
		r.logger.Warn(ctx, "cache set failed", "error", err)
	}
}
