// Package cache holds the redis-backed verification cache consulted by
// the auth middleware so hot tokens skip a signature check per request.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	tokenCachePrefix = "auth:token:"
	tokenCacheTTL    = 5 * time.Minute
)

type TokenCache struct {
	client *redis.Client
}

func NewTokenCache(client *redis.Client) *TokenCache {
	return &TokenCache{client: client}
}

// cacheKey hashes the raw token so credentials never appear in redis.
func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return tokenCachePrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached user id for a previously verified token.
// A miss (or a corrupted entry) is not an error.
func (c *TokenCache) Get(ctx context.Context, token string) (uuid.UUID, bool) {
	val, err := c.client.Get(ctx, cacheKey(token)).Result()
	if err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Set caches a verified token. The TTL never exceeds the remaining
// credential lifetime, so an expired token can never be served from
// cache.
func (c *TokenCache) Set(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	if ttl > tokenCacheTTL {
		ttl = tokenCacheTTL
	}
	c.client.Set(ctx, cacheKey(token), userID.String(), ttl)
}
