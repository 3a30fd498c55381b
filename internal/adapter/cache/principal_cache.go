package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"estate-service/internal/domain/principal"
)

// PrincipalCache defines the caching interface for resolved principals.
// Authentication resolves a principal once per request; caching the lookup
// keeps token verification from costing a database round trip every time.
type PrincipalCache interface {
	// Get retrieves a principal from cache by ID. Returns nil on cache miss.
	Get(ctx context.Context, id string) (*principal.Principal, error)

	// Set stores a principal in cache with the configured TTL.
	Set(ctx context.Context, p *principal.Principal) error

	// Delete removes a principal from cache by ID. Called whenever the
	// underlying account changes or is removed.
	Delete(ctx context.Context, id string) error
}

// RedisPrincipalCache implements PrincipalCache using Redis.
type RedisPrincipalCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisPrincipalCache creates a new Redis-backed principal cache.
func NewRedisPrincipalCache(client *redis.Client, ttl time.Duration, log *zap.Logger) PrincipalCache {
	return &RedisPrincipalCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *RedisPrincipalCache) cacheKey(id string) string {
	return fmt.Sprintf("principal:%s", id)
}

// Get retrieves a principal from Redis cache.
func (c *RedisPrincipalCache) Get(ctx context.Context, id string) (*principal.Principal, error) {
	key := c.cacheKey(id)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		// Cache miss - not an error
		c.log.Debug("principal cache miss", zap.String("id", id))
		return nil, nil
	}
	if err != nil {
		c.log.Error("failed to get principal from cache", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	var p principal.Principal
	if err := json.Unmarshal(data, &p); err != nil {
		c.log.Error("failed to unmarshal cached principal", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	c.log.Debug("principal cache hit", zap.String("id", id))
	return &p, nil
}

// Set stores a principal in Redis cache with TTL.
func (c *RedisPrincipalCache) Set(ctx context.Context, p *principal.Principal) error {
	if p == nil {
		return fmt.Errorf("cannot cache nil principal")
	}

	data, err := json.Marshal(p)
	if err != nil {
		c.log.Error("failed to marshal principal for cache", zap.String("id", p.ID), zap.Error(err))
		return err
	}

	if err := c.client.Set(ctx, c.cacheKey(p.ID), data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set principal cache", zap.String("id", p.ID), zap.Error(err))
		return err
	}

	c.log.Debug("cached principal", zap.String("id", p.ID), zap.Duration("ttl", c.ttl))
	return nil
}

// Delete removes a principal from Redis cache.
func (c *RedisPrincipalCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, c.cacheKey(id)).Err(); err != nil {
		c.log.Error("failed to delete principal from cache", zap.String("id", id), zap.Error(err))
		return err
	}

	c.log.Debug("deleted principal from cache", zap.String("id", id))
	return nil
}
