// Package cache stores finished solutions in Redis keyed by maze digest.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

const defaultPrefix = "pathfinder:solution:"

// RedisResultCache keeps bson-encoded solutions with a fixed TTL.
type RedisResultCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ i.ResultCache = &RedisResultCache{}

// NewRedisResultCache creates a cache on client. A non-positive ttlSeconds
// keeps entries until Redis evicts them.
func NewRedisResultCache(client *redis.Client, ttlSeconds int) *RedisResultCache {
	return &RedisResultCache{
		client: client,
		prefix: defaultPrefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

func (c *RedisResultCache) key(digest string) string {
	return c.prefix + digest
}

// Get returns the solution cached under digest.
func (c *RedisResultCache) Get(ctx context.Context, digest string) (*dmn.Solution, bool, error) {
	raw, err := c.client.Get(ctx, c.key(digest)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var sol dmn.Solution
	if err := bson.Unmarshal(raw, &sol); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return &sol, true, nil
}

// Set stores solution under its digest.
func (c *RedisResultCache) Set(ctx context.Context, solution *dmn.Solution) error {
	raw, err := bson.Marshal(solution)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, c.key(solution.Digest), raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
