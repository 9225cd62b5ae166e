// Package cache is a best-effort JSON read cache on Redis. A nil *Cache is
// valid and disables caching, so callers never branch on configuration.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const opTimeout = 500 * time.Millisecond

type Cache struct {
	client *redis.Client
}

func New(addr, password string) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})}
}

// Get unmarshals the cached value for key into dest. The bool reports a hit.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	data, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return c.client.Del(ctx, key).Err()
}

// Key builds a deterministic cache key from a prefix and a query string,
// hashing the variable part to keep keys short.
func Key(prefix, query string) string {
	sum := md5.Sum([]byte(query))
	return prefix + ":" + hex.EncodeToString(sum[:])
}
