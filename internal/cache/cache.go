package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the subset of cache operations services depend on.
type Store interface {
	GetJSON(ctx context.Context, key string, dest interface{}) bool
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration)
}

// Client wraps redis.Client and degrades to a permanent miss whenever redis
// is unreachable or not configured.
type Client struct {
	client *redis.Client
}

var _ Store = (*Client)(nil)

// New creates a new Redis client. An empty addr yields a disabled client.
func New(addr, password string, db int) *Client {
	if addr == "" {
		return &Client{}
	}
	return &Client{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// GetJSON decodes the cached value into dest and reports whether it was a hit.
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) || err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// SetJSON stores value with TTL, ignoring redis errors.
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil || c.client == nil || ttl <= 0 {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, payload, ttl).Err()
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
