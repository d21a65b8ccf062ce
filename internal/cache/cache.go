package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client but fails safe: a nil client or an unreachable
// redis degrades every read to a cache miss and every write to a no-op, so
// the API keeps serving from the database when the cache is down.
type Client struct {
	rdb *redis.Client
}

// New creates a new Redis-backed cache client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{rdb: redis.NewClient(opts)}
}

// GetJSON loads key into out and reports whether it was a cache hit.
func (c *Client) GetJSON(ctx context.Context, key string, out interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors both count as a miss
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false
	}
	return true
}

// SetJSON stores v under key with a TTL, ignoring marshal and redis errors.
func (c *Client) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, payload, ttl).Err()
}

// Delete removes a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, key).Err()
}
