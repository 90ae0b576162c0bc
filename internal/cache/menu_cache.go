package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hostelhub/internal/microservices/http-api/dto"

	"github.com/redis/go-redis/v9"
)

// MenuRedisCache keeps each hostel's published menu in redis. A nil cache or
// a nil client turns every call into a no-op so the API runs without redis.
type MenuRedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewMenuRedisCache connects to redisURL (redis://host:port/db) and verifies the connection.
func NewMenuRedisCache(redisURL, password string, ttl time.Duration) (*MenuRedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewMenuRedisCacheWithClient(rdb, ttl), nil
}

func NewMenuRedisCacheWithClient(client *redis.Client, ttl time.Duration) *MenuRedisCache {
	return &MenuRedisCache{client: client, ttl: ttl, logger: slog.Default()}
}

func publishedKey(hostelID string) string {
	return fmt.Sprintf("menu:published:hostel:%s", hostelID)
}

func (c *MenuRedisCache) GetPublished(ctx context.Context, hostelID string) (*dto.MessMenuResponse, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, publishedKey(hostelID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("menu cache read failed", "hostel_id", hostelID, "error", err)
		}
		return nil, false
	}

	var menu dto.MessMenuResponse
	if err := json.Unmarshal(raw, &menu); err != nil {
		c.logger.Warn("menu cache entry corrupt", "hostel_id", hostelID, "error", err)
		c.InvalidatePublished(ctx, hostelID)
		return nil, false
	}
	return &menu, true
}

func (c *MenuRedisCache) SetPublished(ctx context.Context, hostelID string, menu *dto.MessMenuResponse) {
	if c == nil || c.client == nil || menu == nil {
		return
	}
	raw, err := json.Marshal(menu)
	if err != nil {
		c.logger.Warn("menu cache encode failed", "hostel_id", hostelID, "error", err)
		return
	}
	if err := c.client.Set(ctx, publishedKey(hostelID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("menu cache write failed", "hostel_id", hostelID, "error", err)
	}
}

func (c *MenuRedisCache) InvalidatePublished(ctx context.Context, hostelID string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, publishedKey(hostelID)).Err(); err != nil {
		c.logger.Warn("menu cache invalidate failed", "hostel_id", hostelID, "error", err)
	}
}

// Healthy verifies redis connectivity.
func (c *MenuRedisCache) Healthy(ctx context.Context) bool {
	if c == nil || c.client == nil {
		return false
	}
	return c.client.Ping(ctx).Err() == nil
}

func (c *MenuRedisCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
