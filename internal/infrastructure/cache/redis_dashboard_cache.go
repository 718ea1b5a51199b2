package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appproject "github.com/devtrack/backend/internal/application/project"
	"github.com/devtrack/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const dashboardCacheKey = "dashboard:snapshot"

// RedisDashboardCache implements DashboardCache using Redis
type RedisDashboardCache struct {
	client     *redis.Client
	ownsClient bool // true if we created the client and should close it
	logger     *zap.Logger
}

// RedisDashboardCacheOption is a functional option for configuring the cache
type RedisDashboardCacheOption func(*RedisDashboardCache)

// WithCacheLogger sets the logger for the cache
func WithCacheLogger(logger *zap.Logger) RedisDashboardCacheOption {
	return func(c *RedisDashboardCache) {
		c.logger = logger
	}
}

// NewRedisDashboardCache creates a new Redis-based dashboard snapshot cache
func NewRedisDashboardCache(cfg config.RedisConfig, opts ...RedisDashboardCacheOption) (*RedisDashboardCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := &RedisDashboardCache{
		client:     client,
		ownsClient: true,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache, nil
}

// NewRedisDashboardCacheWithClient creates a cache with an existing Redis client.
// The caller retains ownership of the client and is responsible for closing it.
func NewRedisDashboardCacheWithClient(client *redis.Client, opts ...RedisDashboardCacheOption) *RedisDashboardCache {
	cache := &RedisDashboardCache{
		client:     client,
		ownsClient: false,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Get retrieves the cached dashboard snapshot, (nil, nil) on a miss
func (c *RedisDashboardCache) Get(ctx context.Context) (*appproject.DashboardSnapshot, error) {
	data, err := c.client.Get(ctx, dashboardCacheKey).Bytes()
	if err == redis.Nil {
		c.logger.Debug("Cache miss for dashboard snapshot")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot from cache: %w", err)
	}

	var snapshot appproject.DashboardSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		// Drop the corrupted entry so the next read rebuilds it
		_ = c.client.Del(ctx, dashboardCacheKey)
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	c.logger.Debug("Cache hit for dashboard snapshot")
	return &snapshot, nil
}

// Set stores the dashboard snapshot with the given TTL
func (c *RedisDashboardCache) Set(ctx context.Context, snapshot *appproject.DashboardSnapshot, ttl time.Duration) error {
	if snapshot == nil {
		return nil
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := c.client.Set(ctx, dashboardCacheKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot in cache: %w", err)
	}

	c.logger.Debug("Cached dashboard snapshot", zap.Duration("ttl", ttl))
	return nil
}

// Invalidate removes the cached snapshot
func (c *RedisDashboardCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, dashboardCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot from cache: %w", err)
	}
	return nil
}

// Close releases any resources held by the cache
func (c *RedisDashboardCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}

// Ensure RedisDashboardCache implements DashboardCache
var _ appproject.DashboardCache = (*RedisDashboardCache)(nil)
