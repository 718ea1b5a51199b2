package cache

import (
	appproject "github.com/devtrack/backend/internal/application/project"
	"github.com/devtrack/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// DashboardCacheFactory creates dashboard caches based on configuration
type DashboardCacheFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// DashboardCacheFactoryOption is a functional option for configuring the factory
type DashboardCacheFactoryOption func(*DashboardCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) DashboardCacheFactoryOption {
	return func(f *DashboardCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory cache
// when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) DashboardCacheFactoryOption {
	return func(f *DashboardCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewDashboardCacheFactory creates a new factory
func NewDashboardCacheFactory(cfg config.RedisConfig, opts ...DashboardCacheFactoryOption) *DashboardCacheFactory {
	f := &DashboardCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateCache creates a dashboard cache, preferring Redis. When Redis is
// unreachable and fallback is allowed, an in-memory cache is returned so a
// single instance still avoids re-aggregating on every dashboard load.
func (f *DashboardCacheFactory) CreateCache() (appproject.DashboardCache, error) {
	redisCache, err := NewRedisDashboardCache(f.redisConfig, WithCacheLogger(f.logger))
	if err == nil {
		f.logger.Info("using Redis dashboard cache")
		return redisCache, nil
	}

	if !f.allowInMemoryFallback {
		return nil, err
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory dashboard cache",
		zap.Error(err),
	)
	return NewInMemoryDashboardCache(), nil
}
