package cache

import (
	"context"
	"sync"
	"time"

	appproject "github.com/devtrack/backend/internal/application/project"
)

// InMemoryDashboardCache implements DashboardCache with a process-local
// snapshot. Suitable for single-instance deployments and tests; instances
// do not share state.
type InMemoryDashboardCache struct {
	mu        sync.RWMutex
	snapshot  *appproject.DashboardSnapshot
	expiresAt time.Time
	now       func() time.Time
}

// NewInMemoryDashboardCache creates a new in-memory dashboard cache
func NewInMemoryDashboardCache() *InMemoryDashboardCache {
	return &InMemoryDashboardCache{now: time.Now}
}

// Get returns the cached snapshot, (nil, nil) on a miss or after expiry
func (c *InMemoryDashboardCache) Get(ctx context.Context) (*appproject.DashboardSnapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snapshot == nil || c.now().After(c.expiresAt) {
		return nil, nil
	}
	return c.snapshot, nil
}

// Set stores the snapshot with the given TTL
func (c *InMemoryDashboardCache) Set(ctx context.Context, snapshot *appproject.DashboardSnapshot, ttl time.Duration) error {
	if snapshot == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = snapshot
	c.expiresAt = c.now().Add(ttl)
	return nil
}

// Invalidate discards the cached snapshot
func (c *InMemoryDashboardCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = nil
	return nil
}

// Ensure InMemoryDashboardCache implements DashboardCache
var _ appproject.DashboardCache = (*InMemoryDashboardCache)(nil)
