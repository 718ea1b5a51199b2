package cache

import (
	"context"
	"testing"
	"time"

	appproject "github.com/devtrack/backend/internal/application/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryDashboardCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss before any set", func(t *testing.T) {
		c := NewInMemoryDashboardCache()
		snapshot, err := c.Get(ctx)
		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("set then get", func(t *testing.T) {
		c := NewInMemoryDashboardCache()
		stored := &appproject.DashboardSnapshot{TotalProjects: 4}
		require.NoError(t, c.Set(ctx, stored, time.Minute))

		snapshot, err := c.Get(ctx)
		require.NoError(t, err)
		require.NotNil(t, snapshot)
		assert.Equal(t, 4, snapshot.TotalProjects)
	})

	t.Run("expired snapshot is a miss", func(t *testing.T) {
		c := NewInMemoryDashboardCache()
		current := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		c.now = func() time.Time { return current }

		require.NoError(t, c.Set(ctx, &appproject.DashboardSnapshot{TotalProjects: 1}, time.Minute))

		current = current.Add(2 * time.Minute)
		snapshot, err := c.Get(ctx)
		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("invalidate clears the snapshot", func(t *testing.T) {
		c := NewInMemoryDashboardCache()
		require.NoError(t, c.Set(ctx, &appproject.DashboardSnapshot{TotalProjects: 1}, time.Minute))
		require.NoError(t, c.Invalidate(ctx))

		snapshot, err := c.Get(ctx)
		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("nil snapshot is ignored", func(t *testing.T) {
		c := NewInMemoryDashboardCache()
		require.NoError(t, c.Set(ctx, nil, time.Minute))

		snapshot, err := c.Get(ctx)
		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})
}
