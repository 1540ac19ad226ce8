package cache

import (
	"context"
	"os"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisResultCache(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	c := NewRedisResultCache(client, 60)
	c.prefix = "test:solution:" + uuid.NewString() + ":"

	sol := dmn.NewSolution(uuid.New(), "#S.E#")
	sol.Status = dmn.StatusSolved
	sol.Cost = 2
	sol.Maze = ""
	sol.CreatedAt = sol.CreatedAt.Truncate(time.Millisecond)
	sol.UpdatedAt = sol.CreatedAt
	t.Cleanup(func() { client.Del(ctx, c.key(sol.Digest)) })

	_, ok, err := c.Get(ctx, sol.Digest)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, sol))

	got, ok, err := c.Get(ctx, sol.Digest)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sol.ID, got.ID)
	assert.Equal(t, sol.Cost, got.Cost)
	assert.True(t, sol.CreatedAt.Equal(got.CreatedAt))
}
