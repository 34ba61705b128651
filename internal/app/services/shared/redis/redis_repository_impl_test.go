package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*miniredis.Miniredis, *redisRepository) {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return server, &redisRepository{client: client}
}

func TestRedisRepository_SetGet(t *testing.T) {
	_, repo := newTestRepository(t)
	ctx := context.Background()

	t.Run("Missing Key Returns Empty", func(t *testing.T) {
		value, err := repo.Get(ctx, "menu:none")
		require.NoError(t, err)
		assert.Equal(t, "", value)

		var dst map[string]string
		found, err := repo.GetInto(ctx, "menu:none", &dst)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Value Is Stored As JSON", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "menu:sol", map[string]string{"name": "Sol"}, time.Minute))

		raw, err := repo.Get(ctx, "menu:sol")
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Sol"}`, raw)

		var dst map[string]string
		found, err := repo.GetInto(ctx, "menu:sol", &dst)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Sol", dst["name"])
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "menu:sol"))
		value, err := repo.Get(ctx, "menu:sol")
		require.NoError(t, err)
		assert.Empty(t, value)
	})
}

func TestRedisRepository_TrySetNX(t *testing.T) {
	server, repo := newTestRepository(t)
	ctx := context.Background()

	acquired, err := repo.TrySetNX(ctx, "payment_event:evt_1", "1", time.Hour)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = repo.TrySetNX(ctx, "payment_event:evt_1", "1", time.Hour)
	require.NoError(t, err)
	assert.False(t, acquired)

	server.FastForward(2 * time.Hour)

	acquired, err = repo.TrySetNX(ctx, "payment_event:evt_1", "1", time.Hour)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestRedisRepository_IncrementWithTTL(t *testing.T) {
	server, repo := newTestRepository(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		count, err := repo.IncrementWithTTL(ctx, "ORDERS:sol:600000000", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}
	assert.Equal(t, time.Minute, server.TTL("ORDERS:sol:600000000"))

	server.FastForward(time.Minute + time.Second)

	count, err := repo.IncrementWithTTL(ctx, "ORDERS:sol:600000000", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
