package ratelimiter

import (
	"context"
	"pidelocal-service/internal/app/services/shared/redis"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrderLimiter(t *testing.T) {
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	defer client.Close()

	limiter := NewOrderLimiter(redis.NewRedisRepository(client), zap.NewNop())
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 12, 0, 10, 0, time.UTC)
	quota := Quota{Max: 2, Window: time.Minute}

	for i := 0; i < 2; i++ {
		decision, err := limiter.AllowOrder(ctx, "sol", "+34 600 000 000", quota, now)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	}

	t.Run("Same Phone Different Formatting", func(t *testing.T) {
		decision, err := limiter.AllowOrder(ctx, "sol", "+34600000000", quota, now)
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, 50*time.Second, decision.RetryAfter)
	})

	t.Run("Other Business Has Its Own Counter", func(t *testing.T) {
		decision, err := limiter.AllowOrder(ctx, "luna", "+34600000000", quota, now)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	})

	t.Run("Next Window", func(t *testing.T) {
		decision, err := limiter.AllowOrder(ctx, "sol", "+34600000000", quota, now.Add(time.Minute))
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	})

	t.Run("Zero Quota Disables Limiter", func(t *testing.T) {
		decision, err := limiter.AllowOrder(ctx, "sol", "+34600000000", Quota{}, now)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	})
}
