package ratelimiter

import (
	"context"
	"fmt"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/pkg/constvars"
	"strings"
	"time"

	"go.uber.org/zap"
)

// OrderLimiter caps how many orders one customer phone may place on a
// storefront within a fixed window. Counters live in Redis and expire with
// their window.
type OrderLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

type Quota struct {
	Max    int
	Window time.Duration
}

type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

func NewOrderLimiter(redis contracts.RedisRepository, log *zap.Logger) *OrderLimiter {
	return &OrderLimiter{redis: redis, log: log}
}

// AllowOrder counts one order for phone on the business identified by slug.
// A non-positive Max disables the limit.
func (l *OrderLimiter) AllowOrder(ctx context.Context, slug, phone string, quota Quota, now time.Time) (Decision, error) {
	if quota.Max <= 0 {
		return Decision{Allowed: true}, nil
	}
	window := quota.Window
	if window < time.Second {
		window = time.Minute
	}

	customer := normalizePhone(phone)
	if customer == "" {
		return Decision{Allowed: true}, nil
	}

	windowSec := int64(window / time.Second)
	windowID := now.Unix() / windowSec
	key := fmt.Sprintf(constvars.RedisKeyOrderQuotaFormat, strings.ToLower(slug), customer, windowID)

	count, err := l.redis.IncrementWithTTL(ctx, key, window+time.Second)
	if err != nil {
		l.log.Error("OrderLimiter.AllowOrder increment failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err))
		return Decision{}, err
	}
	if count <= quota.Max {
		return Decision{Allowed: true}, nil
	}

	retryAfter := time.Duration((windowID+1)*windowSec-now.Unix()) * time.Second
	l.log.Info("OrderLimiter.AllowOrder quota exceeded",
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingRetryAfterKey, retryAfter))
	return Decision{Allowed: false, RetryAfter: retryAfter}, nil
}

// normalizePhone keeps digits and a leading plus so "+34 600 00 00 00" and
// "+34600000000" share a counter.
func normalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
