package database

import (
	"context"
	"fmt"
	"log"
	"pidelocal-service/internal/app/config"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects the client shared by menu caching, admin sessions,
// order limits, webhook idempotency and the expiry worker lock.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	dialTimeout := time.Duration(driverConfig.Redis.DialTimeoutInSeconds) * time.Second
	rdb := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password:    driverConfig.Redis.Password,
		DB:          driverConfig.Redis.DB,
		PoolSize:    driverConfig.Redis.PoolSize,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout+time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	log.Println("Successfully connected to redis")

	return rdb
}
