package contracts

import (
	"context"
	"time"
)

// LockerService hands out short-lived Redis locks so only one replica runs a
// job at a time. The token returned by TryLock proves ownership.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, token string, err error)
	Unlock(ctx context.Context, key, token string) error
	Refresh(ctx context.Context, key, token string, expiration time.Duration) error
}
