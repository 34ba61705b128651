package orders

import (
	"context"
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultExpiryLockTTL = 2 * time.Minute

// ExpiryWorker periodically cancels card orders whose checkout was never
// completed. Only the instance holding the leader lock does the work.
type ExpiryWorker struct {
	log          *zap.Logger
	cfg          *config.InternalConfig
	locker       contracts.LockerService
	orderUsecase contracts.OrderUsecase
	lockTTL      time.Duration
	cron         *cron.Cron
	runCtx       context.Context
	cancel       context.CancelFunc
}

func NewExpiryWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, orderUsecase contracts.OrderUsecase) *ExpiryWorker {
	lockTTL := cfg.App.OrderExpiryLockTTL
	if lockTTL <= 0 {
		lockTTL = defaultExpiryLockTTL
	}
	return &ExpiryWorker{
		log:          log,
		cfg:          cfg,
		locker:       lockerSvc,
		orderUsecase: orderUsecase,
		lockTTL:      lockTTL,
	}
}

func (w *ExpiryWorker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.OrderExpiryCronSpec
	_, err := c.AddFunc(spec, func() { w.RunOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("orders.expiryWorker: invalid cron spec, falling back to @every 1m",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@every 1m", func() { w.RunOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for the running job to return.
func (w *ExpiryWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		stopped := w.cron.Stop()
		<-stopped.Done()
	}
}

func (w *ExpiryWorker) RunOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyOrderExpiryLeader, w.lockTTL)
	if err != nil {
		w.log.Warn("orders.expiryWorker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Debug("orders.expiryWorker: leader lock held by another instance")
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.Background(), constvars.RedisKeyOrderExpiryLeader, token); err != nil {
			w.log.Warn("orders.expiryWorker: failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(w.lockTTL / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, constvars.RedisKeyOrderExpiryLeader, token, w.lockTTL); err != nil {
					w.log.Warn("orders.expiryWorker: failed to refresh leader lock", zap.Error(err))
				}
			}
		}
	}()

	expired, err := w.orderUsecase.ExpireUnpaidOrders(ctx)
	if err != nil {
		w.log.Warn("orders.expiryWorker: expiring unpaid orders failed",
			zap.Int(constvars.LoggingExpiredCountKey, expired),
			zap.Error(err),
		)
		return
	}
	w.log.Debug("orders.expiryWorker: run finished", zap.Int(constvars.LoggingExpiredCountKey, expired))
}
