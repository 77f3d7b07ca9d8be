package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	subscriptionUsecases "github.com/hostmail-io/hostmail/internal/application/subscription/usecases"
	"github.com/hostmail-io/hostmail/internal/shared/biztime"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

const lastResetPeriodKey = "hostmail:usage_reset:last_period"

// UsageResetScheduler zeroes the monthly contact counters once per billing
// month. The tick interval is short so a restart near the month boundary
// cannot skip a reset; a redis marker keyed by billing month keeps repeated
// ticks within the same month from resetting twice.
type UsageResetScheduler struct {
	resetUC  *subscriptionUsecases.ResetMonthlyUsageUseCase
	redis    *redis.Client
	logger   logger.Interface
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	interval time.Duration
}

func NewUsageResetScheduler(
	resetUC *subscriptionUsecases.ResetMonthlyUsageUseCase,
	redisClient *redis.Client,
	intervalMinutes int,
	logger logger.Interface,
) *UsageResetScheduler {
	if intervalMinutes <= 0 {
		intervalMinutes = 60
	}
	return &UsageResetScheduler{
		resetUC:  resetUC,
		redis:    redisClient,
		logger:   logger,
		stopChan: make(chan struct{}),
		interval: time.Duration(intervalMinutes) * time.Minute,
	}
}

func (s *UsageResetScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting usage reset scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

func (s *UsageResetScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping usage reset scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("usage reset scheduler stopped")
	})
}

func (s *UsageResetScheduler) runLoop(ctx context.Context) {
	// Check immediately on startup to catch a boundary crossed while down.
	s.maybeReset(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("usage reset scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.maybeReset(ctx)
		}
	}
}

func (s *UsageResetScheduler) maybeReset(ctx context.Context) {
	currentPeriod := currentBillingPeriod()

	lastPeriod, err := s.redis.Get(ctx, lastResetPeriodKey).Result()
	if err != nil && err != redis.Nil {
		s.logger.Errorw("failed to read last reset period", "error", err)
		return
	}

	if lastPeriod == currentPeriod {
		return
	}

	count, err := s.resetUC.Execute(ctx)
	if err != nil {
		// Leave the marker untouched so the next tick retries.
		s.logger.Errorw("monthly usage reset failed", "error", err, "period", currentPeriod)
		return
	}

	if err := s.redis.Set(ctx, lastResetPeriodKey, currentPeriod, 0).Err(); err != nil {
		// The reset itself only zeroes non-zero counters, so a retried
		// run after a marker write failure is harmless for counters that
		// have not moved since.
		s.logger.Errorw("failed to record reset period", "error", err, "period", currentPeriod)
	}

	s.logger.Infow("monthly usage reset completed", "period", currentPeriod, "subscriptions", count)
}

func currentBillingPeriod() string {
	start := biztime.StartOfMonthUTC(biztime.NowUTC()).In(biztime.Location())
	return fmt.Sprintf("%04d-%02d", start.Year(), int(start.Month()))
}
