package scheduler

import (
	"context"
	"sync"
	"time"

	subscriptionUsecases "github.com/hostmail-io/hostmail/internal/application/subscription/usecases"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

// SubscriptionScheduler periodically marks lapsed paid subscriptions as
// expired. The guarded admission statements already refuse lapsed
// subscriptions in real time; this sweep keeps the stored status honest for
// listings and reporting.
type SubscriptionScheduler struct {
	expireUC *subscriptionUsecases.ExpireSubscriptionsUseCase
	logger   logger.Interface
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	interval time.Duration
}

func NewSubscriptionScheduler(
	expireUC *subscriptionUsecases.ExpireSubscriptionsUseCase,
	intervalHours int,
	logger logger.Interface,
) *SubscriptionScheduler {
	if intervalHours <= 0 {
		intervalHours = 24
	}
	return &SubscriptionScheduler{
		expireUC: expireUC,
		logger:   logger,
		stopChan: make(chan struct{}),
		interval: time.Duration(intervalHours) * time.Hour,
	}
}

func (s *SubscriptionScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting subscription scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

func (s *SubscriptionScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping subscription scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("subscription scheduler stopped")
	})
}

func (s *SubscriptionScheduler) runLoop(ctx context.Context) {
	// Run immediately on startup to clear anything that lapsed while down.
	s.processExpired(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("subscription scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.processExpired(ctx)
		}
	}
}

func (s *SubscriptionScheduler) processExpired(ctx context.Context) {
	startTime := time.Now()

	count, err := s.expireUC.Execute(ctx)
	if err != nil {
		s.logger.Errorw("failed to process expired subscriptions",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		s.logger.Infow("expired subscriptions processed",
			"count", count,
			"duration", time.Since(startTime),
		)
	}
}
