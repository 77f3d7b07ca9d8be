package scheduler

import (
	"context"
	"sync"
	"time"

	paymentUsecases "github.com/hostmail-io/hostmail/internal/application/payment/usecases"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

// PaymentScheduler expires pending orders whose capture window lapsed.
type PaymentScheduler struct {
	expireUC *paymentUsecases.ExpirePaymentsUseCase
	logger   logger.Interface
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	interval time.Duration
}

func NewPaymentScheduler(expireUC *paymentUsecases.ExpirePaymentsUseCase, logger logger.Interface) *PaymentScheduler {
	return &PaymentScheduler{
		expireUC: expireUC,
		logger:   logger,
		stopChan: make(chan struct{}),
		interval: 5 * time.Minute,
	}
}

func (s *PaymentScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting payment scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

func (s *PaymentScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping payment scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("payment scheduler stopped")
	})
}

func (s *PaymentScheduler) runLoop(ctx context.Context) {
	s.processStaleOrders(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("payment scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.processStaleOrders(ctx)
		}
	}
}

func (s *PaymentScheduler) processStaleOrders(ctx context.Context) {
	count, err := s.expireUC.Execute(ctx)
	if err != nil {
		s.logger.Errorw("failed to expire stale orders", "error", err)
		return
	}

	if count > 0 {
		s.logger.Infow("stale orders expired", "count", count)
	}
}
