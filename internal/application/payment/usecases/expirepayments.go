package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/domain/payment"
	"github.com/hostmail-io/hostmail/internal/shared/biztime"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

// ExpirePaymentsUseCase sweeps pending orders whose TTL lapsed without a
// capture and marks them expired. Run by the scheduler. An expired order can
// never be captured; the buyer starts over with a new order.
type ExpirePaymentsUseCase struct {
	paymentRepo payment.Repository
	logger      logger.Interface
}

func NewExpirePaymentsUseCase(paymentRepo payment.Repository, logger logger.Interface) *ExpirePaymentsUseCase {
	return &ExpirePaymentsUseCase{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

func (uc *ExpirePaymentsUseCase) Execute(ctx context.Context) (int, error) {
	stale, err := uc.paymentRepo.FindExpiredPending(ctx, biztime.NowUTC())
	if err != nil {
		uc.logger.Errorw("failed to list stale pending payments", "error", err)
		return 0, fmt.Errorf("failed to list stale pending payments: %w", err)
	}

	count := 0
	for _, p := range stale {
		if err := p.MarkAsExpired(); err != nil {
			uc.logger.Warnw("skipping non-expirable payment", "error", err, "order_no", p.OrderNo())
			continue
		}
		if err := uc.paymentRepo.Update(ctx, p); err != nil {
			uc.logger.Errorw("failed to persist payment expiry", "error", err, "order_no", p.OrderNo())
			continue
		}
		count++
	}

	if count > 0 {
		uc.logger.Infow("stale pending payments expired", "count", count)
	}

	return count, nil
}
