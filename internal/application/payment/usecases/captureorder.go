package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/payment/dto"
	"github.com/hostmail-io/hostmail/internal/application/payment/paymentgateway"
	subusecases "github.com/hostmail-io/hostmail/internal/application/subscription/usecases"
	"github.com/hostmail-io/hostmail/internal/domain/payment"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type CaptureOrderCommand struct {
	AccountID uint
	OrderNo   string
}

// CaptureOrderUseCase settles an approved order with the gateway and, only
// on confirmed completion, applies the paid plan. This is the single point
// where payment outcomes reach the subscription.
type CaptureOrderUseCase struct {
	paymentRepo payment.Repository
	gateway     paymentgateway.Gateway
	applyPlan   *subusecases.ApplyPlanUseCase
	logger      logger.Interface
}

func NewCaptureOrderUseCase(
	paymentRepo payment.Repository,
	gateway paymentgateway.Gateway,
	applyPlan *subusecases.ApplyPlanUseCase,
	logger logger.Interface,
) *CaptureOrderUseCase {
	return &CaptureOrderUseCase{
		paymentRepo: paymentRepo,
		gateway:     gateway,
		applyPlan:   applyPlan,
		logger:      logger,
	}
}

func (uc *CaptureOrderUseCase) Execute(ctx context.Context, cmd CaptureOrderCommand) (*dto.PaymentDTO, error) {
	p, err := uc.paymentRepo.FindByOrderNo(ctx, cmd.OrderNo)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	if p == nil || p.AccountID() != cmd.AccountID {
		return nil, payment.ErrPaymentNotFound
	}
	if p.IsExpired() {
		if err := p.MarkAsExpired(); err == nil {
			_ = uc.paymentRepo.Update(ctx, p)
		}
		return nil, payment.ErrOrderExpired
	}
	if p.GatewayOrderID() == nil {
		return nil, fmt.Errorf("payment has no gateway order")
	}

	capture, err := uc.gateway.CaptureOrder(ctx, *p.GatewayOrderID())
	if err != nil {
		uc.logger.Errorw("gateway capture failed", "error", err, "order_no", p.OrderNo())
		if markErr := p.MarkAsFailed(err.Error()); markErr == nil {
			_ = uc.paymentRepo.Update(ctx, p)
		}
		return nil, fmt.Errorf("gateway capture failed: %w", err)
	}

	if !capture.Completed {
		uc.logger.Warnw("capture not completed", "order_no", p.OrderNo(), "gateway_status", capture.RawStatus)
		if markErr := p.MarkAsFailed("gateway status: " + capture.RawStatus); markErr == nil {
			_ = uc.paymentRepo.Update(ctx, p)
		}
		return dto.ToPaymentDTO(p), nil
	}
	if capture.AmountCents != p.Amount().AmountCents() || capture.Currency != p.Amount().Currency() {
		uc.logger.Errorw("capture amount mismatch",
			"order_no", p.OrderNo(),
			"expected_cents", p.Amount().AmountCents(),
			"captured_cents", capture.AmountCents,
		)
		return nil, fmt.Errorf("captured amount does not match order")
	}

	if err := p.MarkAsCompleted(); err != nil {
		return nil, err
	}
	if err := uc.paymentRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update payment", "error", err, "order_no", p.OrderNo())
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	// The capture confirmation is what authorizes the plan change.
	if _, err := uc.applyPlan.Execute(ctx, subusecases.ApplyPlanCommand{
		SubscriptionID: p.SubscriptionID(),
		Plan:           p.Plan().String(),
		BillingPeriod:  p.BillingPeriod().String(),
	}); err != nil {
		// The payment is settled; surface the inconsistency loudly.
		uc.logger.Errorw("payment completed but plan application failed",
			"error", err,
			"order_no", p.OrderNo(),
			"subscription_id", p.SubscriptionID(),
		)
		return nil, fmt.Errorf("payment captured but plan application failed: %w", err)
	}

	uc.logger.Infow("payment captured and plan applied",
		"order_no", p.OrderNo(),
		"account_id", p.AccountID(),
		"plan", p.Plan(),
	)

	return dto.ToPaymentDTO(p), nil
}
