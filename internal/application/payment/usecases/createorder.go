package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/payment/dto"
	"github.com/hostmail-io/hostmail/internal/application/payment/paymentgateway"
	"github.com/hostmail-io/hostmail/internal/domain/payment"
	vo "github.com/hostmail-io/hostmail/internal/domain/payment/valueobjects"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	subvo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type CreateOrderCommand struct {
	AccountID     uint
	Plan          string
	BillingPeriod string
}

// CreateOrderUseCase opens a payment order for a paid plan. The amount comes
// from the catalog, never from the client.
type CreateOrderUseCase struct {
	paymentRepo      payment.Repository
	subscriptionRepo subscription.Repository
	gateway          paymentgateway.Gateway
	returnURL        string
	cancelURL        string
	logger           logger.Interface
}

func NewCreateOrderUseCase(
	paymentRepo payment.Repository,
	subscriptionRepo subscription.Repository,
	gateway paymentgateway.Gateway,
	returnURL, cancelURL string,
	logger logger.Interface,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		paymentRepo:      paymentRepo,
		subscriptionRepo: subscriptionRepo,
		gateway:          gateway,
		returnURL:        returnURL,
		cancelURL:        cancelURL,
		logger:           logger,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*dto.PaymentDTO, error) {
	plan, err := subvo.NewPlanID(cmd.Plan)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", subscription.ErrUnknownPlan, cmd.Plan)
	}
	if !plan.IsPaid() {
		return nil, fmt.Errorf("%w: the free plan needs no payment", subscription.ErrPolicyViolation)
	}
	period, err := subvo.NewBillingPeriod(cmd.BillingPeriod)
	if err != nil {
		return nil, err
	}

	sub, err := uc.subscriptionRepo.FindByAccountID(ctx, cmd.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, subscription.ErrSubscriptionNotFound
	}

	amount, err := vo.NewMoney(subscription.PriceFor(plan, period), "USD")
	if err != nil {
		return nil, err
	}

	p, err := payment.NewPayment(cmd.AccountID, sub.ID(), plan, period, amount, vo.MethodPayPal)
	if err != nil {
		return nil, err
	}

	gwResp, err := uc.gateway.CreateOrder(ctx, paymentgateway.CreateOrderRequest{
		OrderNo:     p.OrderNo(),
		AmountCents: amount.AmountCents(),
		Currency:    amount.Currency(),
		Description: fmt.Sprintf("HostMail %s plan (%s)", plan, period),
		ReturnURL:   uc.returnURL,
		CancelURL:   uc.cancelURL,
	})
	if err != nil {
		uc.logger.Errorw("gateway order creation failed", "error", err, "order_no", p.OrderNo())
		return nil, fmt.Errorf("gateway order creation failed: %w", err)
	}
	p.SetGatewayInfo(gwResp.GatewayOrderID, gwResp.ApprovalURL)

	if err := uc.paymentRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create payment", "error", err, "order_no", p.OrderNo())
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	uc.logger.Infow("payment order created",
		"order_no", p.OrderNo(),
		"account_id", cmd.AccountID,
		"plan", plan,
		"amount_cents", amount.AmountCents(),
	)

	return dto.ToPaymentDTO(p), nil
}
