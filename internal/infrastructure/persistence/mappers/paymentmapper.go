package mappers

import (
	"fmt"

	"github.com/hostmail-io/hostmail/internal/domain/payment"
	vo "github.com/hostmail-io/hostmail/internal/domain/payment/valueobjects"
	subvo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
)

func PaymentToModel(p *payment.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:             p.ID(),
		OrderNo:        p.OrderNo(),
		AccountID:      p.AccountID(),
		SubscriptionID: p.SubscriptionID(),
		Plan:           p.Plan().String(),
		BillingPeriod:  p.BillingPeriod().String(),
		AmountCents:    p.Amount().AmountCents(),
		Currency:       p.Amount().Currency(),
		Method:         p.Method().String(),
		Status:         p.Status().String(),
		GatewayOrderID: p.GatewayOrderID(),
		ApprovalURL:    p.ApprovalURL(),
		FailureReason:  p.FailureReason(),
		PaidAt:         p.PaidAt(),
		RefundedAt:     p.RefundedAt(),
		ExpiresAt:      p.ExpiresAt(),
		Version:        p.Version(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func PaymentToDomain(model *models.PaymentModel) (*payment.Payment, error) {
	plan, err := subvo.NewPlanID(model.Plan)
	if err != nil {
		return nil, fmt.Errorf("invalid plan in storage: %w", err)
	}

	period, err := subvo.NewBillingPeriod(model.BillingPeriod)
	if err != nil {
		return nil, fmt.Errorf("invalid billing period in storage: %w", err)
	}

	amount, err := vo.NewMoney(model.AmountCents, model.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid amount in storage: %w", err)
	}

	method, err := vo.NewPaymentMethod(model.Method)
	if err != nil {
		return nil, fmt.Errorf("invalid payment method: %w", err)
	}

	status := vo.PaymentStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", model.Status)
	}

	return payment.ReconstructPayment(
		model.ID, model.OrderNo,
		model.AccountID, model.SubscriptionID,
		plan, period, amount, method, status,
		model.GatewayOrderID, model.ApprovalURL, model.FailureReason,
		model.PaidAt, model.RefundedAt, model.ExpiresAt,
		model.Version, model.CreatedAt, model.UpdatedAt,
	)
}
