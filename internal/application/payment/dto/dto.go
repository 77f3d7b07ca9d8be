package dto

import (
	"time"

	"github.com/hostmail-io/hostmail/internal/domain/payment"
)

type PaymentDTO struct {
	ID            uint       `json:"id"`
	OrderNo       string     `json:"order_no"`
	Plan          string     `json:"plan"`
	BillingPeriod string     `json:"billing_period"`
	AmountCents   int64      `json:"amount_cents"`
	Currency      string     `json:"currency"`
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	ApprovalURL   *string    `json:"approval_url,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToPaymentDTO(p *payment.Payment) *PaymentDTO {
	if p == nil {
		return nil
	}
	return &PaymentDTO{
		ID:            p.ID(),
		OrderNo:       p.OrderNo(),
		Plan:          p.Plan().String(),
		BillingPeriod: p.BillingPeriod().String(),
		AmountCents:   p.Amount().AmountCents(),
		Currency:      p.Amount().Currency(),
		Method:        p.Method().String(),
		Status:        p.Status().String(),
		ApprovalURL:   p.ApprovalURL(),
		PaidAt:        p.PaidAt(),
		CreatedAt:     p.CreatedAt(),
	}
}

func ToPaymentDTOList(payments []*payment.Payment) []*PaymentDTO {
	out := make([]*PaymentDTO, 0, len(payments))
	for _, p := range payments {
		out = append(out, ToPaymentDTO(p))
	}
	return out
}
