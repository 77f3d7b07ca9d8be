package payment

import (
	"fmt"
	"time"

	vo "github.com/hostmail-io/hostmail/internal/domain/payment/valueobjects"
	subvo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
	"github.com/hostmail-io/hostmail/internal/shared/biztime"
	"github.com/hostmail-io/hostmail/internal/shared/id"
)

// pendingTTL bounds how long an order may sit unpaid before expiry sweeps it.
const pendingTTL = 30 * time.Minute

// Payment is an order for a paid plan. Capturing it is the only path that
// applies a paid plan to the subscription; the upgrade request itself never
// mutates the ledger.
type Payment struct {
	id             uint
	orderNo        string
	accountID      uint
	subscriptionID uint

	plan          subvo.PlanID
	billingPeriod subvo.BillingPeriod

	amount vo.Money
	method vo.PaymentMethod
	status vo.PaymentStatus

	gatewayOrderID *string
	approvalURL    *string
	failureReason  *string

	paidAt     *time.Time
	refundedAt *time.Time
	expiresAt  time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewPayment creates a pending order for the given target plan.
func NewPayment(accountID, subscriptionID uint, plan subvo.PlanID, period subvo.BillingPeriod, amount vo.Money, method vo.PaymentMethod) (*Payment, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if subscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}
	if !plan.IsPaid() {
		return nil, fmt.Errorf("payment orders exist only for paid plans, got %s", plan)
	}
	if !period.IsValid() {
		return nil, fmt.Errorf("invalid billing period: %s", period)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", method)
	}

	now := biztime.NowUTC()
	return &Payment{
		orderNo:        id.MustGenerateWithPrefix(id.PrefixPayment, 16),
		accountID:      accountID,
		subscriptionID: subscriptionID,
		plan:           plan,
		billingPeriod:  period,
		amount:         amount,
		method:         method,
		status:         vo.PaymentStatusPending,
		expiresAt:      now.Add(pendingTTL),
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructPayment reconstructs a payment from persistence.
func ReconstructPayment(
	paymentID uint,
	orderNo string,
	accountID, subscriptionID uint,
	plan subvo.PlanID,
	period subvo.BillingPeriod,
	amount vo.Money,
	method vo.PaymentMethod,
	status vo.PaymentStatus,
	gatewayOrderID, approvalURL, failureReason *string,
	paidAt, refundedAt *time.Time,
	expiresAt time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Payment, error) {
	if paymentID == 0 {
		return nil, fmt.Errorf("payment ID cannot be zero")
	}
	if orderNo == "" {
		return nil, fmt.Errorf("order number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", status)
	}

	return &Payment{
		id:             paymentID,
		orderNo:        orderNo,
		accountID:      accountID,
		subscriptionID: subscriptionID,
		plan:           plan,
		billingPeriod:  period,
		amount:         amount,
		method:         method,
		status:         status,
		gatewayOrderID: gatewayOrderID,
		approvalURL:    approvalURL,
		failureReason:  failureReason,
		paidAt:         paidAt,
		refundedAt:     refundedAt,
		expiresAt:      expiresAt,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (p *Payment) ID() uint                           { return p.id }
func (p *Payment) OrderNo() string                    { return p.orderNo }
func (p *Payment) AccountID() uint                    { return p.accountID }
func (p *Payment) SubscriptionID() uint               { return p.subscriptionID }
func (p *Payment) Plan() subvo.PlanID                 { return p.plan }
func (p *Payment) BillingPeriod() subvo.BillingPeriod { return p.billingPeriod }
func (p *Payment) Amount() vo.Money                   { return p.amount }
func (p *Payment) Method() vo.PaymentMethod           { return p.method }
func (p *Payment) Status() vo.PaymentStatus           { return p.status }
func (p *Payment) GatewayOrderID() *string            { return p.gatewayOrderID }
func (p *Payment) ApprovalURL() *string               { return p.approvalURL }
func (p *Payment) FailureReason() *string             { return p.failureReason }
func (p *Payment) PaidAt() *time.Time                 { return p.paidAt }
func (p *Payment) RefundedAt() *time.Time             { return p.refundedAt }
func (p *Payment) ExpiresAt() time.Time               { return p.expiresAt }
func (p *Payment) Version() int                       { return p.version }
func (p *Payment) CreatedAt() time.Time               { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time               { return p.updatedAt }

// SetID sets the payment ID (only for persistence layer use)
func (p *Payment) SetID(paymentID uint) error {
	if p.id != 0 {
		return fmt.Errorf("payment ID is already set")
	}
	if paymentID == 0 {
		return fmt.Errorf("payment ID cannot be zero")
	}
	p.id = paymentID
	return nil
}

// SetGatewayInfo records the gateway order reference and the URL the buyer
// is redirected to for approval.
func (p *Payment) SetGatewayInfo(gatewayOrderID, approvalURL string) {
	p.gatewayOrderID = &gatewayOrderID
	p.approvalURL = &approvalURL
	p.updatedAt = biztime.NowUTC()
}

// MarkAsCompleted transitions pending to completed. Completion is what
// authorizes the plan application downstream.
func (p *Payment) MarkAsCompleted() error {
	if p.status == vo.PaymentStatusCompleted {
		return nil
	}
	if p.status != vo.PaymentStatusPending {
		return fmt.Errorf("cannot complete payment with status %s", p.status)
	}

	now := biztime.NowUTC()
	p.status = vo.PaymentStatusCompleted
	p.paidAt = &now
	p.updatedAt = now
	p.version++
	return nil
}

func (p *Payment) MarkAsFailed(reason string) error {
	if p.status.IsFinal() || p.status == vo.PaymentStatusCompleted {
		return fmt.Errorf("cannot fail payment with status %s", p.status)
	}

	p.status = vo.PaymentStatusFailed
	p.failureReason = &reason
	p.updatedAt = biztime.NowUTC()
	p.version++
	return nil
}

// MarkAsRefunded records a refund of a completed payment. Refunds do not
// re-enter the plan-transition flow here; the operator downgrades explicitly.
func (p *Payment) MarkAsRefunded() error {
	if p.status != vo.PaymentStatusCompleted {
		return fmt.Errorf("only completed payments can be refunded, status is %s", p.status)
	}

	now := biztime.NowUTC()
	p.status = vo.PaymentStatusRefunded
	p.refundedAt = &now
	p.updatedAt = now
	p.version++
	return nil
}

func (p *Payment) MarkAsExpired() error {
	if p.status != vo.PaymentStatusPending {
		return nil
	}
	p.status = vo.PaymentStatusExpired
	p.updatedAt = biztime.NowUTC()
	p.version++
	return nil
}

func (p *Payment) IsExpired() bool {
	return p.status == vo.PaymentStatusPending && biztime.NowUTC().After(p.expiresAt)
}
