package payment

import (
	"strings"
	"testing"

	vo "github.com/hostmail-io/hostmail/internal/domain/payment/valueobjects"
	subvo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment(t *testing.T) *Payment {
	t.Helper()
	amount, err := vo.NewMoney(900, "USD")
	require.NoError(t, err)
	p, err := NewPayment(1, 2, subvo.PlanPro, subvo.BillingMonthly, amount, vo.MethodPayPal)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func TestNewPayment_Defaults(t *testing.T) {
	p := newTestPayment(t)

	assert.True(t, strings.HasPrefix(p.OrderNo(), "pay_"))
	assert.Equal(t, vo.PaymentStatusPending, p.Status())
	assert.Equal(t, subvo.PlanPro, p.Plan())
	assert.Nil(t, p.PaidAt())
	assert.False(t, p.IsExpired())
}

func TestNewPayment_FreePlanRefused(t *testing.T) {
	amount, err := vo.NewMoney(900, "USD")
	require.NoError(t, err)

	p, err := NewPayment(1, 2, subvo.PlanFree, subvo.BillingMonthly, amount, vo.MethodPayPal)

	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestNewPayment_ZeroAmountRefused(t *testing.T) {
	amount, err := vo.NewMoney(0, "USD")
	require.NoError(t, err)

	p, err := NewPayment(1, 2, subvo.PlanPro, subvo.BillingMonthly, amount, vo.MethodPayPal)

	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestMarkAsCompleted(t *testing.T) {
	p := newTestPayment(t)

	err := p.MarkAsCompleted()

	require.NoError(t, err)
	assert.Equal(t, vo.PaymentStatusCompleted, p.Status())
	assert.NotNil(t, p.PaidAt())
}

func TestMarkAsCompleted_Idempotent(t *testing.T) {
	p := newTestPayment(t)
	require.NoError(t, p.MarkAsCompleted())
	first := *p.PaidAt()

	err := p.MarkAsCompleted()

	require.NoError(t, err)
	assert.Equal(t, first, *p.PaidAt())
}

func TestMarkAsCompleted_AfterFailureRefused(t *testing.T) {
	p := newTestPayment(t)
	require.NoError(t, p.MarkAsFailed("card declined"))

	err := p.MarkAsCompleted()

	assert.Error(t, err)
	assert.Equal(t, vo.PaymentStatusFailed, p.Status())
}

func TestMarkAsFailed_RecordsReason(t *testing.T) {
	p := newTestPayment(t)

	err := p.MarkAsFailed("gateway timeout")

	require.NoError(t, err)
	require.NotNil(t, p.FailureReason())
	assert.Equal(t, "gateway timeout", *p.FailureReason())
}

func TestMarkAsRefunded_RequiresCompleted(t *testing.T) {
	p := newTestPayment(t)

	err := p.MarkAsRefunded()
	assert.Error(t, err)

	require.NoError(t, p.MarkAsCompleted())
	require.NoError(t, p.MarkAsRefunded())
	assert.Equal(t, vo.PaymentStatusRefunded, p.Status())
	assert.NotNil(t, p.RefundedAt())
}

func TestSetGatewayInfo(t *testing.T) {
	p := newTestPayment(t)

	p.SetGatewayInfo("GW-123", "https://gateway.example/approve/GW-123")

	require.NotNil(t, p.GatewayOrderID())
	assert.Equal(t, "GW-123", *p.GatewayOrderID())
	require.NotNil(t, p.ApprovalURL())
}

func TestMoney_Validation(t *testing.T) {
	_, err := vo.NewMoney(-1, "USD")
	assert.Error(t, err)

	_, err = vo.NewMoney(100, "US")
	assert.Error(t, err)

	m, err := vo.NewMoney(2900, "usd")
	require.NoError(t, err)
	assert.Equal(t, "USD", m.Currency())
	assert.Equal(t, "29.00 USD", m.String())
}
