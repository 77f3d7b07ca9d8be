package valueobjects

import "fmt"

type PaymentMethod string

const (
	MethodPayPal PaymentMethod = "paypal"
	MethodManual PaymentMethod = "manual"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodPayPal, MethodManual:
		return true
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}

func NewPaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid payment method: %s", s)
	}
	return m, nil
}
