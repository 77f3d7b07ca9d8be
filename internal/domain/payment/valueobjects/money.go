package valueobjects

import (
	"fmt"
	"strings"
)

// Money is an amount in minor units (cents) with a currency code.
type Money struct {
	amountCents int64
	currency    string
}

func NewMoney(amountCents int64, currency string) (Money, error) {
	if amountCents < 0 {
		return Money{}, fmt.Errorf("amount cannot be negative")
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return Money{}, fmt.Errorf("invalid currency code: %q", currency)
	}
	return Money{amountCents: amountCents, currency: currency}, nil
}

func (m Money) AmountCents() int64 {
	return m.amountCents
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) IsPositive() bool {
	return m.amountCents > 0
}

func (m Money) IsZero() bool {
	return m.amountCents == 0
}

// String formats the amount with two decimal places, e.g. "9.00 USD".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.amountCents/100, m.amountCents%100, m.currency)
}
