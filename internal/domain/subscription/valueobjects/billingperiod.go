package valueobjects

import "fmt"

// BillingPeriod is the cadence at which a subscription is billed.
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// IsValid checks if the billing period is valid.
func (b BillingPeriod) IsValid() bool {
	return b == BillingMonthly || b == BillingYearly
}

// String returns the string representation of the billing period.
func (b BillingPeriod) String() string {
	return string(b)
}

// Months returns the length of the billing period in months.
func (b BillingPeriod) Months() int {
	if b == BillingYearly {
		return 12
	}
	return 1
}

// NewBillingPeriod creates a BillingPeriod from a string.
func NewBillingPeriod(s string) (BillingPeriod, error) {
	b := BillingPeriod(s)
	if !b.IsValid() {
		return "", fmt.Errorf("invalid billing period: %s, must be 'monthly' or 'yearly'", s)
	}
	return b, nil
}
