package valueobjects

import "fmt"

// PlanID identifies a subscription plan in the catalog.
type PlanID string

const (
	// PlanFree is the default plan assigned at account creation.
	PlanFree PlanID = "free"
	// PlanPro is the paid plan for individual site owners.
	PlanPro PlanID = "pro"
	// PlanAgency is the paid plan for agencies managing many sites.
	PlanAgency PlanID = "agency"
)

// IsValid checks if the plan identifier is a known plan.
func (p PlanID) IsValid() bool {
	return p == PlanFree || p == PlanPro || p == PlanAgency
}

// String returns the string representation of the plan identifier.
func (p PlanID) String() string {
	return string(p)
}

// IsFree checks if the plan is the free plan.
func (p PlanID) IsFree() bool {
	return p == PlanFree
}

// IsPaid checks if the plan requires payment.
func (p PlanID) IsPaid() bool {
	return p.IsValid() && p != PlanFree
}

// NewPlanID creates a PlanID from a string, rejecting unknown plans.
func NewPlanID(s string) (PlanID, error) {
	p := PlanID(s)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown plan: %s, must be 'free', 'pro', or 'agency'", s)
	}
	return p, nil
}

// AllPlans returns the known plans in catalog order.
func AllPlans() []PlanID {
	return []PlanID{PlanFree, PlanPro, PlanAgency}
}
