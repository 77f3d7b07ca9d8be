package valueobjects

type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusExpired   SubscriptionStatus = "expired"
	StatusSuspended SubscriptionStatus = "suspended"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// CanUseService reports whether metered actions are admitted in this status.
func (s SubscriptionStatus) CanUseService() bool {
	return s == StatusActive
}

// CanTransitionTo reports whether the lifecycle allows moving to target.
// Cancelled, suspended and expired subscriptions return to active via
// reactivation or a completed payment capture that re-applies a plan.
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusActive:    {StatusCancelled, StatusSuspended, StatusExpired},
		StatusCancelled: {StatusActive},
		StatusSuspended: {StatusActive},
		StatusExpired:   {StatusActive},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	for _, allowedStatus := range allowed {
		if allowedStatus == target {
			return true
		}
	}
	return false
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:    true,
	StatusCancelled: true,
	StatusExpired:   true,
	StatusSuspended: true,
}
