package subscription

// Guard predicates answer "may this action proceed right now" from the
// subscription's limits and counters. They are pure: no clock reads beyond
// the expiry check in IsActive, no I/O, no mutation. A denial never changes
// state.
//
// Boundary semantics: a count already at its limit denies the next unit.

// CanAddWebsite reports whether one more website may be created given the
// account's current website count.
func (s *Subscription) CanAddWebsite(currentCount int) bool {
	if !s.IsActive() {
		return false
	}
	if IsUnlimited(s.limits.WebsiteLimit) {
		return true
	}
	return currentCount < s.limits.WebsiteLimit
}

// CanAddProject reports whether one more project may be created on a website
// that currently holds projectCount projects. The project limit is scoped
// per website, not per account.
func (s *Subscription) CanAddProject(projectCount int) bool {
	if !s.IsActive() {
		return false
	}
	if IsUnlimited(s.limits.ProjectLimit) {
		return true
	}
	return projectCount < s.limits.ProjectLimit
}

// CanReceiveContact reports whether one more contact submission may be
// admitted this billing month.
func (s *Subscription) CanReceiveContact() bool {
	if !s.IsActive() {
		return false
	}
	if IsUnlimited(s.limits.MonthlyContactQuota) {
		return true
	}
	return s.contactsUsedThisMonth < s.limits.MonthlyContactQuota
}

// CanUploadFile reports whether a file of sizeMB may be stored without
// exceeding the storage quota. Usage exactly reaching the quota is allowed.
func (s *Subscription) CanUploadFile(sizeMB float64) bool {
	if !s.IsActive() {
		return false
	}
	if sizeMB < 0 {
		return false
	}
	if IsUnlimited(s.limits.StorageQuotaMB) {
		return true
	}
	return s.storageUsedMB+sizeMB <= float64(s.limits.StorageQuotaMB)
}

// HasAnalytics reports whether the plan includes the analytics feature.
func (s *Subscription) HasAnalytics() bool {
	return s.IsActive() && s.limits.Analytics
}

// HasIntegrations reports whether the plan includes outbound integrations
// such as webhooks.
func (s *Subscription) HasIntegrations() bool {
	return s.IsActive() && s.limits.Integrations
}

// HasCustomDomain reports whether the plan includes custom domains.
func (s *Subscription) HasCustomDomain() bool {
	return s.IsActive() && s.limits.CustomDomain
}

// HasWhiteLabel reports whether the plan includes white-label rendering.
func (s *Subscription) HasWhiteLabel() bool {
	return s.IsActive() && s.limits.WhiteLabel
}
