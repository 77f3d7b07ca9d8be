package usecases

import "context"

// ContactNotifier sends the owner-facing notification email for a new
// submission. Failures are logged, never surfaced to the submitter.
type ContactNotifier interface {
	NotifyContactReceived(ctx context.Context, ownerEmail, ownerName, websiteName, senderEmail, senderName, subject, message string) error
}

// EventPublisher hands domain events to the webhook dispatcher.
type EventPublisher interface {
	Publish(ctx context.Context, websiteID uint, event string, payload any)
}

// EventRecorder captures analytics events. Recording is best effort and
// never fails the calling operation.
type EventRecorder interface {
	Record(ctx context.Context, websiteID uint, eventType string, metadata map[string]any, ipAddress, userAgent string)
}
