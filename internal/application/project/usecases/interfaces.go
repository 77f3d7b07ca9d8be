package usecases

import "context"

// MarkdownRenderer converts markdown to sanitized HTML for the public
// project pages.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// EventPublisher hands domain events to the webhook dispatcher. Publishing
// is fire-and-forget; delivery failures never fail the originating request.
type EventPublisher interface {
	Publish(ctx context.Context, websiteID uint, event string, payload any)
}
