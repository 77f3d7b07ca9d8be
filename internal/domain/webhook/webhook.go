package webhook

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hostmail-io/hostmail/internal/shared/biztime"
	"github.com/hostmail-io/hostmail/internal/shared/id"
)

// Event names a webhook can subscribe to.
const (
	EventContactReceived = "contact.received"
	EventContactReplied  = "contact.replied"
	EventProjectCreated  = "project.created"
	EventProjectUpdated  = "project.updated"
	EventProjectDeleted  = "project.deleted"
)

var knownEvents = map[string]bool{
	EventContactReceived: true,
	EventContactReplied:  true,
	EventProjectCreated:  true,
	EventProjectUpdated:  true,
	EventProjectDeleted:  true,
}

// KnownEvents lists every subscribable event name.
func KnownEvents() []string {
	return []string{
		EventContactReceived,
		EventContactReplied,
		EventProjectCreated,
		EventProjectUpdated,
		EventProjectDeleted,
	}
}

const secretLength = 32

// Webhook is a per-website outbound endpoint. Deliveries are signed with the
// HMAC secret so receivers can verify origin.
type Webhook struct {
	id        uint
	websiteID uint
	targetURL string
	events    []string
	secret    string
	active    bool

	totalCalls   int
	failedCalls  int
	lastCalledAt *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewWebhook creates an active webhook with a freshly generated signing
// secret.
func NewWebhook(websiteID uint, targetURL string, events []string) (*Webhook, error) {
	if websiteID == 0 {
		return nil, fmt.Errorf("website ID is required")
	}
	if err := validateTargetURL(targetURL); err != nil {
		return nil, err
	}
	events, err := normalizeEvents(events)
	if err != nil {
		return nil, err
	}

	secret, err := id.GenerateWithPrefix(id.PrefixWebhook, secretLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate webhook secret: %w", err)
	}

	now := biztime.NowUTC()
	return &Webhook{
		websiteID: websiteID,
		targetURL: targetURL,
		events:    events,
		secret:    secret,
		active:    true,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructWebhook reconstructs a webhook from persistence.
func ReconstructWebhook(
	webhookID, websiteID uint,
	targetURL string,
	events []string,
	secret string,
	active bool,
	totalCalls, failedCalls int,
	lastCalledAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Webhook, error) {
	if webhookID == 0 {
		return nil, fmt.Errorf("webhook ID cannot be zero")
	}
	if websiteID == 0 {
		return nil, fmt.Errorf("website ID is required")
	}
	if secret == "" {
		return nil, fmt.Errorf("secret is required")
	}

	return &Webhook{
		id:           webhookID,
		websiteID:    websiteID,
		targetURL:    targetURL,
		events:       events,
		secret:       secret,
		active:       active,
		totalCalls:   totalCalls,
		failedCalls:  failedCalls,
		lastCalledAt: lastCalledAt,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (w *Webhook) ID() uint                 { return w.id }
func (w *Webhook) WebsiteID() uint          { return w.websiteID }
func (w *Webhook) TargetURL() string        { return w.targetURL }
func (w *Webhook) Events() []string         { return w.events }
func (w *Webhook) Secret() string           { return w.secret }
func (w *Webhook) IsActive() bool           { return w.active }
func (w *Webhook) TotalCalls() int          { return w.totalCalls }
func (w *Webhook) FailedCalls() int         { return w.failedCalls }
func (w *Webhook) LastCalledAt() *time.Time { return w.lastCalledAt }
func (w *Webhook) Version() int             { return w.version }
func (w *Webhook) CreatedAt() time.Time     { return w.createdAt }
func (w *Webhook) UpdatedAt() time.Time     { return w.updatedAt }

// SetID sets the webhook ID (only for persistence layer use)
func (w *Webhook) SetID(webhookID uint) error {
	if w.id != 0 {
		return fmt.Errorf("webhook ID is already set")
	}
	if webhookID == 0 {
		return fmt.Errorf("webhook ID cannot be zero")
	}
	w.id = webhookID
	return nil
}

func (w *Webhook) Update(targetURL string, events []string) error {
	if err := validateTargetURL(targetURL); err != nil {
		return err
	}
	events, err := normalizeEvents(events)
	if err != nil {
		return err
	}

	w.targetURL = targetURL
	w.events = events
	w.touch()
	return nil
}

// SubscribesTo reports whether the webhook wants the given event.
func (w *Webhook) SubscribesTo(event string) bool {
	for _, e := range w.events {
		if e == event {
			return true
		}
	}
	return false
}

func (w *Webhook) Activate() {
	w.active = true
	w.touch()
}

func (w *Webhook) Deactivate() {
	w.active = false
	w.touch()
}

// RecordDelivery updates the call counters after a dispatch attempt settles.
func (w *Webhook) RecordDelivery(success bool) {
	now := biztime.NowUTC()
	w.totalCalls++
	if !success {
		w.failedCalls++
	}
	w.lastCalledAt = &now
	w.updatedAt = now
}

func (w *Webhook) RegenerateSecret() (string, error) {
	secret, err := id.GenerateWithPrefix(id.PrefixWebhook, secretLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate webhook secret: %w", err)
	}
	w.secret = secret
	w.touch()
	return secret, nil
}

func (w *Webhook) touch() {
	w.updatedAt = biztime.NowUTC()
	w.version++
}

func validateTargetURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid webhook URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("webhook URL must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("webhook URL must have a host")
	}
	return nil
}

func normalizeEvents(events []string) ([]string, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("at least one event is required")
	}
	seen := map[string]bool{}
	out := make([]string, 0, len(events))
	for _, e := range events {
		e = strings.TrimSpace(strings.ToLower(e))
		if !knownEvents[e] {
			return nil, fmt.Errorf("unknown event: %s", e)
		}
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out, nil
}
