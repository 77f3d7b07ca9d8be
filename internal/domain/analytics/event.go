package analytics

import (
	"fmt"
	"time"

	"github.com/hostmail-io/hostmail/internal/shared/biztime"
)

// Event types recorded against a website.
const (
	EventContactReceived = "contact_received"
	EventContactRead     = "contact_read"
	EventContactReplied  = "contact_replied"
	EventProjectViewed   = "project_viewed"
	EventProjectCreated  = "project_created"
	EventProjectUpdated  = "project_updated"
	EventAPICall         = "api_call"
	EventFormSubmission  = "form_submission"
)

// ValidEventTypes is the closed set of recordable event types.
var ValidEventTypes = map[string]bool{
	EventContactReceived: true,
	EventContactRead:     true,
	EventContactReplied:  true,
	EventProjectViewed:   true,
	EventProjectCreated:  true,
	EventProjectUpdated:  true,
	EventAPICall:         true,
	EventFormSubmission:  true,
}

// Event is one append-only analytics record. Events are never updated or
// individually deleted; the read side aggregates them.
type Event struct {
	id        uint
	websiteID uint
	eventType string
	metadata  map[string]any
	ipAddress string
	userAgent string
	referer   string
	createdAt time.Time
}

func NewEvent(websiteID uint, eventType string, metadata map[string]any, ipAddress, userAgent, referer string) (*Event, error) {
	if websiteID == 0 {
		return nil, fmt.Errorf("website ID is required")
	}
	if !ValidEventTypes[eventType] {
		return nil, fmt.Errorf("invalid event type: %s", eventType)
	}

	return &Event{
		websiteID: websiteID,
		eventType: eventType,
		metadata:  metadata,
		ipAddress: ipAddress,
		userAgent: userAgent,
		referer:   referer,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructEvent(
	id, websiteID uint,
	eventType string,
	metadata map[string]any,
	ipAddress, userAgent, referer string,
	createdAt time.Time,
) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if !ValidEventTypes[eventType] {
		return nil, fmt.Errorf("invalid event type: %s", eventType)
	}

	return &Event{
		id:        id,
		websiteID: websiteID,
		eventType: eventType,
		metadata:  metadata,
		ipAddress: ipAddress,
		userAgent: userAgent,
		referer:   referer,
		createdAt: createdAt,
	}, nil
}

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Event) ID() uint                 { return e.id }
func (e *Event) WebsiteID() uint          { return e.websiteID }
func (e *Event) EventType() string        { return e.eventType }
func (e *Event) Metadata() map[string]any { return e.metadata }
func (e *Event) IPAddress() string        { return e.ipAddress }
func (e *Event) UserAgent() string        { return e.userAgent }
func (e *Event) Referer() string          { return e.referer }
func (e *Event) CreatedAt() time.Time     { return e.createdAt }
