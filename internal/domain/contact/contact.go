package contact

import (
	"fmt"
	"strings"
	"time"

	"github.com/hostmail-io/hostmail/internal/shared/biztime"
)

type MessageStatus string

const (
	StatusNew      MessageStatus = "new"
	StatusRead     MessageStatus = "read"
	StatusReplied  MessageStatus = "replied"
	StatusArchived MessageStatus = "archived"
	StatusSpam     MessageStatus = "spam"
)

func (s MessageStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied, StatusArchived, StatusSpam:
		return true
	}
	return false
}

func (s MessageStatus) String() string {
	return string(s)
}

const (
	maxSubjectLength = 300
	maxMessageLength = 10000
)

// Message is a contact-form submission received through a website's public
// endpoint. The raw form payload is kept alongside the extracted well-known
// fields so custom form fields survive.
type Message struct {
	id        uint
	websiteID uint

	formData map[string]any

	email   string
	name    string
	subject string
	body    string

	status    MessageStatus
	ipAddress string
	userAgent string
	notes     string

	readAt    *time.Time
	repliedAt *time.Time
	createdAt time.Time
	updatedAt time.Time
}

// NewMessage creates a submission in status new. Well-known fields are
// extracted from formData by the caller; email is the only required one.
func NewMessage(websiteID uint, formData map[string]any, email, name, subject, body, ipAddress, userAgent string) (*Message, error) {
	if websiteID == 0 {
		return nil, fmt.Errorf("website ID is required")
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(subject) > maxSubjectLength {
		return nil, fmt.Errorf("subject is too long")
	}
	if len(body) > maxMessageLength {
		return nil, fmt.Errorf("message is too long")
	}
	if formData == nil {
		formData = map[string]any{}
	}

	now := biztime.NowUTC()
	return &Message{
		websiteID: websiteID,
		formData:  formData,
		email:     email,
		name:      strings.TrimSpace(name),
		subject:   strings.TrimSpace(subject),
		body:      body,
		status:    StatusNew,
		ipAddress: ipAddress,
		userAgent: userAgent,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructMessage reconstructs a message from persistence.
func ReconstructMessage(
	messageID, websiteID uint,
	formData map[string]any,
	email, name, subject, body string,
	status MessageStatus,
	ipAddress, userAgent, notes string,
	readAt, repliedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Message, error) {
	if messageID == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if websiteID == 0 {
		return nil, fmt.Errorf("website ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid message status: %s", status)
	}

	return &Message{
		id:        messageID,
		websiteID: websiteID,
		formData:  formData,
		email:     email,
		name:      name,
		subject:   subject,
		body:      body,
		status:    status,
		ipAddress: ipAddress,
		userAgent: userAgent,
		notes:     notes,
		readAt:    readAt,
		repliedAt: repliedAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (m *Message) ID() uint                 { return m.id }
func (m *Message) WebsiteID() uint          { return m.websiteID }
func (m *Message) FormData() map[string]any { return m.formData }
func (m *Message) Email() string            { return m.email }
func (m *Message) Name() string             { return m.name }
func (m *Message) Subject() string          { return m.subject }
func (m *Message) Body() string             { return m.body }
func (m *Message) Status() MessageStatus    { return m.status }
func (m *Message) IPAddress() string        { return m.ipAddress }
func (m *Message) UserAgent() string        { return m.userAgent }
func (m *Message) Notes() string            { return m.notes }
func (m *Message) ReadAt() *time.Time       { return m.readAt }
func (m *Message) RepliedAt() *time.Time    { return m.repliedAt }
func (m *Message) CreatedAt() time.Time     { return m.createdAt }
func (m *Message) UpdatedAt() time.Time     { return m.updatedAt }

// SetID sets the message ID (only for persistence layer use)
func (m *Message) SetID(messageID uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if messageID == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = messageID
	return nil
}

// MarkAsRead stamps readAt the first time only.
func (m *Message) MarkAsRead() {
	if m.status == StatusNew {
		now := biztime.NowUTC()
		m.status = StatusRead
		m.readAt = &now
		m.updatedAt = now
	}
}

func (m *Message) MarkAsReplied() {
	now := biztime.NowUTC()
	if m.readAt == nil {
		m.readAt = &now
	}
	m.status = StatusReplied
	m.repliedAt = &now
	m.updatedAt = now
}

func (m *Message) Archive() {
	m.status = StatusArchived
	m.updatedAt = biztime.NowUTC()
}

// MarkAsSpam flags an admitted message. The quota slot it consumed is not
// returned; admission is final.
func (m *Message) MarkAsSpam() {
	m.status = StatusSpam
	m.updatedAt = biztime.NowUTC()
}

func (m *Message) UpdateNotes(notes string) {
	m.notes = notes
	m.updatedAt = biztime.NowUTC()
}
