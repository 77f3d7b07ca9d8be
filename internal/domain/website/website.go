package website

import (
	"fmt"
	"strings"
	"time"

	"github.com/hostmail-io/hostmail/internal/shared/biztime"
	"github.com/hostmail-io/hostmail/internal/shared/id"
)

const (
	maxNameLength   = 100
	maxDomainLength = 253
)

// Website is a tenant site registered for contact collection. The API key
// identifies it on the public submission endpoint and resolves the owning
// account's subscription.
type Website struct {
	id          uint
	accountID   uint
	name        string
	domain      string
	description string
	apiKey      string

	// allowedOrigins whitelists browser origins for the public endpoints.
	// Empty means any origin.
	allowedOrigins []string

	active        bool
	totalContacts int

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewWebsite creates a website with a freshly generated API key.
func NewWebsite(accountID uint, name, domain, description string) (*Website, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("name is too long")
	}
	domain = normalizeDomain(domain)
	if domain == "" {
		return nil, fmt.Errorf("domain is required")
	}
	if len(domain) > maxDomainLength {
		return nil, fmt.Errorf("domain is too long")
	}

	apiKey, err := id.GenerateAPIKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}

	now := biztime.NowUTC()
	return &Website{
		accountID:   accountID,
		name:        name,
		domain:      domain,
		description: strings.TrimSpace(description),
		apiKey:      apiKey,
		active:      true,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructWebsite reconstructs a website from persistence.
func ReconstructWebsite(
	websiteID, accountID uint,
	name, domain, description, apiKey string,
	allowedOrigins []string,
	active bool,
	totalContacts int,
	version int,
	createdAt, updatedAt time.Time,
) (*Website, error) {
	if websiteID == 0 {
		return nil, fmt.Errorf("website ID cannot be zero")
	}
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	return &Website{
		id:             websiteID,
		accountID:      accountID,
		name:           name,
		domain:         domain,
		description:    description,
		apiKey:         apiKey,
		allowedOrigins: allowedOrigins,
		active:         active,
		totalContacts:  totalContacts,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (w *Website) ID() uint {
	return w.id
}

func (w *Website) AccountID() uint {
	return w.accountID
}

func (w *Website) Name() string {
	return w.name
}

func (w *Website) Domain() string {
	return w.domain
}

func (w *Website) Description() string {
	return w.description
}

func (w *Website) APIKey() string {
	return w.apiKey
}

func (w *Website) AllowedOrigins() []string {
	return w.allowedOrigins
}

func (w *Website) IsActive() bool {
	return w.active
}

func (w *Website) TotalContacts() int {
	return w.totalContacts
}

func (w *Website) Version() int {
	return w.version
}

func (w *Website) CreatedAt() time.Time {
	return w.createdAt
}

func (w *Website) UpdatedAt() time.Time {
	return w.updatedAt
}

// SetID sets the website ID (only for persistence layer use)
func (w *Website) SetID(websiteID uint) error {
	if w.id != 0 {
		return fmt.Errorf("website ID is already set")
	}
	if websiteID == 0 {
		return fmt.Errorf("website ID cannot be zero")
	}
	w.id = websiteID
	return nil
}

func (w *Website) UpdateDetails(name, domain, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name is too long")
	}
	domain = normalizeDomain(domain)
	if domain == "" {
		return fmt.Errorf("domain is required")
	}

	w.name = name
	w.domain = domain
	w.description = strings.TrimSpace(description)
	w.touch()
	return nil
}

// RegenerateAPIKey replaces the API key. The old key stops resolving as soon
// as the change is persisted.
func (w *Website) RegenerateAPIKey() (string, error) {
	apiKey, err := id.GenerateAPIKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate API key: %w", err)
	}
	w.apiKey = apiKey
	w.touch()
	return w.apiKey, nil
}

func (w *Website) SetAllowedOrigins(origins []string) {
	cleaned := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(strings.TrimSuffix(o, "/"))
		if o != "" {
			cleaned = append(cleaned, o)
		}
	}
	w.allowedOrigins = cleaned
	w.touch()
}

// IsOriginAllowed reports whether a browser origin may use the public
// endpoints. An empty whitelist admits every origin.
func (w *Website) IsOriginAllowed(origin string) bool {
	if len(w.allowedOrigins) == 0 {
		return true
	}
	origin = strings.TrimSuffix(origin, "/")
	for _, allowed := range w.allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

func (w *Website) Activate() {
	w.active = true
	w.touch()
}

func (w *Website) Deactivate() {
	w.active = false
	w.touch()
}

// RecordContact bumps the lifetime contact counter. This is a display
// statistic, not the metered quota counter.
func (w *Website) RecordContact() {
	w.totalContacts++
	w.touch()
}

func (w *Website) touch() {
	w.updatedAt = biztime.NowUTC()
	w.version++
}

func normalizeDomain(domain string) string {
	domain = strings.TrimSpace(strings.ToLower(domain))
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	return strings.TrimSuffix(domain, "/")
}
