package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is a validated, lowercased email address.
type Email struct {
	value string
}

func NewEmail(value string) (*Email, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	if len(value) > 254 {
		return nil, fmt.Errorf("email is too long")
	}
	if !emailRegex.MatchString(value) {
		return nil, fmt.Errorf("invalid email format: %s", value)
	}
	return &Email{value: value}, nil
}

func (e *Email) String() string {
	return e.value
}

func (e *Email) Equals(other *Email) bool {
	if other == nil {
		return false
	}
	return e.value == other.value
}
