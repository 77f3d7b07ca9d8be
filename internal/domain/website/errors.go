package website

import "errors"

var (
	ErrWebsiteNotFound    = errors.New("website not found")
	ErrDomainAlreadyTaken = errors.New("domain already registered")
	ErrInvalidAPIKey      = errors.New("invalid API key")
	ErrWebsiteInactive    = errors.New("website is inactive")
)
