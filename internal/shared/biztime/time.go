// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone is only used for
// calculating date boundaries (start of day, start of billing month).
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "UTC"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to UTC.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, auto-initializing with the
// default timezone when not explicitly initialized.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns the start of day in business timezone, converted to UTC.
func StartOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	startOfDay := time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 0, 0, 0, 0, Location())
	return startOfDay.UTC()
}

// StartOfMonthUTC returns the start of the month containing t in business
// timezone, converted to UTC. This is the billing-month boundary used for
// monthly usage counter resets.
func StartOfMonthUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	startOfMonth := time.Date(bizTime.Year(), bizTime.Month(), 1, 0, 0, 0, 0, Location())
	return startOfMonth.UTC()
}

// NextMonthStartUTC returns the start of the month after the one containing t.
func NextMonthStartUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	nextMonth := time.Date(bizTime.Year(), bizTime.Month()+1, 1, 0, 0, 0, 0, Location())
	return nextMonth.UTC()
}

// SameBillingMonth reports whether a and b fall in the same business month.
func SameBillingMonth(a, b time.Time) bool {
	return StartOfMonthUTC(a).Equal(StartOfMonthUTC(b))
}

// ToBizTimezone converts a UTC time to business timezone for display.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}
