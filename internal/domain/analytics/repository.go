package analytics

import (
	"context"
	"time"
)

// ListFilter narrows event queries. AccountID scopes through website
// ownership; a zero WebsiteID or empty EventType means no restriction.
type ListFilter struct {
	AccountID uint
	WebsiteID uint
	EventType string
	Since     time.Time
}

// TypeCount is the per-type aggregate used for top-event rankings.
type TypeCount struct {
	EventType string
	Count     int64
}

// DayCount is the per-day, per-type aggregate behind the daily stats view.
// Day is a YYYY-MM-DD date string in UTC.
type DayCount struct {
	Day       string
	EventType string
	Count     int64
}

type Repository interface {
	Create(ctx context.Context, event *Event) error

	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Event, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)

	// CountByType aggregates matching events per event type, most frequent
	// first.
	CountByType(ctx context.Context, filter ListFilter) ([]TypeCount, error)

	// CountByDay aggregates matching events per UTC day and event type,
	// oldest day first.
	CountByDay(ctx context.Context, filter ListFilter) ([]DayCount, error)
}
