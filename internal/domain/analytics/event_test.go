package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	event, err := NewEvent(7, EventContactReceived, map[string]any{"message_id": uint(3)}, "203.0.113.9", "curl/8", "")

	require.NoError(t, err)
	assert.Equal(t, uint(7), event.WebsiteID())
	assert.Equal(t, EventContactReceived, event.EventType())
	assert.Equal(t, uint(3), event.Metadata()["message_id"])
	assert.False(t, event.CreatedAt().IsZero())
}

func TestNewEvent_InvalidType(t *testing.T) {
	_, err := NewEvent(7, "page_scrolled", nil, "", "", "")

	assert.Error(t, err)
}

func TestNewEvent_MissingWebsite(t *testing.T) {
	_, err := NewEvent(0, EventAPICall, nil, "", "", "")

	assert.Error(t, err)
}

func TestSetID_Once(t *testing.T) {
	event, err := NewEvent(7, EventProjectViewed, nil, "", "", "")
	require.NoError(t, err)

	require.NoError(t, event.SetID(12))
	assert.Error(t, event.SetID(13))
}
