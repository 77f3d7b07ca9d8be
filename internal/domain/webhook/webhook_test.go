package webhook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWebhook(t *testing.T) *Webhook {
	t.Helper()
	wh, err := NewWebhook(1, "https://hooks.example.com/in", []string{EventContactReceived})
	require.NoError(t, err)
	require.NotNil(t, wh)
	return wh
}

func TestNewWebhook_Defaults(t *testing.T) {
	wh := newTestWebhook(t)

	assert.True(t, wh.IsActive())
	assert.True(t, strings.HasPrefix(wh.Secret(), "wh_"))
	assert.Equal(t, []string{EventContactReceived}, wh.Events())
	assert.Equal(t, 0, wh.TotalCalls())
}

func TestNewWebhook_UnknownEvent(t *testing.T) {
	wh, err := NewWebhook(1, "https://hooks.example.com/in", []string{"contact.exploded"})

	assert.Error(t, err)
	assert.Nil(t, wh)
}

func TestNewWebhook_NoEvents(t *testing.T) {
	wh, err := NewWebhook(1, "https://hooks.example.com/in", nil)

	assert.Error(t, err)
	assert.Nil(t, wh)
}

func TestNewWebhook_InvalidURL(t *testing.T) {
	wh, err := NewWebhook(1, "ftp://hooks.example.com", []string{EventContactReceived})

	assert.Error(t, err)
	assert.Nil(t, wh)
}

func TestNormalizeEvents_DeduplicatesAndLowercases(t *testing.T) {
	wh, err := NewWebhook(1, "https://hooks.example.com/in", []string{
		"Contact.Received", " contact.received ", EventProjectCreated,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{EventContactReceived, EventProjectCreated}, wh.Events())
}

func TestSubscribesTo(t *testing.T) {
	wh := newTestWebhook(t)

	assert.True(t, wh.SubscribesTo(EventContactReceived))
	assert.False(t, wh.SubscribesTo(EventProjectDeleted))
}

func TestRecordDelivery_Counters(t *testing.T) {
	wh := newTestWebhook(t)

	wh.RecordDelivery(true)
	wh.RecordDelivery(false)
	wh.RecordDelivery(true)

	assert.Equal(t, 3, wh.TotalCalls())
	assert.Equal(t, 1, wh.FailedCalls())
	assert.NotNil(t, wh.LastCalledAt())
}

func TestRegenerateSecret(t *testing.T) {
	wh := newTestWebhook(t)
	old := wh.Secret()

	secret, err := wh.RegenerateSecret()

	require.NoError(t, err)
	assert.NotEqual(t, old, secret)
	assert.True(t, strings.HasPrefix(secret, "wh_"))
}

func TestKnownEvents_Complete(t *testing.T) {
	events := KnownEvents()

	assert.Len(t, events, 5)
	assert.Contains(t, events, EventContactReplied)
	assert.Contains(t, events, EventProjectUpdated)
}
