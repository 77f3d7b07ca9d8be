package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMessage(t *testing.T) *Message {
	t.Helper()
	msg, err := NewMessage(1, map[string]any{"budget": "5k"}, "Visitor@Example.com", "Visitor", "Hi", "I need a website", "203.0.113.9", "curl/8")
	require.NoError(t, err)
	require.NotNil(t, msg)
	return msg
}

func TestNewMessage_Defaults(t *testing.T) {
	msg := newTestMessage(t)

	assert.Equal(t, StatusNew, msg.Status())
	assert.Equal(t, "visitor@example.com", msg.Email(), "email is lowercased")
	assert.Equal(t, "5k", msg.FormData()["budget"])
	assert.Nil(t, msg.ReadAt())
	assert.Nil(t, msg.RepliedAt())
}

func TestNewMessage_EmailRequired(t *testing.T) {
	msg, err := NewMessage(1, nil, "  ", "", "", "", "", "")

	assert.Error(t, err)
	assert.Nil(t, msg)
}

func TestNewMessage_ZeroWebsiteID(t *testing.T) {
	msg, err := NewMessage(0, nil, "a@b.co", "", "", "", "", "")

	assert.Error(t, err)
	assert.Nil(t, msg)
}

func TestMarkAsRead_StampsOnce(t *testing.T) {
	msg := newTestMessage(t)

	msg.MarkAsRead()
	require.NotNil(t, msg.ReadAt())
	first := *msg.ReadAt()

	msg.MarkAsRead()

	assert.Equal(t, StatusRead, msg.Status())
	assert.Equal(t, first, *msg.ReadAt())
}

func TestMarkAsReplied_BackfillsReadAt(t *testing.T) {
	msg := newTestMessage(t)

	msg.MarkAsReplied()

	assert.Equal(t, StatusReplied, msg.Status())
	assert.NotNil(t, msg.ReadAt())
	assert.NotNil(t, msg.RepliedAt())
}

func TestMarkAsSpam(t *testing.T) {
	msg := newTestMessage(t)

	msg.MarkAsSpam()

	assert.Equal(t, StatusSpam, msg.Status())
}

func TestArchiveAndNotes(t *testing.T) {
	msg := newTestMessage(t)

	msg.Archive()
	msg.UpdateNotes("follow up next week")

	assert.Equal(t, StatusArchived, msg.Status())
	assert.Equal(t, "follow up next week", msg.Notes())
}
