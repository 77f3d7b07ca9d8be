package account

import (
	"testing"

	vo "github.com/hostmail-io/hostmail/internal/domain/account/valueobjects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmail(t *testing.T, raw string) *vo.Email {
	t.Helper()
	email, err := vo.NewEmail(raw)
	require.NoError(t, err)
	return email
}

func newTestAccount(t *testing.T) *Account {
	t.Helper()
	acc, err := NewAccount(newTestEmail(t, "owner@example.com"), "Owner", "$2a$10$hash")
	require.NoError(t, err)
	require.NotNil(t, acc)
	return acc
}

func TestNewEmail_Normalizes(t *testing.T) {
	email, err := vo.NewEmail("  Owner@Example.COM ")

	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", email.String())
}

func TestNewEmail_Invalid(t *testing.T) {
	for _, raw := range []string{"", "not-an-email", "a@b", "@example.com"} {
		_, err := vo.NewEmail(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}

func TestNewAccount_Defaults(t *testing.T) {
	acc := newTestAccount(t)

	assert.Equal(t, vo.StatusActive, acc.Status())
	assert.True(t, acc.CanLogin())
	assert.Equal(t, "Owner", acc.Name())
	assert.Equal(t, 1, acc.Version())
}

func TestNewAccount_MissingFields(t *testing.T) {
	email := newTestEmail(t, "owner@example.com")

	_, err := NewAccount(nil, "Owner", "hash")
	assert.Error(t, err)

	_, err = NewAccount(email, "  ", "hash")
	assert.Error(t, err)

	_, err = NewAccount(email, "Owner", "")
	assert.Error(t, err)
}

func TestSuspend_BlocksLogin(t *testing.T) {
	acc := newTestAccount(t)

	acc.Suspend()
	assert.False(t, acc.CanLogin())

	acc.Reactivate()
	assert.True(t, acc.CanLogin())
}

func TestChangePasswordHash(t *testing.T) {
	acc := newTestAccount(t)

	require.NoError(t, acc.ChangePasswordHash("$2a$10$newhash"))
	assert.Equal(t, "$2a$10$newhash", acc.PasswordHash())

	assert.Error(t, acc.ChangePasswordHash(""))
}
