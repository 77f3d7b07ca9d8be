package website

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWebsite(t *testing.T) *Website {
	t.Helper()
	site, err := NewWebsite(1, "Portfolio", "example.com", "my portfolio site")
	require.NoError(t, err)
	require.NotNil(t, site)
	return site
}

func TestNewWebsite_GeneratesAPIKey(t *testing.T) {
	site := newTestWebsite(t)

	assert.True(t, strings.HasPrefix(site.APIKey(), "hm_"))
	assert.True(t, site.IsActive())
	assert.Equal(t, 0, site.TotalContacts())
	assert.Equal(t, "example.com", site.Domain())
}

func TestNewWebsite_NormalizesDomain(t *testing.T) {
	site, err := NewWebsite(1, "Portfolio", "https://Example.COM/", "")
	require.NoError(t, err)

	assert.Equal(t, "example.com", site.Domain())
}

func TestNewWebsite_ZeroAccountID(t *testing.T) {
	site, err := NewWebsite(0, "Portfolio", "example.com", "")

	assert.Error(t, err)
	assert.Nil(t, site)
}

func TestNewWebsite_EmptyDomain(t *testing.T) {
	site, err := NewWebsite(1, "Portfolio", "  ", "")

	assert.Error(t, err)
	assert.Nil(t, site)
}

func TestRegenerateAPIKey_ReplacesKey(t *testing.T) {
	site := newTestWebsite(t)
	oldKey := site.APIKey()

	newKey, err := site.RegenerateAPIKey()

	require.NoError(t, err)
	assert.NotEqual(t, oldKey, newKey)
	assert.Equal(t, newKey, site.APIKey())
	assert.True(t, strings.HasPrefix(newKey, "hm_"))
}

func TestIsOriginAllowed_EmptyWhitelistAdmitsAll(t *testing.T) {
	site := newTestWebsite(t)

	assert.True(t, site.IsOriginAllowed("https://anywhere.example"))
}

func TestIsOriginAllowed_Whitelist(t *testing.T) {
	site := newTestWebsite(t)
	site.SetAllowedOrigins([]string{"https://example.com/", "  https://www.example.com  "})

	assert.True(t, site.IsOriginAllowed("https://example.com"))
	assert.True(t, site.IsOriginAllowed("HTTPS://EXAMPLE.COM"))
	assert.True(t, site.IsOriginAllowed("https://www.example.com"))
	assert.False(t, site.IsOriginAllowed("https://evil.example"))
}

func TestActivateDeactivate(t *testing.T) {
	site := newTestWebsite(t)

	site.Deactivate()
	assert.False(t, site.IsActive())

	site.Activate()
	assert.True(t, site.IsActive())
}

func TestRecordContact_BumpsCounter(t *testing.T) {
	site := newTestWebsite(t)

	site.RecordContact()
	site.RecordContact()

	assert.Equal(t, 2, site.TotalContacts())
}
