package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type fakeWebsiteRepo struct {
	site *website.Website
}

func (r *fakeWebsiteRepo) Create(_ context.Context, _ *website.Website) error { return nil }
func (r *fakeWebsiteRepo) Update(_ context.Context, _ *website.Website) error { return nil }
func (r *fakeWebsiteRepo) Delete(_ context.Context, _ uint) error             { return nil }

func (r *fakeWebsiteRepo) FindByID(_ context.Context, id uint) (*website.Website, error) {
	if r.site != nil && r.site.ID() == id {
		return r.site, nil
	}
	return nil, nil
}

func (r *fakeWebsiteRepo) FindByAPIKey(_ context.Context, apiKey string) (*website.Website, error) {
	if r.site != nil && r.site.APIKey() == apiKey {
		return r.site, nil
	}
	return nil, nil
}

func (r *fakeWebsiteRepo) FindByAccountID(_ context.Context, _ uint) ([]*website.Website, error) {
	return nil, nil
}

func (r *fakeWebsiteRepo) CountByAccountID(_ context.Context, _ uint) (int, error) { return 0, nil }
func (r *fakeWebsiteRepo) ExistsByDomain(_ context.Context, _ uint, _ string) (bool, error) {
	return false, nil
}
func (r *fakeWebsiteRepo) IncrementTotalContacts(_ context.Context, _ uint) error { return nil }

func publicRouter(t *testing.T, site *website.Website) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	mw := NewAPIKeyMiddleware(&fakeWebsiteRepo{site: site}, logger.NewNop())
	router.GET("/public", mw.ResolveWebsite(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"website_id": ResolvedWebsite(c).ID()})
	})
	return router
}

func activeSite(t *testing.T) *website.Website {
	t.Helper()
	site, err := website.NewWebsite(1, "Portfolio", "example.com", "")
	require.NoError(t, err)
	require.NoError(t, site.SetID(7))
	return site
}

func TestResolveWebsiteAcceptsValidKey(t *testing.T) {
	site := activeSite(t)
	router := publicRouter(t, site)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("X-API-Key", site.APIKey())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "7")
}

func TestResolveWebsiteAcceptsQueryFallback(t *testing.T) {
	site := activeSite(t)
	router := publicRouter(t, site)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public?api_key="+site.APIKey(), nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResolveWebsiteRejectsUnknownKey(t *testing.T) {
	router := publicRouter(t, activeSite(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("X-API-Key", "nope")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// An inactive website and a bad origin answer exactly like a bad key.
func TestResolveWebsiteHidesWhyItRefused(t *testing.T) {
	inactive := activeSite(t)
	inactive.Deactivate()
	router := publicRouter(t, inactive)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("X-API-Key", inactive.APIKey())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	inactiveBody := w.Body.String()

	restricted := activeSite(t)
	restricted.SetAllowedOrigins([]string{"https://allowed.example.com"})
	router = publicRouter(t, restricted)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("X-API-Key", restricted.APIKey())
	req.Header.Set("Origin", "https://evil.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, inactiveBody, w.Body.String())
}

func TestResolveWebsiteRequiresKey(t *testing.T) {
	router := publicRouter(t, activeSite(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
