package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostmail-io/hostmail/internal/infrastructure/auth"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

func protectedRouter(t *testing.T, svc *auth.JWTService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/me", NewAuthMiddleware(svc, logger.NewNop()).RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"account_id": AccountID(c)})
	})
	return router
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	svc := auth.NewJWTService("test-secret", 60)
	router := protectedRouter(t, svc)

	token, _, err := svc.Issue(42, "owner@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	router := protectedRouter(t, auth.NewJWTService("test-secret", 60))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsMalformedHeader(t *testing.T) {
	svc := auth.NewJWTService("test-secret", 60)
	router := protectedRouter(t, svc)

	token, _, err := svc.Issue(42, "owner@example.com")
	require.NoError(t, err)

	for _, header := range []string{token, "Basic " + token, "Bearer"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestRequireAuthRejectsForgedToken(t *testing.T) {
	router := protectedRouter(t, auth.NewJWTService("test-secret", 60))

	forged, _, err := auth.NewJWTService("other-secret", 60).Issue(42, "owner@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
