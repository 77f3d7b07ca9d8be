package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/shared/constants"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

const contextKeyWebsite = "website"

// APIKeyMiddleware resolves the public form credential into a website. The
// public endpoints are meant to be called from arbitrary customer pages, so
// an invalid key, an inactive website and a disallowed origin all answer
// identically without revealing which check failed.
type APIKeyMiddleware struct {
	websiteRepo website.Repository
	logger      logger.Interface
}

func NewAPIKeyMiddleware(websiteRepo website.Repository, logger logger.Interface) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		websiteRepo: websiteRepo,
		logger:      logger,
	}
}

func (m *APIKeyMiddleware) ResolveWebsite() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(constants.HeaderXAPIKey)
		if apiKey == "" {
			apiKey = c.Query("api_key")
		}
		if apiKey == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing API key")
			c.Abort()
			return
		}

		site, err := m.websiteRepo.FindByAPIKey(c.Request.Context(), apiKey)
		if err != nil {
			m.logger.Errorw("failed to resolve API key", "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
			c.Abort()
			return
		}
		if site == nil || !site.IsActive() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid API key")
			c.Abort()
			return
		}

		if origin := c.GetHeader("Origin"); origin != "" && !site.IsOriginAllowed(origin) {
			m.logger.Warnw("submission from disallowed origin", "website_id", site.ID(), "origin", origin)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid API key")
			c.Abort()
			return
		}

		c.Set(contextKeyWebsite, site)
		c.Set(constants.ContextKeyWebsiteID, site.ID())

		c.Next()
	}
}

// ResolvedWebsite returns the website resolved by ResolveWebsite.
func ResolvedWebsite(c *gin.Context) *website.Website {
	if v, ok := c.Get(contextKeyWebsite); ok {
		if site, ok := v.(*website.Website); ok {
			return site
		}
	}
	return nil
}
