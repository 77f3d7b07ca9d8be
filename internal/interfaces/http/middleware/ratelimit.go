package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostmail-io/hostmail/internal/infrastructure/ratelimit"
	"github.com/hostmail-io/hostmail/internal/shared/config"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

// RateLimitMiddleware throttles the public submission endpoint. The key
// combines the resolved website and the client IP so one visitor cannot
// starve a site's quota window for everyone else.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	limits  ratelimit.Limits
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, cfg config.RateLimitConfig, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		limits: ratelimit.Limits{
			PerMinute: cfg.ContactSubmitPerMinute,
			PerHour:   cfg.ContactSubmitPerHour,
		},
		logger: logger,
	}
}

func (m *RateLimitMiddleware) LimitSubmissions() gin.HandlerFunc {
	return func(c *gin.Context) {
		site := ResolvedWebsite(c)
		if site == nil {
			// ResolveWebsite must run first.
			utils.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
			c.Abort()
			return
		}

		key := fmt.Sprintf("submit:%d:%s", site.ID(), c.ClientIP())

		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.limits)
		if err != nil {
			// Fail open: a limiter outage must not take submissions down
			// with it.
			m.logger.Errorw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many submissions, retry later")
			c.Abort()
			return
		}

		c.Next()
	}
}
