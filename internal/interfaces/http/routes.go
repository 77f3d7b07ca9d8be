package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (c *Container) registerRoutes() {
	c.engine.GET("/health", func(gc *gin.Context) {
		gc.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := c.engine.Group("/api")

	// Public: no credentials beyond the request body.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", c.hdlrs.auth.Register)
		authGroup.POST("/login", c.hdlrs.auth.Login)
	}
	api.GET("/plans", c.hdlrs.subscription.ListPlans)

	// Public: API-key authenticated, embedded in visitor-facing sites.
	public := api.Group("/public", c.apiKeyMiddleware.ResolveWebsite())
	{
		public.POST("/contacts", c.rateLimitMiddleware.LimitSubmissions(), c.hdlrs.public.SubmitContact)
		public.GET("/projects", c.hdlrs.public.ListProjects)
	}

	// Dashboard: JWT authenticated.
	dash := api.Group("", c.authMiddleware.RequireAuth())
	{
		dash.GET("/subscription", c.hdlrs.subscription.GetSubscription)
		dash.POST("/subscription/upgrade", c.hdlrs.subscription.RequestUpgrade)
		dash.POST("/subscription/cancel", c.hdlrs.subscription.Cancel)

		websites := dash.Group("/websites")
		{
			websites.POST("", c.hdlrs.website.Create)
			websites.GET("", c.hdlrs.website.List)
			websites.GET("/:id", c.hdlrs.website.Get)
			websites.PUT("/:id", c.hdlrs.website.Update)
			websites.DELETE("/:id", c.hdlrs.website.Delete)
			websites.POST("/:id/regenerate-key", c.hdlrs.website.RegenerateAPIKey)
			websites.GET("/:id/stats", c.hdlrs.website.Stats)

			websites.POST("/:id/projects", c.hdlrs.project.Create)
			websites.GET("/:id/projects", c.hdlrs.project.List)
			websites.GET("/:id/projects/:projectId", c.hdlrs.project.Get)
			websites.PUT("/:id/projects/:projectId", c.hdlrs.project.Update)
			websites.DELETE("/:id/projects/:projectId", c.hdlrs.project.Delete)

			websites.POST("/:id/assets", c.hdlrs.asset.Upload)
			websites.GET("/:id/assets", c.hdlrs.asset.List)

			websites.GET("/:id/webhooks", c.hdlrs.webhook.List)
		}

		contacts := dash.Group("/contacts")
		{
			contacts.GET("", c.hdlrs.contact.List)
			contacts.GET("/:id", c.hdlrs.contact.Get)
			contacts.PUT("/:id/status", c.hdlrs.contact.UpdateStatus)
			contacts.PUT("/:id/notes", c.hdlrs.contact.UpdateNotes)
			contacts.DELETE("/:id", c.hdlrs.contact.Delete)
		}

		dash.DELETE("/assets/:id", c.hdlrs.asset.Delete)

		payments := dash.Group("/payments")
		{
			payments.POST("/orders", c.hdlrs.payment.CreateOrder)
			payments.POST("/orders/capture", c.hdlrs.payment.CaptureOrder)
			payments.GET("", c.hdlrs.payment.List)
		}

		analyticsGroup := dash.Group("/analytics")
		{
			analyticsGroup.GET("/stats", c.hdlrs.analytics.Stats)
			analyticsGroup.GET("/events", c.hdlrs.analytics.Events)
		}

		webhooks := dash.Group("/webhooks")
		{
			webhooks.POST("", c.hdlrs.webhook.Create)
			webhooks.PUT("/:id", c.hdlrs.webhook.Update)
			webhooks.DELETE("/:id", c.hdlrs.webhook.Delete)
			webhooks.POST("/:id/regenerate-secret", c.hdlrs.webhook.RegenerateSecret)
			webhooks.GET("/:id/deliveries", c.hdlrs.webhook.ListDeliveries)
		}
	}
}
