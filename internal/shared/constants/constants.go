package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXAPIKey       = "X-API-Key"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyAccountID = "account_id"
	ContextKeyWebsiteID = "website_id"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableAccounts          = "accounts"
	TableSubscriptions     = "subscriptions"
	TableWebsites          = "websites"
	TableProjects          = "projects"
	TableContactMessages   = "contact_messages"
	TableAssets            = "assets"
	TablePayments          = "payments"
	TableWebhooks          = "webhooks"
	TableWebhookDeliveries = "webhook_deliveries"
	TableAnalyticsEvents   = "analytics_events"
)
