package http

import (
	"github.com/hostmail-io/hostmail/internal/interfaces/http/handlers"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type allHandlers struct {
	auth         *handlers.AuthHandler
	subscription *handlers.SubscriptionHandler
	website      *handlers.WebsiteHandler
	project      *handlers.ProjectHandler
	contact      *handlers.ContactHandler
	public       *handlers.PublicHandler
	asset        *handlers.AssetHandler
	payment      *handlers.PaymentHandler
	webhook      *handlers.WebhookHandler
	analytics    *handlers.AnalyticsHandler
}

func buildHandlers(ucs *allUseCases, log logger.Interface) *allHandlers {
	return &allHandlers{
		auth: handlers.NewAuthHandler(ucs.register, ucs.login, log),
		subscription: handlers.NewSubscriptionHandler(
			ucs.getSubscription, ucs.listPlans, ucs.requestUpgrade, ucs.cancelSub, log),
		website: handlers.NewWebsiteHandler(ucs.createWebsite, ucs.manageWebsite, ucs.websiteStats, log),
		project: handlers.NewProjectHandler(ucs.createProject, ucs.manageProject, log),
		contact: handlers.NewContactHandler(ucs.manageContacts, log),
		public:  handlers.NewPublicHandler(ucs.submitContact, ucs.publicProjects, log),
		asset:   handlers.NewAssetHandler(ucs.uploadAsset, ucs.manageAssets, log),
		payment: handlers.NewPaymentHandler(ucs.createOrder, ucs.captureOrder, ucs.listPayments, log),
		webhook: handlers.NewWebhookHandler(ucs.manageWebhooks, log),
		analytics: handlers.NewAnalyticsHandler(ucs.viewAnalytics, log),
	}
}
