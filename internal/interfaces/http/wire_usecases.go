package http

import (
	accountUsecases "github.com/hostmail-io/hostmail/internal/application/account/usecases"
	analyticsUsecases "github.com/hostmail-io/hostmail/internal/application/analytics/usecases"
	assetUsecases "github.com/hostmail-io/hostmail/internal/application/asset/usecases"
	contactUsecases "github.com/hostmail-io/hostmail/internal/application/contact/usecases"
	"github.com/hostmail-io/hostmail/internal/application/payment/paymentgateway"
	paymentUsecases "github.com/hostmail-io/hostmail/internal/application/payment/usecases"
	projectUsecases "github.com/hostmail-io/hostmail/internal/application/project/usecases"
	subscriptionUsecases "github.com/hostmail-io/hostmail/internal/application/subscription/usecases"
	webhookUsecases "github.com/hostmail-io/hostmail/internal/application/webhook/usecases"
	websiteUsecases "github.com/hostmail-io/hostmail/internal/application/website/usecases"
	"github.com/hostmail-io/hostmail/internal/infrastructure/config"
	"github.com/hostmail-io/hostmail/internal/infrastructure/webhookdispatch"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type allUseCases struct {
	register *accountUsecases.RegisterUseCase
	login    *accountUsecases.LoginUseCase

	getSubscription *subscriptionUsecases.GetSubscriptionUseCase
	listPlans       *subscriptionUsecases.ListPlansUseCase
	applyPlan       *subscriptionUsecases.ApplyPlanUseCase
	requestUpgrade  *subscriptionUsecases.RequestUpgradeUseCase
	cancelSub       *subscriptionUsecases.CancelSubscriptionUseCase
	expireSubs      *subscriptionUsecases.ExpireSubscriptionsUseCase
	resetUsage      *subscriptionUsecases.ResetMonthlyUsageUseCase

	createWebsite *websiteUsecases.CreateWebsiteUseCase
	manageWebsite *websiteUsecases.ManageWebsiteUseCase
	websiteStats  *websiteUsecases.GetWebsiteStatsUseCase

	createProject  *projectUsecases.CreateProjectUseCase
	manageProject  *projectUsecases.ManageProjectUseCase
	publicProjects *projectUsecases.ListPublicProjectsUseCase

	submitContact  *contactUsecases.SubmitContactUseCase
	manageContacts *contactUsecases.ManageContactsUseCase

	uploadAsset  *assetUsecases.UploadAssetUseCase
	manageAssets *assetUsecases.ManageAssetsUseCase

	createOrder    *paymentUsecases.CreateOrderUseCase
	captureOrder   *paymentUsecases.CaptureOrderUseCase
	listPayments   *paymentUsecases.ListPaymentsUseCase
	expirePayments *paymentUsecases.ExpirePaymentsUseCase

	manageWebhooks *webhookUsecases.ManageWebhooksUseCase

	recordEvent   *analyticsUsecases.RecordEventUseCase
	viewAnalytics *analyticsUsecases.ViewAnalyticsUseCase
}

type useCaseDeps struct {
	repos    *repositories
	hasher   accountUsecases.PasswordHasher
	tokens   accountUsecases.TokenIssuer
	tx       accountUsecases.TransactionRunner
	notifier contactUsecases.ContactNotifier
	events   *webhookdispatch.Dispatcher
	renderer projectUsecases.MarkdownRenderer
	store    assetUsecases.FileStore
	gateway  paymentgateway.Gateway
	cfg      *config.Config
	log      logger.Interface
}

func buildUseCases(d useCaseDeps) *allUseCases {
	ucs := &allUseCases{}

	ucs.register = accountUsecases.NewRegisterUseCase(
		d.repos.account, d.repos.subscription, d.hasher, d.tokens, d.tx, d.log)
	ucs.login = accountUsecases.NewLoginUseCase(
		d.repos.account, d.hasher, d.tokens, d.log)

	ucs.getSubscription = subscriptionUsecases.NewGetSubscriptionUseCase(d.repos.subscription, d.log)
	ucs.listPlans = subscriptionUsecases.NewListPlansUseCase()
	ucs.applyPlan = subscriptionUsecases.NewApplyPlanUseCase(d.repos.subscription, d.log)
	ucs.requestUpgrade = subscriptionUsecases.NewRequestUpgradeUseCase(d.repos.subscription, ucs.applyPlan, d.log)
	ucs.cancelSub = subscriptionUsecases.NewCancelSubscriptionUseCase(d.repos.subscription, d.log)
	ucs.expireSubs = subscriptionUsecases.NewExpireSubscriptionsUseCase(d.repos.subscription, d.log)
	ucs.resetUsage = subscriptionUsecases.NewResetMonthlyUsageUseCase(d.repos.subscription, d.log)

	ucs.createWebsite = websiteUsecases.NewCreateWebsiteUseCase(
		d.repos.website, d.repos.subscription, d.log)
	ucs.manageWebsite = websiteUsecases.NewManageWebsiteUseCase(d.repos.website, d.log)
	ucs.websiteStats = websiteUsecases.NewGetWebsiteStatsUseCase(
		d.repos.website, d.repos.contact, d.repos.project, d.repos.asset, d.log)

	ucs.createProject = projectUsecases.NewCreateProjectUseCase(
		d.repos.project, d.repos.website, d.repos.subscription, d.events, d.log)
	ucs.manageProject = projectUsecases.NewManageProjectUseCase(
		d.repos.project, d.repos.website, d.events, d.log)
	ucs.publicProjects = projectUsecases.NewListPublicProjectsUseCase(
		d.repos.project, d.renderer, d.log)

	ucs.recordEvent = analyticsUsecases.NewRecordEventUseCase(d.repos.analytics, d.log)
	ucs.viewAnalytics = analyticsUsecases.NewViewAnalyticsUseCase(
		d.repos.analytics, d.repos.subscription, d.log)

	ucs.submitContact = contactUsecases.NewSubmitContactUseCase(
		d.repos.contact, d.repos.website, d.repos.subscription, d.repos.account,
		d.notifier, d.events, ucs.recordEvent, d.log)
	ucs.manageContacts = contactUsecases.NewManageContactsUseCase(
		d.repos.contact, d.repos.website, d.events, ucs.recordEvent, d.log)

	ucs.uploadAsset = assetUsecases.NewUploadAssetUseCase(
		d.repos.asset, d.repos.website, d.repos.subscription, d.store, d.log)
	ucs.manageAssets = assetUsecases.NewManageAssetsUseCase(
		d.repos.asset, d.repos.website, d.repos.subscription, d.store, d.log)

	ucs.createOrder = paymentUsecases.NewCreateOrderUseCase(
		d.repos.payment, d.repos.subscription, d.gateway,
		d.cfg.Payment.ReturnURL, d.cfg.Payment.CancelURL, d.log)
	ucs.captureOrder = paymentUsecases.NewCaptureOrderUseCase(
		d.repos.payment, d.gateway, ucs.applyPlan, d.log)
	ucs.listPayments = paymentUsecases.NewListPaymentsUseCase(d.repos.payment, d.log)
	ucs.expirePayments = paymentUsecases.NewExpirePaymentsUseCase(d.repos.payment, d.log)

	ucs.manageWebhooks = webhookUsecases.NewManageWebhooksUseCase(
		d.repos.webhook, d.repos.website, d.repos.subscription, d.log)

	return ucs
}
