package http

import (
	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/infrastructure/repository"
)

// repositories groups every persistence adapter behind its domain interface.
type repositories struct {
	account      *repository.AccountRepository
	subscription *repository.SubscriptionRepository
	website      *repository.WebsiteRepository
	project      *repository.ProjectRepository
	contact      *repository.ContactRepository
	asset        *repository.AssetRepository
	payment      *repository.PaymentRepository
	webhook      *repository.WebhookRepository
	analytics    *repository.AnalyticsRepository
}

func buildRepositories(db *gorm.DB) *repositories {
	return &repositories{
		account:      repository.NewAccountRepository(db),
		subscription: repository.NewSubscriptionRepository(db),
		website:      repository.NewWebsiteRepository(db),
		project:      repository.NewProjectRepository(db),
		contact:      repository.NewContactRepository(db),
		asset:        repository.NewAssetRepository(db),
		payment:      repository.NewPaymentRepository(db),
		webhook:      repository.NewWebhookRepository(db),
		analytics:    repository.NewAnalyticsRepository(db),
	}
}
