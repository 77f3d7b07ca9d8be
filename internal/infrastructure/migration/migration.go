package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

// Manager runs schema migrations via GORM AutoMigrate.
type Manager struct {
	logger logger.Interface
}

func NewManager(log logger.Interface) *Manager {
	return &Manager{logger: log}
}

// Migrate brings the schema up to date for every persistence model.
func (m *Manager) Migrate(db *gorm.DB) error {
	migrateModels := Models()

	m.logger.Infow("starting database migration", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		m.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	m.logger.Infow("database migration completed")
	return nil
}

// Models lists every persistence model in migration order. Referenced tables
// come before the tables referencing them.
func Models() []interface{} {
	return []interface{}{
		&models.AccountModel{},
		&models.SubscriptionModel{},
		&models.WebsiteModel{},
		&models.ProjectModel{},
		&models.ContactMessageModel{},
		&models.AssetModel{},
		&models.PaymentModel{},
		&models.WebhookModel{},
		&models.WebhookDeliveryModel{},
		&models.AnalyticsEventModel{},
	}
}
