package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
)

func WebsiteToModel(site *website.Website) (*models.WebsiteModel, error) {
	model := &models.WebsiteModel{
		ID:            site.ID(),
		AccountID:     site.AccountID(),
		Name:          site.Name(),
		Domain:        site.Domain(),
		Description:   site.Description(),
		APIKey:        site.APIKey(),
		Active:        site.IsActive(),
		TotalContacts: site.TotalContacts(),
		Version:       site.Version(),
		CreatedAt:     site.CreatedAt(),
		UpdatedAt:     site.UpdatedAt(),
	}

	if origins := site.AllowedOrigins(); len(origins) > 0 {
		raw, err := json.Marshal(origins)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal allowed origins: %w", err)
		}
		model.AllowedOrigins = raw
	}

	return model, nil
}

func WebsiteToDomain(model *models.WebsiteModel) (*website.Website, error) {
	var origins []string
	if len(model.AllowedOrigins) > 0 {
		if err := json.Unmarshal(model.AllowedOrigins, &origins); err != nil {
			return nil, fmt.Errorf("failed to unmarshal allowed origins: %w", err)
		}
	}

	return website.ReconstructWebsite(
		model.ID, model.AccountID,
		model.Name, model.Domain, model.Description, model.APIKey,
		origins, model.Active, model.TotalContacts,
		model.Version, model.CreatedAt, model.UpdatedAt,
	)
}
