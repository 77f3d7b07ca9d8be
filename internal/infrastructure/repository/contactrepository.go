package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/domain/contact"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/mappers"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
	"github.com/hostmail-io/hostmail/internal/shared/db"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, msg *contact.Message) error {
	model, err := mappers.ContactMessageToModel(msg)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return msg.SetID(model.ID)
}

func (r *ContactRepository) Update(ctx context.Context, msg *contact.Message) error {
	model, err := mappers.ContactMessageToModel(msg)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ContactMessageModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"notes":      model.Notes,
			"read_at":    model.ReadAt,
			"replied_at": model.RepliedAt,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update contact message: %w", result.Error)
	}

	// The submitted form data is immutable after admission.

	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.ContactMessageModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	return nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id uint) (*contact.Message, error) {
	var model models.ContactMessageModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find contact message: %w", err)
	}

	return mappers.ContactMessageToDomain(&model)
}

func (r *ContactRepository) List(ctx context.Context, filter contact.ListFilter, offset, limit int) ([]*contact.Message, error) {
	var msgModels []models.ContactMessageModel

	if err := r.applyFilter(db.GetTxFromContext(ctx, r.db), filter).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&msgModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}

	msgs := make([]*contact.Message, 0, len(msgModels))
	for i := range msgModels {
		msg, err := mappers.ContactMessageToDomain(&msgModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map contact message %d: %w", msgModels[i].ID, err)
		}
		msgs = append(msgs, msg)
	}

	return msgs, nil
}

func (r *ContactRepository) Count(ctx context.Context, filter contact.ListFilter) (int64, error) {
	var count int64

	if err := r.applyFilter(db.GetTxFromContext(ctx, r.db), filter).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	return count, nil
}

func (r *ContactRepository) CountByWebsiteID(ctx context.Context, websiteID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ContactMessageModel{}).
		Where("website_id = ?", websiteID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count website contact messages: %w", err)
	}

	return count, nil
}

func (r *ContactRepository) applyFilter(tx *gorm.DB, filter contact.ListFilter) *gorm.DB {
	query := tx.Model(&models.ContactMessageModel{})

	if filter.WebsiteID != 0 {
		query = query.Where("website_id = ?", filter.WebsiteID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("email LIKE ? OR name LIKE ? OR subject LIKE ?", like, like, like)
	}

	return query
}
