package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hostmail-io/hostmail/internal/domain/project"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/mappers"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
	"github.com/hostmail-io/hostmail/internal/shared/db"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	model := mappers.ProjectToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	model := mappers.ProjectToModel(p)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProjectModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"content":     model.Content,
			"demo_url":    model.DemoURL,
			"github_url":  model.GithubURL,
			"status":      model.Status,
			"featured":    model.Featured,
			"sort_order":  model.SortOrder,
			"version":     model.Version,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}

	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.ProjectModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return mappers.ProjectToDomain(&model)
}

func (r *ProjectRepository) FindBySlug(ctx context.Context, websiteID uint, slug string) (*project.Project, error) {
	var model models.ProjectModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("website_id = ? AND slug = ?", websiteID, slug).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find project by slug: %w", err)
	}

	return mappers.ProjectToDomain(&model)
}

func (r *ProjectRepository) FindByWebsiteID(ctx context.Context, websiteID uint, offset, limit int) ([]*project.Project, error) {
	var projectModels []models.ProjectModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("website_id = ?", websiteID).
		Order("sort_order ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&projectModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return r.toDomainList(projectModels)
}

func (r *ProjectRepository) FindPublishedByWebsiteID(ctx context.Context, websiteID uint) ([]*project.Project, error) {
	var projectModels []models.ProjectModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("website_id = ? AND status = ?", websiteID, project.StatusPublished.String()).
		Order("featured DESC, sort_order ASC, id ASC").
		Find(&projectModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list published projects: %w", err)
	}

	return r.toDomainList(projectModels)
}

func (r *ProjectRepository) CountByWebsiteID(ctx context.Context, websiteID uint) (int, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProjectModel{}).
		Where("website_id = ?", websiteID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}

	return int(count), nil
}

func (r *ProjectRepository) ExistsBySlug(ctx context.Context, websiteID uint, slug string) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProjectModel{}).
		Where("website_id = ? AND slug = ?", websiteID, slug).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return count > 0, nil
}

func (r *ProjectRepository) toDomainList(projectModels []models.ProjectModel) ([]*project.Project, error) {
	projects := make([]*project.Project, 0, len(projectModels))
	for i := range projectModels {
		p, err := mappers.ProjectToDomain(&projectModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map project %d: %w", projectModels[i].ID, err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}
