package persistence

import (
	"context"
	"errors"

	"github.com/devtrack/backend/internal/domain/project"
	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/devtrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPanelConfigRepository implements PanelConfigRepository using GORM
type GormPanelConfigRepository struct {
	db *gorm.DB
}

// NewGormPanelConfigRepository creates a new GormPanelConfigRepository
func NewGormPanelConfigRepository(db *gorm.DB) *GormPanelConfigRepository {
	return &GormPanelConfigRepository{db: db}
}

// FindByIDForProject finds a panel configuration scoped to its project
func (r *GormPanelConfigRepository) FindByIDForProject(ctx context.Context, projectID, id uuid.UUID) (*project.PanelConfiguration, error) {
	var model models.PanelConfigModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND id = ?", projectID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListForProject lists all panel configurations for a project
func (r *GormPanelConfigRepository) ListForProject(ctx context.Context, projectID uuid.UUID) ([]project.PanelConfiguration, error) {
	var panelModels []models.PanelConfigModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&panelModels).Error; err != nil {
		return nil, err
	}

	configs := make([]project.PanelConfiguration, len(panelModels))
	for i, model := range panelModels {
		configs[i] = *model.ToDomain()
	}
	return configs, nil
}

// Create persists a new panel configuration
func (r *GormPanelConfigRepository) Create(ctx context.Context, pc *project.PanelConfiguration) error {
	model := models.PanelConfigModelFromDomain(pc)
	return r.db.WithContext(ctx).Create(model).Error
}

// UpdateFields applies a column->value delta to one panel configuration
func (r *GormPanelConfigRepository) UpdateFields(ctx context.Context, id uuid.UUID, delta map[string]any) error {
	if len(delta) == 0 {
		return shared.ErrNothingToUpdate
	}
	result := r.db.WithContext(ctx).
		Model(&models.PanelConfigModel{}).
		Where("id = ?", id).
		Updates(delta)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a panel configuration
func (r *GormPanelConfigRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PanelConfigModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
