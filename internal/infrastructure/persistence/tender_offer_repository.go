package persistence

import (
	"context"

	"github.com/devtrack/backend/internal/domain/project"
	"github.com/devtrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTenderOfferRepository implements TenderOfferRepository using GORM
type GormTenderOfferRepository struct {
	db *gorm.DB
}

// NewGormTenderOfferRepository creates a new GormTenderOfferRepository
func NewGormTenderOfferRepository(db *gorm.DB) *GormTenderOfferRepository {
	return &GormTenderOfferRepository{db: db}
}

// ListForProject lists a project's tender offers, highest first
func (r *GormTenderOfferRepository) ListForProject(ctx context.Context, projectID uuid.UUID) ([]project.TenderOffer, error) {
	var offerModels []models.TenderOfferModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("amount DESC").
		Find(&offerModels).Error; err != nil {
		return nil, err
	}

	offers := make([]project.TenderOffer, len(offerModels))
	for i, model := range offerModels {
		offers[i] = *model.ToDomain()
	}
	return offers, nil
}

// Create persists a new tender offer
func (r *GormTenderOfferRepository) Create(ctx context.Context, o *project.TenderOffer) error {
	model := models.TenderOfferModelFromDomain(o)
	return r.db.WithContext(ctx).Create(model).Error
}
