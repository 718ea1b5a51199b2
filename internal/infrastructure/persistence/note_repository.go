package persistence

import (
	"context"

	"github.com/devtrack/backend/internal/domain/project"
	"github.com/devtrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNoteRepository implements NoteRepository using GORM
type GormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GormNoteRepository
func NewGormNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{db: db}
}

// ListForProject lists a project's notes, newest first
func (r *GormNoteRepository) ListForProject(ctx context.Context, projectID uuid.UUID) ([]project.Note, error) {
	var noteModels []models.NoteModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&noteModels).Error; err != nil {
		return nil, err
	}

	notes := make([]project.Note, len(noteModels))
	for i, model := range noteModels {
		notes[i] = *model.ToDomain()
	}
	return notes, nil
}

// Create persists a new note
func (r *GormNoteRepository) Create(ctx context.Context, n *project.Note) error {
	model := models.NoteModelFromDomain(n)
	return r.db.WithContext(ctx).Create(model).Error
}
