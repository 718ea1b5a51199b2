package project

import (
	"context"
	"time"

	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectRepository defines the interface for project persistence.
// UpdateFields commits a reconciliation delta as a single field-level update
// that leaves columns outside the delta untouched.
type ProjectRepository interface {
	// FindByID finds a project by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)

	// FindAll finds projects with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Project, error)

	// Count counts projects matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Create persists a new project
	Create(ctx context.Context, p *Project) error

	// UpdateFields applies a column->value delta to one project in a single
	// write. Returns ErrNotFound if the project does not exist.
	UpdateFields(ctx context.Context, id uuid.UUID, delta map[string]any) error

	// Touch updates only the project's last_updated_at timestamp
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error
}

// TaskRepository defines the interface for task persistence
type TaskRepository interface {
	// FindByID finds a task by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)

	// ListForProject lists all tasks belonging to a project
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]Task, error)

	// Save creates or updates a task
	Save(ctx context.Context, t *Task) error
}

// PanelConfigRepository defines the interface for panel configuration
// persistence
type PanelConfigRepository interface {
	// FindByIDForProject finds a panel configuration scoped to its project
	FindByIDForProject(ctx context.Context, projectID, id uuid.UUID) (*PanelConfiguration, error)

	// ListForProject lists all panel configurations for a project
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]PanelConfiguration, error)

	// Create persists a new panel configuration
	Create(ctx context.Context, pc *PanelConfiguration) error

	// UpdateFields applies a column->value delta to one panel configuration
	UpdateFields(ctx context.Context, id uuid.UUID, delta map[string]any) error

	// Delete removes a panel configuration
	Delete(ctx context.Context, id uuid.UUID) error
}

// NoteRepository defines the interface for note persistence
type NoteRepository interface {
	// ListForProject lists a project's notes, newest first
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]Note, error)

	// Create persists a new note
	Create(ctx context.Context, n *Note) error
}

// TenderOfferRepository defines the interface for tender offer persistence
type TenderOfferRepository interface {
	// ListForProject lists a project's tender offers
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]TenderOffer, error)

	// Create persists a new tender offer
	Create(ctx context.Context, o *TenderOffer) error
}
