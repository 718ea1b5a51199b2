package project

import (
	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PanelConfiguration specifies one physical panel unit attached to a
// project. A project may have zero or many; every reference field is
// independently settable and nullable.
type PanelConfiguration struct {
	shared.BaseEntity
	ProjectID     uuid.UUID
	PanelTypeID   *uuid.UUID
	PanelSizeID   *uuid.UUID
	OrientationID *uuid.UUID
	StructureID   *uuid.UUID
	Digital       SignOffFlag
	Illuminated   SignOffFlag
	Sides         *int
	Quantity      *int
	HeightMM      *decimal.Decimal
	WidthMM       *decimal.Decimal
}

// NewPanelConfiguration creates an empty panel configuration for a project
func NewPanelConfiguration(projectID uuid.UUID) (*PanelConfiguration, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Project ID cannot be empty")
	}
	return &PanelConfiguration{
		BaseEntity:  shared.NewBaseEntity(),
		ProjectID:   projectID,
		Digital:     SignOffTBC,
		Illuminated: SignOffTBC,
	}, nil
}
