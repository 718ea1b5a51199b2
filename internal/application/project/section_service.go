package project

import (
	"context"
	"fmt"
	"sort"

	"github.com/devtrack/backend/internal/domain/project"
	"github.com/devtrack/backend/internal/domain/schema"
	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SectionUpdateService is the partial-update reconciliation engine behind
// every stage-editing endpoint. It filters an arbitrary payload down to the
// section's allow-list, coerces values, aggregates validation errors and
// commits a minimal delta in exactly one write.
type SectionUpdateService struct {
	projectRepo project.ProjectRepository
	clock       shared.Clock
}

// NewSectionUpdateService creates a new SectionUpdateService
func NewSectionUpdateService(projectRepo project.ProjectRepository, clock shared.Clock) *SectionUpdateService {
	return &SectionUpdateService{
		projectRepo: projectRepo,
		clock:       clock,
	}
}

// SectionUpdateResult reports a committed reconciliation
type SectionUpdateResult struct {
	Section       string   `json:"section"`
	UpdatedFields []string `json:"updated_fields"`
}

// UpdateSection reconciles a raw payload against one section of a project.
// Unknown payload keys are silently discarded; recognised keys are coerced
// and validated with every failure collected before anything is written. On
// success the delta plus a server-set last_updated_at is committed as a
// single update. A payload with no recognised keys is a no-op error, not a
// silent success.
func (s *SectionUpdateService) UpdateSection(ctx context.Context, projectID uuid.UUID, sectionName string, payload map[string]any) (*SectionUpdateResult, error) {
	section, ok := schema.ProjectSectionByName(sectionName)
	if !ok {
		return nil, shared.NewDomainError("UNKNOWN_SECTION", fmt.Sprintf("Unknown section %q", sectionName))
	}

	// The parent must exist before any payload parsing happens
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}

	delta := make(map[string]any)
	updated := make([]string, 0, len(payload))
	validation := shared.NewValidationErrors()

	for key, raw := range payload {
		field, allowed := section.Lookup(key)
		if !allowed {
			continue
		}
		value, err := schema.Coerce(field, raw)
		if err != nil {
			validation.Add(field.Name, err.Error())
			continue
		}
		delta[field.Column] = value
		updated = append(updated, field.Name)
	}

	if validation.HasErrors() {
		return nil, validation
	}
	if len(delta) == 0 {
		return nil, shared.ErrNothingToUpdate
	}

	delta["last_updated_at"] = s.clock.Now()
	if err := s.projectRepo.UpdateFields(ctx, projectID, delta); err != nil {
		return nil, err
	}

	sort.Strings(updated)
	return &SectionUpdateResult{
		Section:       section.Name,
		UpdatedFields: updated,
	}, nil
}
