package project

import (
	"context"
	"errors"

	"github.com/devtrack/backend/internal/domain/project"
	"github.com/devtrack/backend/internal/domain/schema"
	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Batch operation types
const (
	PanelOpDelete = "delete"
	PanelOpUpdate = "update"
	PanelOpCreate = "create"
)

// PanelBatchRequest carries one batched save of a project's panel
// configuration set
type PanelBatchRequest struct {
	Deletes []uuid.UUID       `json:"deletes"`
	Updates []PanelUpdate     `json:"updates"`
	Creates []map[string]any  `json:"creates"`
}

// PanelUpdate targets one existing panel configuration
type PanelUpdate struct {
	ID     uuid.UUID      `json:"id"`
	Fields map[string]any `json:"fields"`
}

// PanelOperationResult reports the outcome of one operation in a batch
type PanelOperationResult struct {
	Op          string            `json:"op"`
	ID          uuid.UUID         `json:"id,omitempty"`
	Success     bool              `json:"success"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// PanelBatchResult aggregates the per-operation outcomes of a batch
type PanelBatchResult struct {
	Results []PanelOperationResult `json:"results"`
}

// Succeeded counts the operations that committed
func (r *PanelBatchResult) Succeeded() int {
	count := 0
	for _, res := range r.Results {
		if res.Success {
			count++
		}
	}
	return count
}

// Failed counts the operations that did not commit
func (r *PanelBatchResult) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// PanelConfigService is the list-valued variant of the reconciliation
// engine: it applies a batch of delete/update/create operations against a
// project's panel configurations with per-item validation and error
// reporting. Operations already committed are never rolled back by a later
// failure in the same batch.
type PanelConfigService struct {
	projectRepo project.ProjectRepository
	panelRepo   project.PanelConfigRepository
	clock       shared.Clock
}

// NewPanelConfigService creates a new PanelConfigService
func NewPanelConfigService(projectRepo project.ProjectRepository, panelRepo project.PanelConfigRepository, clock shared.Clock) *PanelConfigService {
	return &PanelConfigService{
		projectRepo: projectRepo,
		panelRepo:   panelRepo,
		clock:       clock,
	}
}

// List returns a project's panel configurations
func (s *PanelConfigService) List(ctx context.Context, projectID uuid.UUID) ([]PanelConfigResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}

	panels, err := s.panelRepo.ListForProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	responses := make([]PanelConfigResponse, 0, len(panels))
	for _, pc := range panels {
		responses = append(responses, toPanelConfigResponse(pc))
	}
	return responses, nil
}

// ApplyBatch runs a batch in a fixed order: deletes first, then updates to
// the surviving records, then creates. An update aimed at a record deleted
// earlier in the same batch fails with a not-found result for that item
// rather than resurrecting it. Every successful operation touches the
// parent project's last_updated_at.
func (s *PanelConfigService) ApplyBatch(ctx context.Context, projectID uuid.UUID, req PanelBatchRequest) (*PanelBatchResult, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}

	result := &PanelBatchResult{Results: make([]PanelOperationResult, 0, len(req.Deletes)+len(req.Updates)+len(req.Creates))}
	now := s.clock.Now()
	touched := false

	for _, id := range req.Deletes {
		res := s.applyDelete(ctx, projectID, id)
		if res.Success {
			touched = true
		}
		result.Results = append(result.Results, res)
	}

	for _, update := range req.Updates {
		res := s.applyUpdate(ctx, projectID, update)
		if res.Success {
			touched = true
		}
		result.Results = append(result.Results, res)
	}

	for _, fields := range req.Creates {
		res := s.applyCreate(ctx, projectID, fields)
		if res.Success {
			touched = true
		}
		result.Results = append(result.Results, res)
	}

	if touched {
		if err := s.projectRepo.Touch(ctx, projectID, now); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (s *PanelConfigService) applyDelete(ctx context.Context, projectID, id uuid.UUID) PanelOperationResult {
	res := PanelOperationResult{Op: PanelOpDelete, ID: id}

	if _, err := s.panelRepo.FindByIDForProject(ctx, projectID, id); err != nil {
		res.Error = opErrorMessage(err)
		return res
	}
	if err := s.panelRepo.Delete(ctx, id); err != nil {
		res.Error = opErrorMessage(err)
		return res
	}
	res.Success = true
	return res
}

func (s *PanelConfigService) applyUpdate(ctx context.Context, projectID uuid.UUID, update PanelUpdate) PanelOperationResult {
	res := PanelOperationResult{Op: PanelOpUpdate, ID: update.ID}

	if _, err := s.panelRepo.FindByIDForProject(ctx, projectID, update.ID); err != nil {
		res.Error = opErrorMessage(err)
		return res
	}

	delta, fieldErrors := reconcilePanelFields(update.Fields)
	if len(fieldErrors) > 0 {
		res.FieldErrors = fieldErrors
		return res
	}
	if len(delta) == 0 {
		res.Error = shared.ErrNothingToUpdate.Message
		return res
	}

	if err := s.panelRepo.UpdateFields(ctx, update.ID, delta); err != nil {
		res.Error = opErrorMessage(err)
		return res
	}
	res.Success = true
	return res
}

func (s *PanelConfigService) applyCreate(ctx context.Context, projectID uuid.UUID, fields map[string]any) PanelOperationResult {
	res := PanelOperationResult{Op: PanelOpCreate}

	delta, fieldErrors := reconcilePanelFields(fields)
	if len(fieldErrors) > 0 {
		res.FieldErrors = fieldErrors
		return res
	}

	pc, err := project.NewPanelConfiguration(projectID)
	if err != nil {
		res.Error = opErrorMessage(err)
		return res
	}
	applyPanelDelta(pc, delta)

	if err := s.panelRepo.Create(ctx, pc); err != nil {
		res.Error = opErrorMessage(err)
		return res
	}
	res.ID = pc.ID
	res.Success = true
	return res
}

// reconcilePanelFields runs the shared allow-list/coercion contract scoped
// to the panel configuration field set
func reconcilePanelFields(fields map[string]any) (map[string]any, map[string]string) {
	delta := make(map[string]any)
	fieldErrors := make(map[string]string)

	for key, raw := range fields {
		field, allowed := schema.PanelConfiguration.Lookup(key)
		if !allowed {
			continue
		}
		value, err := schema.Coerce(field, raw)
		if err != nil {
			if _, exists := fieldErrors[field.Name]; !exists {
				fieldErrors[field.Name] = err.Error()
			}
			continue
		}
		delta[field.Column] = value
	}

	return delta, fieldErrors
}

func opErrorMessage(err error) string {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return "Operation failed"
}
