package project

import (
	"context"
	"time"

	"github.com/devtrack/backend/internal/domain/project"
	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectService handles project lifecycle use cases
type ProjectService struct {
	projectRepo project.ProjectRepository
	noteRepo    project.NoteRepository
	tenderRepo  project.TenderOfferRepository
	clock       shared.Clock
	staleAfter  time.Duration
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo project.ProjectRepository,
	noteRepo project.NoteRepository,
	tenderRepo project.TenderOfferRepository,
	clock shared.Clock,
	staleAfter time.Duration,
) *ProjectService {
	if staleAfter <= 0 {
		staleAfter = project.DefaultStaleThreshold
	}
	return &ProjectService{
		projectRepo: projectRepo,
		noteRepo:    noteRepo,
		tenderRepo:  tenderRepo,
		clock:       clock,
		staleAfter:  staleAfter,
	}
}

// CreateProjectRequest represents a project creation request
type CreateProjectRequest struct {
	Name     string `json:"name" binding:"required"`
	SiteCode string `json:"site_code"`
	Address  string `json:"address"`
	Town     string `json:"town"`
	Postcode string `json:"postcode"`
}

// CreateProject registers a new site in the survey stage
func (s *ProjectService) CreateProject(ctx context.Context, req CreateProjectRequest) (*ProjectDetailResponse, error) {
	p, err := project.NewProject(req.Name, req.SiteCode, req.Address, req.Town, req.Postcode)
	if err != nil {
		return nil, err
	}
	if err := s.projectRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProjectDetailResponse(p), nil
}

// GetProject returns the full detail view including the inferred stage and
// per-stage completeness badges
func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*ProjectDetailResponse, error) {
	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProjectDetailResponse(p), nil
}

// GetStage returns only the inferred stage of a project
func (s *ProjectService) GetStage(ctx context.Context, id uuid.UUID) (string, error) {
	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return project.InferStage(p).String(), nil
}

// ListProjects returns a paginated summary listing
func (s *ProjectService) ListProjects(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProjectSummaryResponse], error) {
	projects, err := s.projectRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.projectRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	items := make([]ProjectSummaryResponse, len(projects))
	for i, p := range projects {
		items[i] = toProjectSummaryResponse(p, now, s.staleAfter)
	}

	paginated := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &paginated, nil
}

// SetStatus parks or reactivates a project
func (s *ProjectService) SetStatus(ctx context.Context, id uuid.UUID, status string) (*ProjectDetailResponse, error) {
	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := p.SetStatus(project.ProjectStatus(status), now); err != nil {
		return nil, err
	}
	delta := map[string]any{
		"status":          p.Status.String(),
		"last_updated_at": now,
	}
	if err := s.projectRepo.UpdateFields(ctx, id, delta); err != nil {
		return nil, err
	}
	return toProjectDetailResponse(p), nil
}

// CreateNoteRequest represents a note creation request
type CreateNoteRequest struct {
	AuthorID uuid.UUID `json:"author_id" binding:"required"`
	Body     string    `json:"body" binding:"required"`
}

// AddNote appends a free-text note to the project's activity trail
func (s *ProjectService) AddNote(ctx context.Context, projectID uuid.UUID, req CreateNoteRequest) (*NoteResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	note, err := project.NewNote(projectID, req.AuthorID, req.Body)
	if err != nil {
		return nil, err
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Touch(ctx, projectID, s.clock.Now()); err != nil {
		return nil, err
	}
	resp := toNoteResponse(*note)
	return &resp, nil
}

// ListNotes returns a project's notes, newest first
func (s *ProjectService) ListNotes(ctx context.Context, projectID uuid.UUID) ([]NoteResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	notes, err := s.noteRepo.ListForProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	responses := make([]NoteResponse, len(notes))
	for i, n := range notes {
		responses[i] = toNoteResponse(n)
	}
	return responses, nil
}

// CreateTenderOfferRequest represents a tender offer submission
type CreateTenderOfferRequest struct {
	Bidder    string          `json:"bidder" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	OfferDate *time.Time      `json:"offer_date"`
}

// AddTenderOffer records a marketing-stage bid against a project
func (s *ProjectService) AddTenderOffer(ctx context.Context, projectID uuid.UUID, req CreateTenderOfferRequest) (*TenderOfferResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	offer, err := project.NewTenderOffer(projectID, req.Bidder, req.Amount, req.OfferDate)
	if err != nil {
		return nil, err
	}
	if err := s.tenderRepo.Create(ctx, offer); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Touch(ctx, projectID, s.clock.Now()); err != nil {
		return nil, err
	}
	resp := toTenderOfferResponse(*offer)
	return &resp, nil
}

// ListTenderOffers returns a project's recorded bids
func (s *ProjectService) ListTenderOffers(ctx context.Context, projectID uuid.UUID) ([]TenderOfferResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	offers, err := s.tenderRepo.ListForProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	responses := make([]TenderOfferResponse, len(offers))
	for i, o := range offers {
		responses[i] = toTenderOfferResponse(o)
	}
	return responses, nil
}
