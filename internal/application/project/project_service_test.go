package project

import (
	"context"
	"testing"

	"github.com/devtrack/backend/internal/domain/project"
	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProjectService(projectRepo *MockProjectRepository, noteRepo *MockNoteRepository, tenderRepo *MockTenderOfferRepository) *ProjectService {
	return NewProjectService(projectRepo, noteRepo, tenderRepo, fixedClock(), 0)
}

func TestProjectService_CreateProject(t *testing.T) {
	ctx := context.Background()

	t.Run("new project starts in survey with active status", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		service := newProjectService(projectRepo, new(MockNoteRepository), new(MockTenderOfferRepository))

		projectRepo.On("Create", ctx, mock.Anything).Return(nil)

		resp, err := service.CreateProject(ctx, CreateProjectRequest{
			Name:     "M4 J4 Gantry",
			SiteCode: "M4-201",
			Address:  "Airport Way",
			Town:     "Heathrow",
			Postcode: "TW6 2GA",
		})

		require.NoError(t, err)
		assert.Equal(t, "survey", resp.Stage)
		assert.Equal(t, "active", resp.Status)
		assert.True(t, resp.StageComplete["survey"])
		assert.False(t, resp.StageComplete["commercial"])
	})

	t.Run("invalid name never reaches the repository", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		service := newProjectService(projectRepo, new(MockNoteRepository), new(MockTenderOfferRepository))

		_, err := service.CreateProject(ctx, CreateProjectRequest{Name: ""})
		assert.Error(t, err)
		projectRepo.AssertNotCalled(t, "Create")
	})
}

func TestProjectService_GetProject(t *testing.T) {
	ctx := context.Background()

	projectRepo := new(MockProjectRepository)
	service := newProjectService(projectRepo, new(MockNoteRepository), new(MockTenderOfferRepository))

	stored := newStoredProject()
	signed := fixedClock().Instant
	stored.ContractSignedDate = &signed
	projectRepo.On("FindByID", ctx, stored.ID).Return(stored, nil)

	resp, err := service.GetProject(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "commercial", resp.Stage)
	assert.True(t, resp.StageComplete["commercial"])
	assert.NotNil(t, resp.Commercial.ContractSignedDate)
}

func TestProjectService_ListProjects(t *testing.T) {
	ctx := context.Background()

	projectRepo := new(MockProjectRepository)
	service := newProjectService(projectRepo, new(MockNoteRepository), new(MockTenderOfferRepository))

	stale := newStoredProject()
	stale.LastUpdatedAt = fixedClock().Instant.AddDate(0, -2, 0)

	filter := shared.DefaultFilter()
	projectRepo.On("FindAll", ctx, filter).Return([]project.Project{*stale}, nil)
	projectRepo.On("Count", ctx, filter).Return(int64(1), nil)

	page, err := service.ListProjects(ctx, filter)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].Stalled)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestProjectService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("parking a project commits status and activity timestamp", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		service := newProjectService(projectRepo, new(MockNoteRepository), new(MockTenderOfferRepository))

		stored := newStoredProject()
		projectRepo.On("FindByID", ctx, stored.ID).Return(stored, nil)

		var captured map[string]any
		projectRepo.On("UpdateFields", ctx, stored.ID, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(2).(map[string]any)
			}).
			Return(nil)

		resp, err := service.SetStatus(ctx, stored.ID, "on_hold")
		require.NoError(t, err)
		assert.Equal(t, "on_hold", resp.Status)
		assert.Equal(t, "on_hold", captured["status"])
		assert.Contains(t, captured, "last_updated_at")
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		service := newProjectService(projectRepo, new(MockNoteRepository), new(MockTenderOfferRepository))

		stored := newStoredProject()
		projectRepo.On("FindByID", ctx, stored.ID).Return(stored, nil)

		_, err := service.SetStatus(ctx, stored.ID, "archived")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATUS", domainErr.Code)
		projectRepo.AssertNotCalled(t, "UpdateFields")
	})
}

func TestProjectService_Notes(t *testing.T) {
	ctx := context.Background()

	projectRepo := new(MockProjectRepository)
	noteRepo := new(MockNoteRepository)
	service := newProjectService(projectRepo, noteRepo, new(MockTenderOfferRepository))

	stored := newStoredProject()
	projectRepo.On("FindByID", ctx, stored.ID).Return(stored, nil)
	projectRepo.On("Touch", ctx, stored.ID, mock.Anything).Return(nil)
	noteRepo.On("Create", ctx, mock.Anything).Return(nil)

	resp, err := service.AddNote(ctx, stored.ID, CreateNoteRequest{
		AuthorID: uuid.New(),
		Body:     "Landlord agreed heads of terms",
	})
	require.NoError(t, err)
	assert.Equal(t, stored.ID, resp.ProjectID)
	projectRepo.AssertCalled(t, "Touch", ctx, stored.ID, mock.Anything)
}

func TestProjectService_TenderOffers(t *testing.T) {
	ctx := context.Background()

	t.Run("records a bid and touches the project", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		tenderRepo := new(MockTenderOfferRepository)
		service := newProjectService(projectRepo, new(MockNoteRepository), tenderRepo)

		stored := newStoredProject()
		projectRepo.On("FindByID", ctx, stored.ID).Return(stored, nil)
		projectRepo.On("Touch", ctx, stored.ID, mock.Anything).Return(nil)
		tenderRepo.On("Create", ctx, mock.Anything).Return(nil)

		resp, err := service.AddTenderOffer(ctx, stored.ID, CreateTenderOfferRequest{
			Bidder: "Global Media Ltd",
			Amount: decimal.NewFromInt(45000),
		})
		require.NoError(t, err)
		assert.Equal(t, "Global Media Ltd", resp.Bidder)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		tenderRepo := new(MockTenderOfferRepository)
		service := newProjectService(projectRepo, new(MockNoteRepository), tenderRepo)

		stored := newStoredProject()
		projectRepo.On("FindByID", ctx, stored.ID).Return(stored, nil)

		_, err := service.AddTenderOffer(ctx, stored.ID, CreateTenderOfferRequest{
			Bidder: "Global Media Ltd",
			Amount: decimal.NewFromInt(-1),
		})
		assert.Error(t, err)
		tenderRepo.AssertNotCalled(t, "Create")
	})
}
