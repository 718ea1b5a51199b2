package project

import (
	"context"
	"time"

	"github.com/devtrack/backend/internal/domain/project"
	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]project.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Project), args.Error(1)
}

func (m *MockProjectRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateFields(ctx context.Context, id uuid.UUID, delta map[string]any) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockProjectRepository) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Task), args.Error(1)
}

func (m *MockTaskRepository) ListForProject(ctx context.Context, projectID uuid.UUID) ([]project.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Task), args.Error(1)
}

func (m *MockTaskRepository) Save(ctx context.Context, t *project.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// MockPanelConfigRepository is a mock implementation of PanelConfigRepository
type MockPanelConfigRepository struct {
	mock.Mock
}

func (m *MockPanelConfigRepository) FindByIDForProject(ctx context.Context, projectID, id uuid.UUID) (*project.PanelConfiguration, error) {
	args := m.Called(ctx, projectID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.PanelConfiguration), args.Error(1)
}

func (m *MockPanelConfigRepository) ListForProject(ctx context.Context, projectID uuid.UUID) ([]project.PanelConfiguration, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.PanelConfiguration), args.Error(1)
}

func (m *MockPanelConfigRepository) Create(ctx context.Context, pc *project.PanelConfiguration) error {
	args := m.Called(ctx, pc)
	return args.Error(0)
}

func (m *MockPanelConfigRepository) UpdateFields(ctx context.Context, id uuid.UUID, delta map[string]any) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockPanelConfigRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNoteRepository is a mock implementation of NoteRepository
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) ListForProject(ctx context.Context, projectID uuid.UUID) ([]project.Note, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Note), args.Error(1)
}

func (m *MockNoteRepository) Create(ctx context.Context, n *project.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// MockTenderOfferRepository is a mock implementation of TenderOfferRepository
type MockTenderOfferRepository struct {
	mock.Mock
}

func (m *MockTenderOfferRepository) ListForProject(ctx context.Context, projectID uuid.UUID) ([]project.TenderOffer, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.TenderOffer), args.Error(1)
}

func (m *MockTenderOfferRepository) Create(ctx context.Context, o *project.TenderOffer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// MockDashboardCache is a mock implementation of DashboardCache
type MockDashboardCache struct {
	mock.Mock
}

func (m *MockDashboardCache) Get(ctx context.Context) (*DashboardSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DashboardSnapshot), args.Error(1)
}

func (m *MockDashboardCache) Set(ctx context.Context, snapshot *DashboardSnapshot, ttl time.Duration) error {
	args := m.Called(ctx, snapshot, ttl)
	return args.Error(0)
}

func (m *MockDashboardCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// newStoredProject builds a persisted-looking project for service tests
func newStoredProject() *project.Project {
	p, _ := project.NewProject("Hanger Lane Tower", "HL-014", "1 Hanger Lane", "Ealing", "W5 1DL")
	return p
}
