package project

import (
	"context"
	"time"

	"github.com/devtrack/backend/internal/domain/project"
	"github.com/devtrack/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Dashboard sizing limits
const (
	maxDashboardProjects = 500
)

// DashboardSnapshot is the aggregated pipeline view served to the dashboard.
// Stages and staleness are computed from current field values at build time.
type DashboardSnapshot struct {
	GeneratedAt      time.Time              `json:"generated_at"`
	TotalProjects    int                    `json:"total_projects"`
	StageCounts      map[string]int         `json:"stage_counts"`
	StatusCounts     map[string]int         `json:"status_counts"`
	OpenTasks        int                    `json:"open_tasks"`
	OverdueTasks     int                    `json:"overdue_tasks"`
	NeedsReviewTasks int                    `json:"needs_review_tasks"`
	StalledProjects  []ProjectActivityEntry `json:"stalled_projects"`
	Projects         []ProjectActivityEntry `json:"projects"`
}

// ProjectActivityEntry is one project's row on the dashboard
type ProjectActivityEntry struct {
	ProjectSummaryResponse
	OpenTasks        int           `json:"open_tasks"`
	OverdueTasks     int           `json:"overdue_tasks"`
	NeedsReviewTasks int           `json:"needs_review_tasks"`
	NextAction       *TaskResponse `json:"next_action,omitempty"`
}

// DashboardCache stores computed snapshots so repeated dashboard loads do
// not re-aggregate every project. Get returns (nil, nil) on a miss.
type DashboardCache interface {
	Get(ctx context.Context) (*DashboardSnapshot, error)
	Set(ctx context.Context, snapshot *DashboardSnapshot, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// DashboardService builds the aggregated activity view
type DashboardService struct {
	projectRepo project.ProjectRepository
	taskRepo    project.TaskRepository
	cache       DashboardCache
	clock       shared.Clock
	staleAfter  time.Duration
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewDashboardService creates a new DashboardService. Cache may be nil, in
// which case every request aggregates from storage.
func NewDashboardService(
	projectRepo project.ProjectRepository,
	taskRepo project.TaskRepository,
	cache DashboardCache,
	clock shared.Clock,
	staleAfter time.Duration,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	if staleAfter <= 0 {
		staleAfter = project.DefaultStaleThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		cache:       cache,
		clock:       clock,
		staleAfter:  staleAfter,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// GetDashboard returns the current snapshot, preferring a cached copy. A
// cache failure degrades to a fresh aggregation rather than an error.
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardSnapshot, error) {
	if s.cache != nil {
		snapshot, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		} else if snapshot != nil {
			return snapshot, nil
		}
	}

	snapshot, err := s.buildSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshot, s.cacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return snapshot, nil
}

// Refresh discards any cached snapshot and rebuilds it
func (s *DashboardService) Refresh(ctx context.Context) (*DashboardSnapshot, error) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
		}
	}
	return s.GetDashboard(ctx)
}

func (s *DashboardService) buildSnapshot(ctx context.Context) (*DashboardSnapshot, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = maxDashboardProjects
	filter.OrderBy = "last_updated_at"
	filter.OrderDir = "asc"

	projects, err := s.projectRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	snapshot := &DashboardSnapshot{
		GeneratedAt:     now,
		TotalProjects:   len(projects),
		StageCounts:     make(map[string]int),
		StatusCounts:    make(map[string]int),
		StalledProjects: make([]ProjectActivityEntry, 0),
		Projects:        make([]ProjectActivityEntry, 0, len(projects)),
	}

	for i := range projects {
		p := projects[i]
		tasks, err := s.taskRepo.ListForProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}

		entry := ProjectActivityEntry{
			ProjectSummaryResponse: toProjectSummaryResponse(p, now, s.staleAfter),
			OpenTasks:              project.OpenTaskCount(tasks),
			OverdueTasks:           project.OverdueTaskCount(tasks, now),
			NeedsReviewTasks:       project.NeedsReviewCount(tasks),
		}
		if next := project.NextAction(tasks); next != nil {
			resp := toTaskResponse(*next, now)
			entry.NextAction = &resp
		}

		snapshot.StageCounts[entry.Stage]++
		snapshot.StatusCounts[entry.Status]++
		snapshot.OpenTasks += entry.OpenTasks
		snapshot.OverdueTasks += entry.OverdueTasks
		snapshot.NeedsReviewTasks += entry.NeedsReviewTasks

		snapshot.Projects = append(snapshot.Projects, entry)
		if entry.Stalled {
			snapshot.StalledProjects = append(snapshot.StalledProjects, entry)
		}
	}

	return snapshot, nil
}
