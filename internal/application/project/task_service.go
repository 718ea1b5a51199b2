package project

import (
	"context"
	"time"

	"github.com/devtrack/backend/internal/domain/project"
	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TaskService handles task workflows for projects
type TaskService struct {
	projectRepo project.ProjectRepository
	taskRepo    project.TaskRepository
	clock       shared.Clock
}

// NewTaskService creates a new TaskService
func NewTaskService(projectRepo project.ProjectRepository, taskRepo project.TaskRepository, clock shared.Clock) *TaskService {
	return &TaskService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		clock:       clock,
	}
}

// CreateTaskRequest represents a task creation request
type CreateTaskRequest struct {
	Description  string     `json:"description" binding:"required"`
	DueDate      *time.Time `json:"due_date"`
	AssigneeID   uuid.UUID  `json:"assignee_id" binding:"required"`
	AssignedByID uuid.UUID  `json:"assigned_by_id"`
	CategoryID   *uuid.UUID `json:"category_id"`
}

// CreateTask raises a task against a project. The needs-review flag is
// derived from who raised it, never taken from the payload.
func (s *TaskService) CreateTask(ctx context.Context, projectID uuid.UUID, req CreateTaskRequest) (*TaskResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}

	assignedBy := req.AssignedByID
	if assignedBy == uuid.Nil {
		assignedBy = req.AssigneeID
	}

	task, err := project.NewTask(projectID, req.Description, req.DueDate, req.AssigneeID, assignedBy, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Touch(ctx, projectID, s.clock.Now()); err != nil {
		return nil, err
	}

	resp := toTaskResponse(*task, s.clock.Now())
	return &resp, nil
}

// ListTasks returns a project's tasks in next-action order
func (s *TaskService) ListTasks(ctx context.Context, projectID uuid.UUID) ([]TaskResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.ListForProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	sorted := project.SortNextActions(tasks)
	responses := make([]TaskResponse, len(sorted))
	for i, t := range sorted {
		responses[i] = toTaskResponse(t, now)
	}
	return responses, nil
}

// ToggleComplete sets a task's completion flag. Toggling to the current
// state skips the write entirely, so repeated submissions of the same
// toggle are safe.
func (s *TaskService) ToggleComplete(ctx context.Context, projectID, taskID uuid.UUID, completed bool) (*TaskResponse, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.ProjectID != projectID {
		return nil, shared.ErrNotFound
	}

	now := s.clock.Now()
	if task.SetCompleted(completed, now) {
		if err := s.taskRepo.Save(ctx, task); err != nil {
			return nil, err
		}
		if err := s.projectRepo.Touch(ctx, projectID, now); err != nil {
			return nil, err
		}
	}

	resp := toTaskResponse(*task, now)
	return &resp, nil
}
