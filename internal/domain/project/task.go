package project

import (
	"time"

	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Task is a unit of work attached to a project. The needs-review flag is set
// at assignment time when someone other than the assignee raises the task;
// it is a plain boolean, not an approval workflow.
type Task struct {
	shared.BaseEntity
	ProjectID    uuid.UUID
	Description  string
	DueDate      *time.Time
	Completed    bool
	NeedsReview  bool
	AssigneeID   uuid.UUID
	AssignedByID uuid.UUID
	CategoryID   *uuid.UUID
}

// NewTask creates a task for a project. A task assigned by someone other
// than its assignee starts flagged for review.
func NewTask(projectID uuid.UUID, description string, dueDate *time.Time, assigneeID, assignedByID uuid.UUID, categoryID *uuid.UUID) (*Task, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Project ID cannot be empty")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Task description cannot be empty")
	}
	if assigneeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ASSIGNEE", "Assignee cannot be empty")
	}

	return &Task{
		BaseEntity:   shared.NewBaseEntity(),
		ProjectID:    projectID,
		Description:  description,
		DueDate:      dueDate,
		AssigneeID:   assigneeID,
		AssignedByID: assignedByID,
		CategoryID:   categoryID,
		NeedsReview:  assignedByID != uuid.Nil && assignedByID != assigneeID,
	}, nil
}

// SetCompleted toggles the completion flag. The toggle is idempotent:
// setting the flag to its current value reports no change so callers can
// skip the write, making retries safe. Completing a task clears its
// needs-review flag.
func (t *Task) SetCompleted(completed bool, now time.Time) bool {
	if t.Completed == completed {
		return false
	}
	t.Completed = completed
	if completed {
		t.NeedsReview = false
	}
	t.UpdatedAt = now
	return true
}

// IsOverdue reports whether the task is incomplete and past its due date.
// Completion suppresses overdue regardless of the due date.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Completed || t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(now)
}
