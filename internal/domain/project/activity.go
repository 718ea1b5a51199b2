package project

import (
	"sort"
	"time"
)

// DefaultStaleThreshold is how long a project may go without an update
// before the dashboard reports it as stalled.
const DefaultStaleThreshold = 30 * 24 * time.Hour

// OpenTaskCount counts tasks not yet completed
func OpenTaskCount(tasks []Task) int {
	count := 0
	for _, t := range tasks {
		if !t.Completed {
			count++
		}
	}
	return count
}

// OverdueTaskCount counts incomplete tasks past their due date
func OverdueTaskCount(tasks []Task, now time.Time) int {
	count := 0
	for _, t := range tasks {
		if t.IsOverdue(now) {
			count++
		}
	}
	return count
}

// NeedsReviewCount counts tasks flagged for review. The flag is independent
// of due dates and completion state.
func NeedsReviewCount(tasks []Task) int {
	count := 0
	for _, t := range tasks {
		if t.NeedsReview {
			count++
		}
	}
	return count
}

// SortNextActions orders tasks for the "what's next" display: needs-review
// tasks first, then ascending due date with undated tasks last, then most
// recently created first as the final tie-break. The ordering is total.
func SortNextActions(tasks []Task) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.NeedsReview != b.NeedsReview {
			return a.NeedsReview
		}
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			// fall through to creation-time tie-break
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return sorted
}

// NextAction returns the highest-priority open task, or nil when the
// project has no open tasks.
func NextAction(tasks []Task) *Task {
	open := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			open = append(open, t)
		}
	}
	if len(open) == 0 {
		return nil
	}
	sorted := SortNextActions(open)
	return &sorted[0]
}

// IsStalled reports whether an active project has gone quiet. Live projects
// and deliberately parked projects (on hold, dropped) are never stalled.
func IsStalled(p *Project, now time.Time, threshold time.Duration) bool {
	if p.IsParked() {
		return false
	}
	if InferStage(p) == StageLive {
		return false
	}
	return now.Sub(p.LastUpdatedAt) > threshold
}
