package task

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrksrus/dual-focus/internal/model"
)

// ListFilter narrows List results. Date filters to an exact day key.
// Status is one of "", "all", "pending", "completed", "due_today",
// "overdue", "upcoming"; unknown values behave like "all".
type ListFilter struct {
	Date   string
	Status string
}

type Repo interface {
	// Create builds and stores a task. ok is false when the trimmed title
	// is empty; no task is produced and no error is returned in that case.
	Create(ctx context.Context, in model.TaskUpsert) (model.Task, bool, error)
	Get(ctx context.Context, id model.TaskID) (model.Task, bool, error)
	// Toggle flips the completed flag. ok is false when the id is unknown.
	Toggle(ctx context.Context, id model.TaskID) (model.Task, bool, error)
	// Delete removes a task. Deleting an unknown id is a no-op, not an error.
	Delete(ctx context.Context, id model.TaskID) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]model.Task, error)
}

func newTask(in model.TaskUpsert, now time.Time) (model.Task, bool) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Task{}, false
	}
	return model.Task{
		ID:          model.TaskID(uuid.NewString()),
		Title:       title,
		Description: normalizeOptional(in.Description),
		Date:        strings.TrimSpace(in.Date),
		Time:        normalizeOptional(in.Time),
		Completed:   false,
		CreatedAt:   now,
	}, true
}

// normalizeOptional collapses blank and whitespace-only values to "absent".
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func matchesFilter(t model.Task, filter ListFilter, today string) bool {
	if filter.Date != "" && t.Date != filter.Date {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(filter.Status)) {
	case "pending":
		return !t.Completed
	case "completed":
		return t.Completed
	case "due_today":
		return !t.Completed && t.Date == today
	case "overdue":
		// Day keys compare lexicographically in chronological order.
		return !t.Completed && t.Date < today
	case "upcoming":
		return !t.Completed && t.Date > today
	default:
		return true
	}
}

// sortTasks orders by day key, then tasks without a time first, then clock
// time, then creation time so List output is deterministic.
func sortTasks(out []model.Task) {
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		switch {
		case a.Time == nil && b.Time == nil:
			return a.CreatedAt.Before(b.CreatedAt)
		case a.Time == nil:
			return true
		case b.Time == nil:
			return false
		case *a.Time != *b.Time:
			return *a.Time < *b.Time
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})
}
