package stats

import (
	"time"

	"github.com/mrksrus/dual-focus/internal/dates"
	"github.com/mrksrus/dual-focus/internal/model"
)

// Stats summarizes the task collection for the /api/stats endpoint.
type Stats struct {
	Total          int            `json:"total"`
	Pending        int            `json:"pending"`
	Completed      int            `json:"completed"`
	Overdue        int            `json:"overdue"`
	DueToday       int            `json:"due_today"`
	Upcoming       int            `json:"upcoming"`
	CompletionRate float64        `json:"completion_rate"`
	PendingByDay   map[string]int `json:"pending_by_day"`
}

// Compute derives summary counts from the collection. Overdue/upcoming
// compare day keys lexicographically against now's day.
func Compute(tasks []model.Task, now time.Time) Stats {
	s := Stats{
		PendingByDay: map[string]int{},
	}
	today := dates.Today(now)

	for _, t := range tasks {
		s.Total++
		if t.Completed {
			s.Completed++
			continue
		}
		s.Pending++
		s.PendingByDay[t.Date]++

		switch {
		case t.Date == today:
			s.DueToday++
		case t.Date < today:
			s.Overdue++
		case t.Date > today:
			s.Upcoming++
		}
	}

	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total)
	}
	return s
}
