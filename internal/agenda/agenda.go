package agenda

import (
	"sort"
	"time"

	"github.com/mrksrus/dual-focus/internal/dates"
	"github.com/mrksrus/dual-focus/internal/model"
)

// Group is a contiguous run of incomplete tasks sharing one day, carrying a
// human label for list display. The label has no meaning beyond rendering.
type Group struct {
	Label string       `json:"label"`
	Date  string       `json:"date"`
	Tasks []model.Task `json:"tasks"`
}

// Sort orders tasks by day key, then tasks without a time before timed ones,
// then clock time ascending. Stable: two timeless tasks on the same day keep
// their relative order.
func Sort(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		switch {
		case a.Time == nil && b.Time == nil:
			return false
		case a.Time == nil:
			return true
		case b.Time == nil:
			return false
		default:
			return *a.Time < *b.Time
		}
	})
	return out
}

// Groups turns a flat task collection into date-labeled sections of
// incomplete tasks. A day whose tasks are all completed produces no group.
// filterDate, when non-empty, restricts to that day.
func Groups(tasks []model.Task, filterDate string, today time.Time) []Group {
	sorted := Sort(filterByDate(tasks, filterDate))

	groups := []Group{}
	for _, t := range sorted {
		if t.Completed {
			continue
		}
		if len(groups) == 0 || groups[len(groups)-1].Date != t.Date {
			groups = append(groups, Group{
				Label: Label(t.Date, today),
				Date:  t.Date,
			})
		}
		last := len(groups) - 1
		groups[last].Tasks = append(groups[last].Tasks, t)
	}
	return groups
}

// Completed collects the completed tasks, optionally restricted to one day,
// in the same composite date/time order as the groups.
func Completed(tasks []model.Task, filterDate string) []model.Task {
	out := []model.Task{}
	for _, t := range filterByDate(tasks, filterDate) {
		if t.Completed {
			out = append(out, t)
		}
	}
	return Sort(out)
}

// Label renders a day key for group headers: "Today", "Tomorrow",
// "Jan 2 (Overdue)" for past days, otherwise "Monday, January 2". A day key
// that does not parse is used verbatim.
func Label(day string, today time.Time) string {
	d, err := dates.ParseDay(day)
	if err != nil {
		return day
	}
	switch {
	case dates.SameDay(d, today):
		return "Today"
	case dates.SameDay(d, today.AddDate(0, 0, 1)):
		return "Tomorrow"
	case d.Before(midnight(today)):
		return d.Format("Jan 2") + " (Overdue)"
	default:
		return d.Format("Monday, January 2")
	}
}

func filterByDate(tasks []model.Task, day string) []model.Task {
	if day == "" {
		return tasks
	}
	out := []model.Task{}
	for _, t := range tasks {
		if t.Date == day {
			out = append(out, t)
		}
	}
	return out
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
