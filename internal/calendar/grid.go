package calendar

import (
	"strings"
	"time"

	"github.com/mrksrus/dual-focus/internal/dates"
	"github.com/mrksrus/dual-focus/internal/model"
)

// MaxDots is the largest incomplete-task count still rendered as individual
// dots; anything above it collapses into a numeric badge.
const MaxDots = 3

type IndicatorKind string

const (
	IndicatorNone  IndicatorKind = "none"
	IndicatorDots  IndicatorKind = "dots"
	IndicatorBadge IndicatorKind = "badge"
)

// Indicator is the display policy for a cell's incomplete-task count.
type Indicator struct {
	Kind  IndicatorKind `json:"kind"`
	Dots  int           `json:"dots,omitempty"`
	Badge int           `json:"badge,omitempty"`
}

// Cell is one day in the month grid. Cells outside the reference month are
// kept (dimmed in the UI) so the grid is always whole weeks.
type Cell struct {
	Date       string    `json:"date"`
	Day        int       `json:"day"`
	InMonth    bool      `json:"isCurrentMonth"`
	Today      bool      `json:"isToday"`
	Selected   bool      `json:"isSelected"`
	Incomplete int       `json:"incompleteCount"`
	Indicator  Indicator `json:"indicator"`
}

type Options struct {
	WeekStart time.Weekday
	Selected  string
	Tasks     []model.Task
	Now       time.Time
}

// Grid computes the day cells for a reference month: whole weeks from the
// configured week start on or before the 1st through the week end on or
// after the last day. Each cell carries the count of incomplete tasks whose
// date matches it; completed tasks never affect the count.
func Grid(year int, month time.Month, opts Options) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	start := first
	for start.Weekday() != opts.WeekStart {
		start = start.AddDate(0, 0, -1)
	}
	weekEnd := (opts.WeekStart + 6) % 7
	end := last
	for end.Weekday() != weekEnd {
		end = end.AddDate(0, 0, 1)
	}

	counts := map[string]int{}
	for _, t := range opts.Tasks {
		if !t.Completed {
			counts[t.Date]++
		}
	}

	todayKey := dates.Today(opts.Now)

	cells := []Cell{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := dates.FormatDay(d)
		n := counts[key]
		cells = append(cells, Cell{
			Date:       key,
			Day:        d.Day(),
			InMonth:    d.Month() == month && d.Year() == year,
			Today:      key == todayKey,
			Selected:   key == opts.Selected,
			Incomplete: n,
			Indicator:  indicatorFor(n),
		})
	}
	return cells
}

func indicatorFor(count int) Indicator {
	switch {
	case count <= 0:
		return Indicator{Kind: IndicatorNone}
	case count <= MaxDots:
		return Indicator{Kind: IndicatorDots, Dots: count}
	default:
		return Indicator{Kind: IndicatorBadge, Badge: count}
	}
}

// Title renders the grid header, e.g. "January 2026".
func Title(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

func NextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}

// ParseWeekday maps a config value like "sunday" or "mon" to a weekday.
func ParseWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday", "sun":
		return time.Sunday, true
	case "monday", "mon":
		return time.Monday, true
	case "tuesday", "tue":
		return time.Tuesday, true
	case "wednesday", "wed":
		return time.Wednesday, true
	case "thursday", "thu":
		return time.Thursday, true
	case "friday", "fri":
		return time.Friday, true
	case "saturday", "sat":
		return time.Saturday, true
	default:
		return time.Sunday, false
	}
}
