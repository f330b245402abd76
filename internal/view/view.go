package view

import (
	"time"

	"github.com/mrksrus/dual-focus/internal/agenda"
	"github.com/mrksrus/dual-focus/internal/calendar"
	"github.com/mrksrus/dual-focus/internal/model"
)

// State is the full render snapshot for one view mode. Consumers are pure
// functions of the latest task collection; nothing here is patched
// incrementally.
type State struct {
	Mode         model.ViewMode `json:"mode"`
	SelectedDate string         `json:"selectedDate,omitempty"`
	Month        *MonthState    `json:"month,omitempty"`
	List         *ListState     `json:"list,omitempty"`
}

type MonthKey struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

type MonthState struct {
	Year     int             `json:"year"`
	Month    time.Month      `json:"month"`
	Title    string          `json:"title"`
	Prev     MonthKey        `json:"prev"`
	Next     MonthKey        `json:"next"`
	Weekdays []string        `json:"weekdays"`
	Cells    []calendar.Cell `json:"cells"`
}

type ListState struct {
	Groups    []agenda.Group `json:"groups"`
	Completed []model.Task   `json:"completed"`
}

// Compose builds the snapshot for a mode. Split shows the calendar next to
// the list filtered to the selected day; the standalone list ignores the
// selection and shows everything, matching the original dual-pane layout.
func Compose(mode model.ViewMode, tasks []model.Task, selected string, year int, month time.Month, weekStart time.Weekday, now time.Time) State {
	s := State{Mode: mode, SelectedDate: selected}

	if mode == model.ViewCalendar || mode == model.ViewSplit {
		py, pm := calendar.PrevMonth(year, month)
		ny, nm := calendar.NextMonth(year, month)
		s.Month = &MonthState{
			Year:     year,
			Month:    month,
			Title:    calendar.Title(year, month),
			Prev:     MonthKey{Year: py, Month: pm},
			Next:     MonthKey{Year: ny, Month: nm},
			Weekdays: weekdayHeader(weekStart),
			Cells: calendar.Grid(year, month, calendar.Options{
				WeekStart: weekStart,
				Selected:  selected,
				Tasks:     tasks,
				Now:       now,
			}),
		}
	}

	if mode == model.ViewList || mode == model.ViewSplit {
		filterDate := ""
		if mode == model.ViewSplit {
			filterDate = selected
		}
		s.List = &ListState{
			Groups:    agenda.Groups(tasks, filterDate, now),
			Completed: agenda.Completed(tasks, filterDate),
		}
	}

	return s
}

func weekdayHeader(start time.Weekday) []string {
	out := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		out = append(out, time.Weekday((int(start)+i)%7).String()[:3])
	}
	return out
}
