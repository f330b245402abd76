package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrksrus/dual-focus/internal/model"
)

func testTasks() []model.Task {
	return []model.Task{
		{ID: "a", Title: "selected day", Date: "2024-07-15"},
		{ID: "b", Title: "other day", Date: "2024-07-20"},
		{ID: "c", Title: "done", Date: "2024-07-15", Completed: true},
	}
}

func TestCompose_CalendarOnly(t *testing.T) {
	now := time.Date(2024, 7, 15, 9, 0, 0, 0, time.Local)

	s := Compose(model.ViewCalendar, testTasks(), "2024-07-15", 2024, time.July, time.Sunday, now)

	require.NotNil(t, s.Month)
	assert.Nil(t, s.List)
	assert.Equal(t, "July 2024", s.Month.Title)
	assert.Equal(t, MonthKey{Year: 2024, Month: time.June}, s.Month.Prev)
	assert.Equal(t, MonthKey{Year: 2024, Month: time.August}, s.Month.Next)
	assert.Zero(t, len(s.Month.Cells)%7)
}

func TestCompose_ListIgnoresSelection(t *testing.T) {
	now := time.Date(2024, 7, 15, 9, 0, 0, 0, time.Local)

	s := Compose(model.ViewList, testTasks(), "2024-07-15", 2024, time.July, time.Sunday, now)

	assert.Nil(t, s.Month)
	require.NotNil(t, s.List)
	require.Len(t, s.List.Groups, 2, "list mode shows every day")
	assert.Len(t, s.List.Completed, 1)
}

func TestCompose_SplitFiltersListToSelectedDay(t *testing.T) {
	now := time.Date(2024, 7, 15, 9, 0, 0, 0, time.Local)

	s := Compose(model.ViewSplit, testTasks(), "2024-07-15", 2024, time.July, time.Sunday, now)

	require.NotNil(t, s.Month)
	require.NotNil(t, s.List)
	require.Len(t, s.List.Groups, 1)
	assert.Equal(t, "2024-07-15", s.List.Groups[0].Date)
	require.Len(t, s.List.Groups[0].Tasks, 1)
	assert.Equal(t, model.TaskID("a"), s.List.Groups[0].Tasks[0].ID)
	require.Len(t, s.List.Completed, 1)
	assert.Equal(t, model.TaskID("c"), s.List.Completed[0].ID)
}

func TestWeekdayHeader(t *testing.T) {
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, weekdayHeader(time.Sunday))
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, weekdayHeader(time.Monday))
}
