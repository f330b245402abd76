package task

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrksrus/dual-focus/internal/model"
)

func TestBuildTaskICS_AllDayEvent(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	ics, err := BuildTaskICS(model.Task{
		ID:    "abc",
		Title: "pack bags",
		Date:  "2024-06-10",
	}, now)
	require.NoError(t, err)

	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "UID:task-abc@dual-focus")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20240610")
	assert.Contains(t, ics, "DTEND;VALUE=DATE:20240611")
	assert.Contains(t, ics, "SUMMARY:pack bags")
	assert.True(t, strings.HasSuffix(ics, "END:VCALENDAR\r\n"))
}

func TestBuildTaskICS_TimedEventLastsOneHour(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	ics, err := BuildTaskICS(model.Task{
		ID:    "t1",
		Title: "standup",
		Date:  "2024-06-10",
		Time:  strPtr("09:30"),
	}, now)
	require.NoError(t, err)

	assert.Contains(t, ics, "DTSTART:20240610T093000")
	assert.Contains(t, ics, "DTEND:20240610T103000")
}

func TestBuildTaskICS_RejectsBadDate(t *testing.T) {
	_, err := BuildTaskICS(model.Task{ID: "x", Title: "broken", Date: "junk"}, time.Now())
	assert.Error(t, err)
}

func TestBuildTaskICS_EscapesText(t *testing.T) {
	ics, err := BuildTaskICS(model.Task{
		ID:          "x",
		Title:       "call mom; then dad, maybe",
		Date:        "2024-06-10",
		Description: strPtr("line one\nline two"),
	}, time.Now())
	require.NoError(t, err)

	assert.Contains(t, ics, `SUMMARY:call mom\; then dad\, maybe`)
	assert.Contains(t, ics, `DESCRIPTION:line one\nline two`)
}
