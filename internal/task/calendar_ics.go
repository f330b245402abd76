package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/mrksrus/dual-focus/internal/dates"
	"github.com/mrksrus/dual-focus/internal/model"
)

const icsDateLayout = "20060102"

// BuildTaskICS builds a single-event iCalendar document for a task so it can
// be imported into an external calendar. Tasks without a time export as an
// all-day event; timed tasks export as a one-hour event in local time.
func BuildTaskICS(t model.Task, now time.Time) (string, error) {
	day, err := dates.ParseDay(strings.TrimSpace(t.Date))
	if err != nil {
		return "", fmt.Errorf("task date must be %s", dates.DayKey)
	}

	title := strings.TrimSpace(t.Title)
	if title == "" {
		title = "Task"
	}

	uid := fmt.Sprintf("task-%s@dual-focus", strings.TrimSpace(string(t.ID)))
	if strings.TrimSpace(string(t.ID)) == "" {
		uid = fmt.Sprintf("task-export-%d@dual-focus", now.UnixNano())
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//DualFocus//Task Export//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + escapeICSText(uid),
		"DTSTAMP:" + now.UTC().Format("20060102T150405Z"),
		"SUMMARY:" + escapeICSText(title),
	}

	if clock := taskClock(t); clock != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
		end := start.Add(time.Hour)
		lines = append(lines,
			"DTSTART:"+start.Format("20060102T150405"),
			"DTEND:"+end.Format("20060102T150405"),
		)
	} else {
		end := day.AddDate(0, 0, 1)
		lines = append(lines,
			"DTSTART;VALUE=DATE:"+day.Format(icsDateLayout),
			"DTEND;VALUE=DATE:"+end.Format(icsDateLayout),
		)
	}

	if t.Description != nil && strings.TrimSpace(*t.Description) != "" {
		lines = append(lines, "DESCRIPTION:"+escapeICSText(strings.TrimSpace(*t.Description)))
	}
	lines = append(lines, "END:VEVENT", "END:VCALENDAR", "")

	return strings.Join(lines, "\r\n"), nil
}

func taskClock(t model.Task) *time.Time {
	if t.Time == nil {
		return nil
	}
	clock, err := time.Parse(dates.ClockKey, strings.TrimSpace(*t.Time))
	if err != nil {
		return nil
	}
	return &clock
}

func escapeICSText(s string) string {
	repl := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
		"\r", "\\n",
	)
	return repl.Replace(s)
}
