package model

import (
	"time"
)

type TaskID string

// Task is a single dated to-do item. Date is a calendar day in YYYY-MM-DD
// form; Time is an optional HH:MM clock time on that day. Description and
// Time distinguish "absent" (nil) from "empty".
type Task struct {
	ID          TaskID    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Date        string    `json:"date"`
	Time        *string   `json:"time,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TaskUpsert is the creation request shape.
type TaskUpsert struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date"`
	Time        *string `json:"time,omitempty"`
}

type ViewMode string

const (
	ViewCalendar ViewMode = "calendar"
	ViewList     ViewMode = "list"
	ViewSplit    ViewMode = "split"
)

// ParseViewMode maps a query/config string to a view mode, defaulting to split.
func ParseViewMode(s string) ViewMode {
	switch ViewMode(s) {
	case ViewCalendar, ViewList, ViewSplit:
		return ViewMode(s)
	default:
		return ViewSplit
	}
}
