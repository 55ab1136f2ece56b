package model

import "time"

// Task is a quick-captured task. Title holds the text with any temporal
// phrase stripped; RawTitle keeps what the user actually typed.
type Task struct {
	ID              string
	UserID          string
	Title           string
	RawTitle        string
	ScheduledFor    *time.Time // nil when no temporal phrase was recognized
	CalendarEventID string     // Google Calendar event ID, empty when not synced
	CalendarLink    string     // Google Calendar event link, empty when not synced
	CreateTime      time.Time
	UpdateTime      time.Time
}

// Scheduled reports whether the task carries a resolved schedule.
func (t Task) Scheduled() bool {
	return t.ScheduledFor != nil
}
