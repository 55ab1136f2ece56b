package task

import (
	"time"

	"quick-task-capture/internal/model"
)

// QuickCaptureInput is the raw title typed by the user.
type QuickCaptureInput struct {
	Title string
}

// QuickCaptureOutput carries the stored task plus the preview label shown
// in the confirmation chip.
type QuickCaptureOutput struct {
	Task    model.Task
	Preview string
}

// PreviewInput is a title to parse without persisting anything.
type PreviewInput struct {
	Title string
}

// PreviewOutput is the live parse result. Matched is false when the title
// contains no recognizable temporal phrase; the other fields are then empty.
type PreviewOutput struct {
	Matched      bool
	ScheduledFor *time.Time
	CleanedTitle string
	Label        string
}

// UpdateInput replaces a task's title.
type UpdateInput struct {
	ID    string
	Title string
}

// ListOutput is the caller's task list.
type ListOutput struct {
	Tasks []model.Task
}
