package task

import (
	"context"

	"quick-task-capture/internal/model"
)

// UseCase defines the business logic interface for the quick-capture domain.
type UseCase interface {
	// QuickCapture creates a task from a free-text title, resolving any
	// embedded temporal phrase into a schedule and best-effort syncing it
	// to Google Calendar.
	QuickCapture(ctx context.Context, sc model.Scope, input QuickCaptureInput) (QuickCaptureOutput, error)

	// Preview parses a title without creating anything. Called on every
	// keystroke of the title field to drive the inline schedule chip.
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)

	// List returns the caller's tasks, most recent first.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)

	// Detail returns a single task by ID.
	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// Update replaces a task's title, re-running the temporal parser.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)

	// Delete removes a task and its calendar event when one exists.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
