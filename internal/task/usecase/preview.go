package usecase

import (
	"context"

	"quick-task-capture/internal/task"
	"quick-task-capture/pkg/naturaldate"
)

// Preview runs the temporal parser without side effects. An unrecognized
// title is not an error: the output simply reports no match.
func (uc *implUseCase) Preview(ctx context.Context, input task.PreviewInput) (task.PreviewOutput, error) {
	now := uc.clock().In(uc.loc)

	parsed := naturaldate.ParseAt(input.Title, now)
	if parsed == nil {
		return task.PreviewOutput{}, nil
	}

	scheduled := parsed.ScheduledFor
	return task.PreviewOutput{
		Matched:      true,
		ScheduledFor: &scheduled,
		CleanedTitle: parsed.CleanedTitle,
		Label:        naturaldate.FormatPreviewAt(scheduled, now),
	}, nil
}
