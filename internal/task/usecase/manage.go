package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quick-task-capture/internal/model"
	"quick-task-capture/internal/task"
	"quick-task-capture/internal/task/repository"
	"quick-task-capture/pkg/naturaldate"
)

// List returns the caller's tasks, most recent first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	tasks, err := uc.repo.List(ctx, sc.UserID)
	if err != nil {
		return task.ListOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}
	return task.ListOutput{Tasks: tasks}, nil
}

// Detail returns a single task by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.Get(ctx, sc.UserID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// Update replaces the task title and re-runs the temporal parser on it.
// A title that no longer carries a temporal phrase clears the schedule.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	t, err := uc.Detail(ctx, sc, input.ID)
	if err != nil {
		return model.Task{}, err
	}

	now := uc.clock().In(uc.loc)

	t.RawTitle = title
	t.Title = title
	t.ScheduledFor = nil
	t.UpdateTime = now

	if parsed := naturaldate.ParseAt(title, now); parsed != nil {
		scheduled := parsed.ScheduledFor
		t.Title = parsed.CleanedTitle
		t.ScheduledFor = &scheduled
	}

	if err := uc.repo.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	uc.l.Infof(ctx, "Update: user=%s task=%s scheduled=%t", sc.UserID, t.ID, t.Scheduled())

	return t, nil
}

// Delete removes the task and best-effort deletes its calendar event.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	t, err := uc.Detail(ctx, sc, id)
	if err != nil {
		return err
	}

	if uc.calendar != nil && t.CalendarEventID != "" {
		if calErr := uc.calendar.DeleteEvent(ctx, uc.calendarID, t.CalendarEventID); calErr != nil {
			uc.l.Warnf(ctx, "Delete: calendar event cleanup failed for task %s (non-fatal): %v", t.ID, calErr)
		}
	}

	if err := uc.repo.Delete(ctx, sc.UserID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
