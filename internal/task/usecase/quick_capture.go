package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"quick-task-capture/internal/model"
	"quick-task-capture/internal/task"
	"quick-task-capture/pkg/gcalendar"
	"quick-task-capture/pkg/naturaldate"
)

// QuickCapture parses the raw title, stores the task, and best-effort
// creates a Google Calendar event when a schedule was resolved.
func (uc *implUseCase) QuickCapture(ctx context.Context, sc model.Scope, input task.QuickCaptureInput) (task.QuickCaptureOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.QuickCaptureOutput{}, task.ErrEmptyTitle
	}

	now := uc.clock().In(uc.loc)

	t := model.Task{
		ID:         uuid.NewString(),
		UserID:     sc.UserID,
		Title:      title,
		RawTitle:   title,
		CreateTime: now,
		UpdateTime: now,
	}

	var preview string
	if parsed := naturaldate.ParseAt(title, now); parsed != nil {
		scheduled := parsed.ScheduledFor
		t.Title = parsed.CleanedTitle
		t.ScheduledFor = &scheduled
		preview = naturaldate.FormatPreviewAt(scheduled, now)

		uc.tryCreateCalendarEvent(ctx, &t)
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		return task.QuickCaptureOutput{}, fmt.Errorf("failed to store task: %w", err)
	}

	uc.l.Infof(ctx, "QuickCapture: user=%s task=%s scheduled=%t", sc.UserID, t.ID, t.Scheduled())

	return task.QuickCaptureOutput{Task: t, Preview: preview}, nil
}

// tryCreateCalendarEvent fills in the task's calendar fields on success and
// degrades to empty fields on failure, never failing the capture.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t *model.Task) {
	if uc.calendar == nil || t.ScheduledFor == nil {
		return
	}

	start := *t.ScheduledFor
	end := start.Add(uc.defaultDuration)

	uc.warnOnConflicts(ctx, t.Title, start, end)

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.calendarID,
		Summary:    t.Title,
		StartTime:  start,
		EndTime:    end,
		Timezone:   uc.loc.String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "QuickCapture: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return
	}

	t.CalendarEventID = event.ID
	t.CalendarLink = event.HtmlLink
}

// warnOnConflicts looks up existing events overlapping the slot. Conflicts
// are surfaced in the log only; quick capture never blocks on a busy slot.
func (uc *implUseCase) warnOnConflicts(ctx context.Context, title string, start, end time.Time) {
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    start,
		TimeMax:    end,
		MaxResults: 10,
	})
	if err != nil {
		uc.l.Debugf(ctx, "QuickCapture: conflict lookup failed (non-fatal): %v", err)
		return
	}

	for _, ev := range events {
		uc.l.Warnf(ctx, "QuickCapture: %q overlaps existing event %q (%s)", title, ev.Summary, ev.ID)
	}
}
