package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"quick-task-capture/internal/model"
	"quick-task-capture/internal/task"
	"quick-task-capture/internal/task/repository"
	"quick-task-capture/internal/task/usecase"
	"quick-task-capture/pkg/gcalendar"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	fail  bool
	tasks map[string]model.Task
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: make(map[string]model.Task)}
}

func (m *mockRepo) Create(_ context.Context, t model.Task) error {
	if m.fail {
		return errors.New("store error")
	}
	m.tasks[t.ID] = t
	return nil
}

func (m *mockRepo) Get(_ context.Context, userID, id string) (model.Task, error) {
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (m *mockRepo) List(_ context.Context, userID string) ([]model.Task, error) {
	if m.fail {
		return nil, errors.New("store error")
	}
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockRepo) Update(_ context.Context, t model.Task) error {
	existing, ok := m.tasks[t.ID]
	if !ok || existing.UserID != t.UserID {
		return repository.ErrNotFound
	}
	m.tasks[t.ID] = t
	return nil
}

func (m *mockRepo) Delete(_ context.Context, userID, id string) error {
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return repository.ErrNotFound
	}
	delete(m.tasks, id)
	return nil
}

type mockCalendar struct {
	fail     bool
	created  int
	listed   int
	deleted  []string
	existing []gcalendar.Event // returned by ListEvents as the busy slots
}

func (m *mockCalendar) CreateEvent(_ context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("cal error")
	}
	m.created++
	return &gcalendar.Event{ID: "event-1", HtmlLink: "http://cal.link/event-1"}, nil
}

func (m *mockCalendar) ListEvents(_ context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("cal error")
	}
	m.listed++
	return m.existing, nil
}

func (m *mockCalendar) DeleteEvent(_ context.Context, calendarID, eventID string) error {
	if m.fail {
		return errors.New("cal error")
	}
	m.deleted = append(m.deleted, eventID)
	return nil
}

// Reference clock: Wednesday, Jan 15, 2025, 10:00 UTC.
var testNow = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func newTestUseCase(repo *mockRepo, cal usecase.Calendar) task.UseCase {
	return usecase.New(&mockLogger{}, repo, cal, usecase.Config{
		Timezone: "UTC",
		Clock:    func() time.Time { return testNow },
	})
}

var sc = model.Scope{UserID: "user-1"}

func TestQuickCapture(t *testing.T) {
	t.Run("scheduled task creates calendar event", func(t *testing.T) {
		repo := newMockRepo()
		cal := &mockCalendar{}
		uc := newTestUseCase(repo, cal)

		out, err := uc.QuickCapture(context.Background(), sc, task.QuickCaptureInput{Title: "Dentist tomorrow 3pm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Task.Title != "Dentist" {
			t.Errorf("title = %q, want %q", out.Task.Title, "Dentist")
		}
		if out.Task.RawTitle != "Dentist tomorrow 3pm" {
			t.Errorf("raw title = %q", out.Task.RawTitle)
		}
		want := time.Date(2025, 1, 16, 15, 0, 0, 0, time.UTC)
		if out.Task.ScheduledFor == nil || !out.Task.ScheduledFor.Equal(want) {
			t.Errorf("scheduledFor = %v, want %v", out.Task.ScheduledFor, want)
		}
		if out.Preview != "Tomorrow 3pm" {
			t.Errorf("preview = %q, want %q", out.Preview, "Tomorrow 3pm")
		}
		if cal.created != 1 {
			t.Errorf("calendar events created = %d, want 1", cal.created)
		}
		if cal.listed != 1 {
			t.Errorf("conflict lookups = %d, want 1", cal.listed)
		}
		if out.Task.CalendarLink != "http://cal.link/event-1" {
			t.Errorf("calendar link = %q", out.Task.CalendarLink)
		}
		if len(repo.tasks) != 1 {
			t.Errorf("stored tasks = %d, want 1", len(repo.tasks))
		}
	})

	t.Run("plain title is stored unscheduled", func(t *testing.T) {
		repo := newMockRepo()
		cal := &mockCalendar{}
		uc := newTestUseCase(repo, cal)

		out, err := uc.QuickCapture(context.Background(), sc, task.QuickCaptureInput{Title: "Buy groceries"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.ScheduledFor != nil {
			t.Errorf("expected no schedule, got %v", out.Task.ScheduledFor)
		}
		if out.Preview != "" {
			t.Errorf("preview = %q, want empty", out.Preview)
		}
		if cal.created != 0 {
			t.Errorf("calendar events created = %d, want 0", cal.created)
		}
		if cal.listed != 0 {
			t.Errorf("conflict lookups = %d, want 0", cal.listed)
		}
	})

	t.Run("busy slot is reported but never blocks the capture", func(t *testing.T) {
		repo := newMockRepo()
		cal := &mockCalendar{existing: []gcalendar.Event{{ID: "busy-1", Summary: "Sprint review"}}}
		uc := newTestUseCase(repo, cal)

		out, err := uc.QuickCapture(context.Background(), sc, task.QuickCaptureInput{Title: "Dentist tomorrow 3pm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cal.listed != 1 {
			t.Errorf("conflict lookups = %d, want 1", cal.listed)
		}
		if cal.created != 1 {
			t.Errorf("calendar events created = %d, want 1", cal.created)
		}
		if out.Task.CalendarEventID != "event-1" {
			t.Errorf("calendar event id = %q, want %q", out.Task.CalendarEventID, "event-1")
		}
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		uc := newTestUseCase(newMockRepo(), nil)

		_, err := uc.QuickCapture(context.Background(), sc, task.QuickCaptureInput{Title: "   "})
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Fatalf("err = %v, want ErrEmptyTitle", err)
		}
	})

	t.Run("calendar failure does not fail the capture", func(t *testing.T) {
		repo := newMockRepo()
		uc := newTestUseCase(repo, &mockCalendar{fail: true})

		out, err := uc.QuickCapture(context.Background(), sc, task.QuickCaptureInput{Title: "Standup 9am"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.CalendarLink != "" {
			t.Errorf("calendar link = %q, want empty", out.Task.CalendarLink)
		}
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		repo := newMockRepo()
		repo.fail = true
		uc := newTestUseCase(repo, nil)

		if _, err := uc.QuickCapture(context.Background(), sc, task.QuickCaptureInput{Title: "Report Monday"}); err == nil {
			t.Fatalf("expected store error")
		}
	})
}

func TestPreview(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), nil)

	t.Run("matched", func(t *testing.T) {
		out, err := uc.Preview(context.Background(), task.PreviewInput{Title: "Happy hour Friday 2pm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Matched {
			t.Fatalf("expected a match")
		}
		if out.CleanedTitle != "Happy hour" {
			t.Errorf("cleaned title = %q", out.CleanedTitle)
		}
		if out.Label != "Friday 2pm" {
			t.Errorf("label = %q, want %q", out.Label, "Friday 2pm")
		}
		want := time.Date(2025, 1, 17, 14, 0, 0, 0, time.UTC)
		if out.ScheduledFor == nil || !out.ScheduledFor.Equal(want) {
			t.Errorf("scheduledFor = %v, want %v", out.ScheduledFor, want)
		}
	})

	t.Run("no temporal phrase", func(t *testing.T) {
		out, err := uc.Preview(context.Background(), task.PreviewInput{Title: "Buy groceries"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Matched || out.ScheduledFor != nil || out.Label != "" {
			t.Errorf("expected empty preview, got %+v", out)
		}
	})
}

func TestUpdate(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(repo, nil)

	created, err := uc.QuickCapture(context.Background(), sc, task.QuickCaptureInput{Title: "Report Monday"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	t.Run("reparses the new title", func(t *testing.T) {
		updated, err := uc.Update(context.Background(), sc, task.UpdateInput{ID: created.Task.ID, Title: "Report in 2 days"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 1, 17, 9, 0, 0, 0, time.UTC)
		if updated.ScheduledFor == nil || !updated.ScheduledFor.Equal(want) {
			t.Errorf("scheduledFor = %v, want %v", updated.ScheduledFor, want)
		}
		if updated.Title != "Report" {
			t.Errorf("title = %q, want %q", updated.Title, "Report")
		}
	})

	t.Run("plain title clears the schedule", func(t *testing.T) {
		updated, err := uc.Update(context.Background(), sc, task.UpdateInput{ID: created.Task.ID, Title: "Report"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ScheduledFor != nil {
			t.Errorf("expected cleared schedule, got %v", updated.ScheduledFor)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := uc.Update(context.Background(), sc, task.UpdateInput{ID: "missing", Title: "Anything"})
		if !errors.Is(err, task.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestDelete(t *testing.T) {
	repo := newMockRepo()
	cal := &mockCalendar{}
	uc := newTestUseCase(repo, cal)

	created, err := uc.QuickCapture(context.Background(), sc, task.QuickCaptureInput{Title: "Dentist tomorrow 3pm"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	t.Run("removes task and calendar event", func(t *testing.T) {
		if err := uc.Delete(context.Background(), sc, created.Task.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.tasks) != 0 {
			t.Errorf("stored tasks = %d, want 0", len(repo.tasks))
		}
		if len(cal.deleted) != 1 || cal.deleted[0] != "event-1" {
			t.Errorf("deleted events = %v, want [event-1]", cal.deleted)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		if err := uc.Delete(context.Background(), sc, "missing"); !errors.Is(err, task.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("other user's task is invisible", func(t *testing.T) {
		out, err := uc.QuickCapture(context.Background(), sc, task.QuickCaptureInput{Title: "Private task"})
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
		other := model.Scope{UserID: "user-2"}
		if err := uc.Delete(context.Background(), other, out.Task.ID); !errors.Is(err, task.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}
