package usecase

import (
	"context"
	"time"

	"quick-task-capture/internal/task/repository"
	"quick-task-capture/pkg/gcalendar"
	pkgLog "quick-task-capture/pkg/log"
)

// Calendar is the slice of the Google Calendar client the usecase needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Config is the dependency bag for the task usecase.
type Config struct {
	Timezone        string // IANA name for resolving temporal phrases
	CalendarID      string
	DefaultDuration time.Duration    // calendar event length
	Clock           func() time.Time // nil means the real clock
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	calendar Calendar // nil when calendar sync is not configured

	loc             *time.Location
	calendarID      string
	defaultDuration time.Duration
	clock           func() time.Time
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, calendar Calendar, cfg Config) *implUseCase {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	duration := cfg.DefaultDuration
	if duration <= 0 {
		duration = time.Hour
	}

	return &implUseCase{
		l:               l,
		repo:            repo,
		calendar:        calendar,
		loc:             loc,
		calendarID:      cfg.CalendarID,
		defaultDuration: duration,
		clock:           clock,
	}
}
