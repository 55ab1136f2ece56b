package naturaldate_test

import (
	"testing"
	"time"

	"quick-task-capture/pkg/naturaldate"
)

func TestFormatPreviewAt(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name string
		when time.Time
		want string
	}{
		{
			name: "Same day",
			when: time.Date(2025, 1, 15, 15, 0, 0, 0, time.UTC),
			want: "Today 3pm",
		},
		{
			name: "Same day ignores time of day",
			when: time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC),
			want: "Today 8am",
		},
		{
			name: "Next day with minutes",
			when: time.Date(2025, 1, 16, 9, 30, 0, 0, time.UTC),
			want: "Tomorrow 9:30am",
		},
		{
			name: "Within the week uses weekday name",
			when: time.Date(2025, 1, 17, 14, 0, 0, 0, time.UTC),
			want: "Friday 2pm",
		},
		{
			name: "Six days out still a weekday",
			when: time.Date(2025, 1, 21, 11, 0, 0, 0, time.UTC),
			want: "Tuesday 11am",
		},
		{
			name: "A week out falls back to month and day",
			when: time.Date(2025, 1, 22, 9, 0, 0, 0, time.UTC),
			want: "Jan 22 9am",
		},
		{
			name: "Weeks out",
			when: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
			want: "Feb 1 10am",
		},
		{
			name: "Past dates fall back to month and day",
			when: time.Date(2025, 1, 10, 16, 0, 0, 0, time.UTC),
			want: "Jan 10 4pm",
		},
		{
			name: "Noon",
			when: time.Date(2025, 1, 16, 12, 0, 0, 0, time.UTC),
			want: "Tomorrow 12pm",
		},
		{
			name: "Midnight",
			when: time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC),
			want: "Tomorrow 12am",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := naturaldate.FormatPreviewAt(tt.when, now); got != tt.want {
				t.Errorf("FormatPreviewAt(%v) = %q, want %q", tt.when, got, tt.want)
			}
		})
	}
}

func TestFormatPreviewAtDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	tests := []struct {
		name string
		now  time.Time
		when time.Time
		want string
	}{
		{
			// 2025-03-09 is a 23-hour day in New York (clocks jump at 2am).
			name: "Across spring forward",
			now:  time.Date(2025, 3, 9, 8, 0, 0, 0, loc),
			when: time.Date(2025, 3, 10, 15, 0, 0, 0, loc),
			want: "Tomorrow 3pm",
		},
		{
			// 2025-11-02 is a 25-hour day.
			name: "Across fall back",
			now:  time.Date(2025, 11, 2, 8, 0, 0, 0, loc),
			when: time.Date(2025, 11, 3, 9, 0, 0, 0, loc),
			want: "Tomorrow 9am",
		},
		{
			name: "Weekday tier across spring forward",
			now:  time.Date(2025, 3, 8, 10, 0, 0, 0, loc), // Saturday
			when: time.Date(2025, 3, 11, 14, 0, 0, 0, loc),
			want: "Tuesday 2pm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := naturaldate.FormatPreviewAt(tt.when, tt.now); got != tt.want {
				t.Errorf("FormatPreviewAt(%v) = %q, want %q", tt.when, got, tt.want)
			}
		})
	}
}
