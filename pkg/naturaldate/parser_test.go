package naturaldate_test

import (
	"testing"
	"time"

	"quick-task-capture/pkg/naturaldate"
)

// Reference clock for all parser tests: Wednesday, Jan 15, 2025, 10:00.
var refNow = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func date(day, hour, minute int) time.Time {
	return time.Date(2025, 1, day, hour, minute, 0, 0, time.UTC)
}

func TestParseAt(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		wantTime    time.Time
		wantCleaned string
	}{
		{
			name:        "Today literal",
			title:       "Call mom today",
			wantTime:    date(15, 9, 0),
			wantCleaned: "Call mom",
		},
		{
			name:        "Tomorrow literal",
			title:       "Meeting tomorrow",
			wantTime:    date(16, 9, 0),
			wantCleaned: "Meeting",
		},
		{
			name:        "Yesterday literal",
			title:       "Called doctor yesterday",
			wantTime:    date(14, 9, 0),
			wantCleaned: "Called doctor",
		},
		{
			name:        "Time only not yet passed",
			title:       "Meeting at 3pm",
			wantTime:    date(15, 15, 0),
			wantCleaned: "Meeting",
		},
		{
			name:        "Time only already passed rolls to next day",
			title:       "Standup 9am",
			wantTime:    date(16, 9, 0),
			wantCleaned: "Standup",
		},
		{
			name:        "Time with minutes",
			title:       "Call at 3:30pm",
			wantTime:    date(15, 15, 30),
			wantCleaned: "Call",
		},
		{
			name:        "Date and time combined",
			title:       "Dentist tomorrow 3pm",
			wantTime:    date(16, 15, 0),
			wantCleaned: "Dentist",
		},
		{
			name:        "Bare weekday resolves to next occurrence",
			title:       "Report Monday",
			wantTime:    date(20, 9, 0),
			wantCleaned: "Report",
		},
		{
			name:        "Next weekday",
			title:       "Planning next Monday",
			wantTime:    date(20, 9, 0),
			wantCleaned: "Planning",
		},
		{
			name:        "Weekday with time",
			title:       "Happy hour Friday 2pm",
			wantTime:    date(17, 14, 0),
			wantCleaned: "Happy hour",
		},
		{
			name:        "Abbreviated weekday",
			title:       "Gym mon",
			wantTime:    date(20, 9, 0),
			wantCleaned: "Gym",
		},
		{
			name:        "In N days",
			title:       "Follow up in 2 days",
			wantTime:    date(17, 9, 0),
			wantCleaned: "Follow up",
		},
		{
			name:        "In N weeks",
			title:       "Review in 1 week",
			wantTime:    date(22, 9, 0),
			wantCleaned: "Review",
		},
		{
			name:        "Next week",
			title:       "Sprint planning next week",
			wantTime:    date(22, 9, 0),
			wantCleaned: "Sprint planning",
		},
		{
			name:        "Same weekday as reference is strictly future",
			title:       "Standup Wednesday",
			wantTime:    date(22, 9, 0),
			wantCleaned: "Standup",
		},
		{
			name:        "Noon is 12pm",
			title:       "Lunch 12pm",
			wantTime:    date(15, 12, 0),
			wantCleaned: "Lunch",
		},
		{
			name:        "Midnight is 12am and rolls forward",
			title:       "Backup at 12am",
			wantTime:    date(16, 0, 0),
			wantCleaned: "Backup",
		},
		{
			name:        "Stripping everything keeps original title",
			title:       "tomorrow",
			wantTime:    date(16, 9, 0),
			wantCleaned: "tomorrow",
		},
		{
			name:        "Whitespace runs collapse",
			title:       "Call   mom   tomorrow",
			wantTime:    date(16, 9, 0),
			wantCleaned: "Call mom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := naturaldate.ParseAt(tt.title, refNow)
			if got == nil {
				t.Fatalf("ParseAt(%q) = nil, want result", tt.title)
			}
			if !got.ScheduledFor.Equal(tt.wantTime) {
				t.Errorf("ScheduledFor = %v, want %v", got.ScheduledFor, tt.wantTime)
			}
			if got.CleanedTitle != tt.wantCleaned {
				t.Errorf("CleanedTitle = %q, want %q", got.CleanedTitle, tt.wantCleaned)
			}
		})
	}
}

func TestParseAtNoCue(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{name: "Plain text", title: "Buy groceries"},
		{name: "Empty string", title: ""},
		{name: "Whitespace only", title: "   "},
		{name: "Out of range hour left as text", title: "Flight 13pm"},
		{name: "Weekday inside a longer word", title: "Save money"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := naturaldate.ParseAt(tt.title, refNow); got != nil {
				t.Errorf("ParseAt(%q) = %+v, want nil", tt.title, got)
			}
		})
	}
}

// Re-parsing a cleaned title that no longer carries a temporal phrase must
// return nil, so a caller can feed its own output back in safely.
func TestParseAtIdempotent(t *testing.T) {
	titles := []string{
		"Dentist tomorrow 3pm",
		"Report Monday",
		"Follow up in 2 days",
		"Meeting at 3pm",
	}

	for _, title := range titles {
		first := naturaldate.ParseAt(title, refNow)
		if first == nil {
			t.Fatalf("ParseAt(%q) = nil, want result", title)
		}
		if second := naturaldate.ParseAt(first.CleanedTitle, refNow); second != nil {
			t.Errorf("re-parsing %q returned %+v, want nil", first.CleanedTitle, second)
		}
	}
}
