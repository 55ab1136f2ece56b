// Package naturaldate recognizes natural-language temporal phrases embedded in
// free-text task titles ("tomorrow 3pm", "next monday", "in 2 days") and
// resolves them against a reference time. It also renders resolved times back
// into short preview labels ("Today 3pm", "Friday 2pm", "Feb 1 10am").
//
// There is no error channel: any text that does not match a known grammar is
// treated as plain text and a nil result is returned.
package naturaldate

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// defaultHour is the time-of-day used when a date cue resolves without a
// clock time. Morning default, matching common reminder conventions.
const defaultHour = 9

// Result is the output of a successful parse.
type Result struct {
	ScheduledFor time.Time
	CleanedTitle string
}

// Parse scans title for a temporal phrase using the real clock as reference.
// It returns nil when no date or time cue is found.
func Parse(title string) *Result {
	return ParseAt(title, time.Now())
}

// ParseAt is the deterministic core of Parse: all relative phrases are
// resolved against now, which makes the behavior reproducible in tests.
func ParseAt(title string, now time.Time) *Result {
	if strings.TrimSpace(title) == "" {
		return nil
	}

	var spans [][2]int

	cue, span, found := findDateCue(title)
	if found {
		spans = append(spans, span)
	}

	tc, tspan, timed := findTimeCue(title)
	if timed {
		spans = append(spans, tspan)
	}

	if !found && !timed {
		return nil
	}

	var scheduled time.Time
	switch {
	case found && timed:
		// Explicit date: the clock time applies as-is, no rollover.
		d := cue.resolve(now)
		scheduled = time.Date(d.Year(), d.Month(), d.Day(), tc.hour, tc.minute, 0, 0, now.Location())
	case found:
		d := cue.resolve(now)
		scheduled = time.Date(d.Year(), d.Month(), d.Day(), defaultHour, 0, 0, 0, now.Location())
	default:
		// Time only: the next occurrence of that clock time.
		scheduled = time.Date(now.Year(), now.Month(), now.Day(), tc.hour, tc.minute, 0, 0, now.Location())
		if !scheduled.After(now) {
			scheduled = scheduled.AddDate(0, 0, 1)
		}
	}

	cleaned := stripSpans(title, spans)
	if cleaned == "" {
		// Stripping would leave an empty title; keep the original verbatim.
		cleaned = title
	}

	return &Result{ScheduledFor: scheduled, CleanedTitle: cleaned}
}

// findDateCue tries each grammar rule in precedence order and returns the
// first matching cue together with the span of the matched phrase.
func findDateCue(title string) (dateCue, [2]int, bool) {
	for _, r := range dateRules {
		loc := r.re.FindStringSubmatchIndex(title)
		if loc == nil {
			continue
		}
		return r.build(submatches(title, loc)), [2]int{loc[0], loc[1]}, true
	}
	return nil, [2]int{}, false
}

// findTimeCue scans for a 12-hour clock expression. Matches with an hour
// outside 1-12 are skipped, leaving them as plain text.
func findTimeCue(title string) (timeCue, [2]int, bool) {
	for _, loc := range timePattern.FindAllStringSubmatchIndex(title, -1) {
		m := submatches(title, loc)

		hour, _ := strconv.Atoi(m[1])
		if hour < 1 || hour > 12 {
			continue
		}

		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}

		if strings.EqualFold(m[3], "pm") {
			if hour != 12 {
				hour += 12
			}
		} else if hour == 12 {
			hour = 0
		}

		return timeCue{hour: hour, minute: minute}, [2]int{loc[0], loc[1]}, true
	}
	return timeCue{}, [2]int{}, false
}

// submatches extracts the matched text for each capture group from a
// FindStringSubmatchIndex result. Absent groups become empty strings.
func submatches(s string, loc []int) []string {
	out := make([]string, 0, len(loc)/2)
	for i := 0; i < len(loc); i += 2 {
		if loc[i] < 0 {
			out = append(out, "")
			continue
		}
		out = append(out, s[loc[i]:loc[i+1]])
	}
	return out
}

// stripSpans removes the given byte ranges from s and normalizes whitespace:
// internal runs collapse to single spaces and the result is trimmed.
func stripSpans(s string, spans [][2]int) string {
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] > spans[j][0] })
	for _, sp := range spans {
		s = s[:sp[0]] + " " + s[sp[1]:]
	}
	return strings.Join(strings.Fields(s), " ")
}
