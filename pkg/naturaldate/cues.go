package naturaldate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateCue is a recognized date-determining token. Each variant knows how to
// resolve itself to a calendar date relative to a reference time.
type dateCue interface {
	resolve(ref time.Time) time.Time
}

// dayOffsetCue covers the today/tomorrow/yesterday literals.
type dayOffsetCue struct {
	days int
}

func (c dayOffsetCue) resolve(ref time.Time) time.Time {
	return ref.AddDate(0, 0, c.days)
}

// weekdayCue covers bare weekday names and "next <weekday>". Resolution walks
// forward to the next matching calendar date, never the reference date itself.
type weekdayCue struct {
	day time.Weekday
}

func (c weekdayCue) resolve(ref time.Time) time.Time {
	ahead := (int(c.day) - int(ref.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return ref.AddDate(0, 0, ahead)
}

// relativeCue covers "in N days" and "in N weeks"; "next week" is the
// one-week special case.
type relativeCue struct {
	n     int
	weeks bool
}

func (c relativeCue) resolve(ref time.Time) time.Time {
	days := c.n
	if c.weeks {
		days *= 7
	}
	return ref.AddDate(0, 0, days)
}

// timeCue is a 12-hour clock time already converted to 24-hour form.
type timeCue struct {
	hour   int
	minute int
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// weekdayAlt lists name alternatives longest-first so the regexp engine
// prefers "monday" over "mon" at the same position.
const weekdayAlt = `wednesday|thursday|saturday|tuesday|thurs|monday|friday|sunday|tues|thur|mon|tue|wed|thu|fri|sat|sun`

// dateRule pairs a grammar pattern with a constructor for its cue variant.
// Rules are tried in order; the first match wins.
type dateRule struct {
	re    *regexp.Regexp
	build func(m []string) dateCue
}

var dateRules = []dateRule{
	{
		re: regexp.MustCompile(`(?i)\b(today|tomorrow|yesterday)\b`),
		build: func(m []string) dateCue {
			switch strings.ToLower(m[1]) {
			case "tomorrow":
				return dayOffsetCue{days: 1}
			case "yesterday":
				return dayOffsetCue{days: -1}
			default:
				return dayOffsetCue{days: 0}
			}
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bnext\s+(` + weekdayAlt + `)\b`),
		build: func(m []string) dateCue {
			return weekdayCue{day: weekdayNames[strings.ToLower(m[1])]}
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(` + weekdayAlt + `)\b`),
		build: func(m []string) dateCue {
			return weekdayCue{day: weekdayNames[strings.ToLower(m[1])]}
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bin\s+(\d+)\s+(days?|weeks?)\b`),
		build: func(m []string) dateCue {
			n, _ := strconv.Atoi(m[1])
			return relativeCue{n: n, weeks: strings.HasPrefix(strings.ToLower(m[2]), "week")}
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bnext\s+week\b`),
		build: func(m []string) dateCue {
			return relativeCue{n: 1, weeks: true}
		},
	},
}

// timePattern matches a 12-hour clock expression with an optional leading
// "at" connective so the whole phrase can be stripped from the title.
// Out-of-range hours are rejected after the match, leaving them as plain text.
var timePattern = regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2})(?::([0-5][0-9]))?\s?(am|pm)\b`)
