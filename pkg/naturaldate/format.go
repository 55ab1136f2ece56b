package naturaldate

import (
	"fmt"
	"time"
)

// FormatPreview renders a resolved schedule as a short chip label using the
// real clock as reference.
func FormatPreview(t time.Time) string {
	return FormatPreviewAt(t, time.Now())
}

// FormatPreviewAt classifies t's proximity to now and picks a label style:
// same day "Today", next day "Tomorrow", within the week the weekday name,
// anything else an abbreviated month and day.
func FormatPreviewAt(t, now time.Time) string {
	diffDays := daysBetween(now, t)

	clock := formatClock(t)

	switch {
	case diffDays == 0:
		return "Today " + clock
	case diffDays == 1:
		return "Tomorrow " + clock
	case diffDays >= 2 && diffDays <= 6:
		return t.Weekday().String() + " " + clock
	default:
		return t.Format("Jan 2") + " " + clock
	}
}

// formatClock renders a 12-hour clock time with lower-case meridiem,
// omitting the minutes when they are exactly :00.
func formatClock(t time.Time) string {
	hour := t.Hour()
	meridiem := "am"
	if hour >= 12 {
		meridiem = "pm"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	if t.Minute() == 0 {
		return fmt.Sprintf("%d%s", hour12, meridiem)
	}
	return fmt.Sprintf("%d:%02d%s", hour12, t.Minute(), meridiem)
}

// daysBetween counts calendar-day boundaries from a to b. It compares date
// components rather than subtracting midnights, which keeps the count stable
// across DST transitions where a day is not 24 hours long.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
