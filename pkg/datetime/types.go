// Package datetime extracts month/day dates and times of day from
// heterogeneous schedule text: slash/dash/dot Gregorian notation,
// Korean 년/월/일 notation, 오전/오후 12-hour markers, and bare
// 24-hour clocks.
package datetime

import "fmt"

// Period is a 12-hour clock marker. The Korean markers are kept as
// display text because the output is a display string, not a timestamp.
type Period string

const (
	PeriodNone Period = ""
	PeriodAM   Period = "오전"
	PeriodPM   Period = "오후"
)

// TimeOfDay is a clock reading kept as matched source text.
type TimeOfDay struct {
	// Period is the AM/PM marker, or PeriodNone for 24-hour matches.
	Period Period

	// Clock is the H:MM or HH:MM text exactly as matched.
	Clock string
}

// String renders the time for display. A period marker and the clock
// are always joined with exactly one space, however many whitespace
// characters separated them in the source.
func (t TimeOfDay) String() string {
	if t.Period != PeriodNone {
		return string(t.Period) + " " + t.Clock
	}
	return t.Clock
}

// Date is a normalized month/day pair with an optional attached time.
// The source year is discarded during extraction; the digest is scoped
// to within-year scheduling.
type Date struct {
	Month int
	Day   int

	// Time is non-nil when a time of day was found alongside the date.
	Time *TimeOfDay
}

// DateString renders the compact M/D form with leading zeros stripped.
func (d Date) DateString() string {
	return fmt.Sprintf("%d/%d", d.Month, d.Day)
}

// String renders M/D, followed by the attached time when present.
func (d Date) String() string {
	if d.Time != nil {
		return d.DateString() + " " + d.Time.String()
	}
	return d.DateString()
}
