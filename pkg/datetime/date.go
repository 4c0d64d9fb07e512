package datetime

import (
	"regexp"
	"strconv"
)

// DatePattern represents a known date notation.
type DatePattern struct {
	Name       string         // Human-readable name
	Pattern    *regexp.Regexp // Compiled regex with year/month/day groups
	MonthGroup int            // Capture group index of the month
	DayGroup   int            // Capture group index of the day
	Examples   []string       // Example dates
}

// DefaultDatePatterns returns the built-in date notations to try.
// Patterns are tried in order; the first match wins, so the numeric
// notation takes precedence over the Korean one.
func DefaultDatePatterns() []*DatePattern {
	return []*DatePattern{
		// YYYY/MM/DD, YYYY-MM-DD, YYYY.MM.DD; the separators are
		// interchangeable and may differ within one date.
		{
			Name:       "Numeric year-month-day",
			Pattern:    regexp.MustCompile(`(\d{4})[/\-.](\d{1,2})[/\-.](\d{1,2})`),
			MonthGroup: 2,
			DayGroup:   3,
			Examples:   []string{"2025/03/07", "2025-3-7", "2025.03.07"},
		},
		// YYYY년 M월 D일 with arbitrary whitespace around each marker.
		{
			Name:       "Korean year-month-day",
			Pattern:    regexp.MustCompile(`(\d{4})\s*년\s*(\d{1,2})\s*월\s*(\d{1,2})\s*일`),
			MonthGroup: 2,
			DayGroup:   3,
			Examples:   []string{"2025년 3월 7일", "2025년3월7일"},
		},
	}
}

var datePatterns = DefaultDatePatterns()

// ExtractDate scans text for a recognized date notation and returns the
// normalized month/day pair. The year is matched but discarded. Returns
// ok=false when no notation matches or the captured numbers do not
// parse; malformed input is never an error.
func ExtractDate(text string) (Date, bool) {
	for _, p := range datePatterns {
		m := p.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		month, err := strconv.Atoi(m[p.MonthGroup])
		if err != nil {
			continue
		}
		day, err := strconv.Atoi(m[p.DayGroup])
		if err != nil {
			continue
		}

		return Date{Month: month, Day: day}, true
	}
	return Date{}, false
}

// ExtractDateTime extracts a date and, when the same text also carries
// a recognizable time of day, attaches it. A failed date extraction
// short-circuits without attempting time extraction.
func ExtractDateTime(text string) (Date, bool) {
	d, ok := ExtractDate(text)
	if !ok {
		return Date{}, false
	}

	if t, ok := ExtractTime(text); ok {
		d.Time = &t
	}
	return d, true
}
