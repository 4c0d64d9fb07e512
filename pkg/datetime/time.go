package datetime

import "regexp"

var (
	// parenthetical matches timezone annotations such as "(UTC)" or
	// "(KST)". They are removed before time matching so a digit inside
	// an annotation is never taken for the real clock.
	parenthetical = regexp.MustCompile(`\([^)]*\)`)

	// twelveHour matches an AM/PM marker followed by H:MM or HH:MM,
	// with any amount of whitespace between marker and clock.
	twelveHour = regexp.MustCompile(`(오전|오후)\s*(\d{1,2}:\d{2})`)

	// twentyFourHour matches a bare H:MM or HH:MM. The word boundaries
	// keep it from matching inside a longer numeric run.
	twentyFourHour = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)

	// timeHint matches anything the time extractor could work from.
	timeHint = regexp.MustCompile(`오전|오후|\b\d{1,2}:\d{2}\b`)

	// koreanDateMarker recognizes the 년/월/일 notation, which often
	// carries a trailing clock in meeting invites.
	koreanDateMarker = regexp.MustCompile(`년\s*\d{1,2}\s*월\s*\d{1,2}\s*일`)
)

// ExtractTime scans text for a time of day. Parenthesized substrings
// are stripped first, then the 12-hour notation is tried before the
// bare 24-hour one. Returns ok=false when no time is present; a
// date-only field is a normal, unremarkable outcome, not an error.
func ExtractTime(text string) (TimeOfDay, bool) {
	if text == "" {
		return TimeOfDay{}, false
	}

	cleaned := parenthetical.ReplaceAllString(text, " ")

	if m := twelveHour.FindStringSubmatch(cleaned); m != nil {
		return TimeOfDay{Period: Period(m[1]), Clock: m[2]}, true
	}

	if m := twentyFourHour.FindString(cleaned); m != "" {
		return TimeOfDay{Clock: m}, true
	}

	return TimeOfDay{}, false
}

// HasTimeHint reports whether a field contains anything worth handing
// to ExtractTime: an AM/PM marker, a bare clock, or Korean date
// notation. Meeting rows place the clock in no fixed column, so rows
// are scanned field by field with this predicate.
func HasTimeHint(text string) bool {
	return timeHint.MatchString(text) || koreanDateMarker.MatchString(text)
}
