package daterange

import (
	"strconv"
	"strings"
	"time"
)

// modifierCircumflex is the non-ASCII caret (U+02C6) produced by some
// keyboard layouts in place of "^". It is substituted before token matching.
const modifierCircumflex = "ˆ"

// DefaultEveningHour is the start hour of the no-argument window.
const DefaultEveningHour = 18

// Window is a half-open time interval [Since, Until) used to filter
// commit history. Since is always strictly before Until.
type Window struct {
	Since time.Time
	Until time.Time
}

// FormatTime renders a timestamp in the format passed to git --since/--until.
func FormatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// ParseDayToken extracts N from a "day" or "day^N" token. A bare "day"
// means N=1 (yesterday). Anything that does not match the grammar returns
// 0, which callers treat as "no day argument" rather than an error.
func ParseDayToken(token string) int {
	token = strings.ReplaceAll(token, modifierCircumflex, "^")
	if token == "day" {
		return 1
	}
	rest, ok := strings.CutPrefix(token, "day^")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// IsDayToken reports whether a CLI argument is a window selector.
func IsDayToken(token string) bool {
	return ParseDayToken(token) > 0
}

// Resolve computes the commit window for a day token at the given
// reference time.
//
// With no usable token the window runs from yesterday evening to now,
// covering "everything since the last standup". A token day^N selects the
// full local calendar day N days before today: day^1 is [yesterday 00:00,
// today 00:00), day^2 the day before that, and so on. Midnights are
// computed with calendar arithmetic in now's location, so the result is
// identical across platforms regardless of how the system date utilities
// count relative days.
//
// Malformed tokens fall back to the default window. This mirrors the
// tool's documented behavior; see ResolveEvening for the evening hour.
func Resolve(token string, now time.Time) Window {
	return ResolveEvening(token, now, DefaultEveningHour)
}

// ResolveEvening is Resolve with a configurable evening start hour for the
// default window.
func ResolveEvening(token string, now time.Time, eveningHour int) Window {
	if eveningHour < 0 || eveningHour > 23 {
		eveningHour = DefaultEveningHour
	}

	n := ParseDayToken(token)
	if n == 0 {
		yesterday := midnight(now).AddDate(0, 0, -1)
		since := yesterday.Add(time.Duration(eveningHour) * time.Hour)
		return Window{Since: since, Until: now}
	}

	since := midnight(now).AddDate(0, 0, -n)
	return Window{Since: since, Until: since.AddDate(0, 0, 1)}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
