package matching

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Preference is a parsed binary preference answer.
type Preference int

const (
	PreferenceYes Preference = iota
	PreferenceNo
	PreferenceNone
)

// noPreferenceForms are the accepted spellings of a no-preference answer.
var noPreferenceForms = map[string]bool{
	"NO PREFERENCE": true,
	"NO PREF":       true,
	"NO_PREF":       true,
}

// ParsePreference parses a yes/no/no-preference answer, case-insensitively.
func ParsePreference(raw string) (Preference, error) {
	switch upper := strings.ToUpper(strings.TrimSpace(raw)); {
	case upper == "YES":
		return PreferenceYes, nil
	case upper == "NO":
		return PreferenceNo, nil
	case noPreferenceForms[upper]:
		return PreferenceNone, nil
	default:
		return 0, fmt.Errorf("%w: %q is not YES, NO, or NO PREFERENCE", ErrInvalidResponse, raw)
	}
}

// ParseBinary parses a strict yes/no answer into a boolean.
func ParseBinary(raw string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "YES":
		return true, nil
	case "NO":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not YES or NO", ErrInvalidResponse, raw)
	}
}

// ParseChoice validates a categorical answer against the given labels and
// returns the normalized (uppercased) choice.
func ParseChoice(raw string, valid []string) (string, error) {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	for _, option := range valid {
		if upper == strings.ToUpper(option) {
			return upper, nil
		}
	}
	return "", fmt.Errorf("%w: %q is not one of %s", ErrInvalidResponse, raw, strings.Join(valid, ", "))
}

// DayAvailability is a parsed day-availability answer: the set of weekdays
// the respondent can attend, for one competition calendar.
type DayAvailability struct {
	calendar Calendar
	days     map[time.Weekday]bool

	// HasAvailability is true when at least one day was given.
	HasAvailability bool
}

// ParseDayAvailability parses a day-availability answer against a calendar.
//
// Accepted inputs:
//   - "none", "false", or empty -> no availability
//   - whitespace-separated tokens, each either a calendar index ("0 2") or
//     a day name matched exactly or by 3-letter prefix ("fri", "Saturday")
//
// Any out-of-range index or unrecognized token fails the whole parse.
func ParseDayAvailability(raw string, cal Calendar) (DayAvailability, error) {
	avail := DayAvailability{
		calendar: cal,
		days:     make(map[time.Weekday]bool),
	}

	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "", "none", "false":
		return avail, nil
	}

	for _, token := range strings.Fields(strings.ToUpper(trimmed)) {
		day, err := parseDayToken(token, cal)
		if err != nil {
			return DayAvailability{}, fmt.Errorf("%w: day token %q in %q: %v", ErrInvalidResponse, token, raw, err)
		}
		avail.days[day] = true
	}

	avail.HasAvailability = len(avail.days) > 0
	return avail, nil
}

// parseDayToken resolves one uppercased token to a weekday in the calendar.
func parseDayToken(token string, cal Calendar) (time.Weekday, error) {
	if isDigits(token) {
		idx, err := strconv.Atoi(token)
		if err != nil {
			return 0, err
		}
		if idx >= len(cal) {
			return 0, fmt.Errorf("day number %d is out of range for a %d-day calendar", idx, len(cal))
		}
		return cal[idx], nil
	}

	// Match by exact name or by the first three letters of the token.
	prefix := token
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	for _, day := range cal {
		name := strings.ToUpper(day.String())
		if name == token || strings.HasPrefix(name, prefix) {
			return day, nil
		}
	}

	return 0, fmt.Errorf("unrecognized day %q", token)
}

// Has reports whether the given weekday is in the availability set.
func (d DayAvailability) Has(day time.Weekday) bool {
	return d.days[day]
}

// Days returns the available weekdays in calendar order.
func (d DayAvailability) Days() []time.Weekday {
	out := make([]time.Weekday, 0, len(d.days))
	for _, day := range d.calendar {
		if d.days[day] {
			out = append(out, day)
		}
	}
	return out
}

// Len returns the number of available days.
func (d DayAvailability) Len() int {
	return len(d.days)
}

// Overlap returns the number of days present in both availability sets.
func (d DayAvailability) Overlap(other DayAvailability) int {
	count := 0
	for day := range d.days {
		if other.days[day] {
			count++
		}
	}
	return count
}

// String renders the availability as space-separated day names in calendar
// order, so parsing the result yields an identical set.
func (d DayAvailability) String() string {
	days := d.Days()
	names := make([]string, len(days))
	for i, day := range days {
		names[i] = day.String()
	}
	return strings.Join(names, " ")
}

// isDigits reports whether s is one or more ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
