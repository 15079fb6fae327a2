package matching

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ageCeilings maps the three accepted age brackets to a maximum-age ceiling.
// "18 and older" uses 100 as an effectively unbounded ceiling.
var ageCeilings = map[string]float64{
	"13 to 15 years old": 15,
	"16 to 17 years old": 17,
	"18 and older":       100,
}

// studentSentinel marks roles open to students regardless of numeric age.
const studentSentinel = "students"

var (
	fractionPattern = regexp.MustCompile(`(-?\d+)\s*/\s*(\d+)`)
	decimalPattern  = regexp.MustCompile(`-?\d+\.\d+`)
	integerPattern  = regexp.MustCompile(`-?\d+`)
)

// extractNumber pulls the first numeric value out of free text, trying
// fractions, then decimals, then integers. It returns -1 when the text holds
// no usable number (including a fraction with a zero denominator).
func extractNumber(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" || !strings.ContainsAny(text, "0123456789") {
		return -1
	}

	if m := fractionPattern.FindStringSubmatch(text); m != nil {
		numerator, _ := strconv.ParseFloat(m[1], 64)
		denominator, _ := strconv.ParseFloat(m[2], 64)
		if denominator == 0 {
			return -1
		}
		return numerator / denominator
	}

	if m := decimalPattern.FindString(text); m != "" {
		value, _ := strconv.ParseFloat(m, 64)
		return value
	}

	if m := integerPattern.FindString(text); m != "" {
		value, _ := strconv.ParseFloat(m, 64)
		return value
	}

	return -1
}

// parseAgeMin interprets a role's minimum-age field: a plain number, the
// student-only sentinel, or free text containing the minimum age. Text with
// no extractable number yields -1, which qualifies against every ceiling.
func parseAgeMin(raw string) (min float64, studentOnly bool) {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, studentSentinel) {
		return 0, true
	}
	if value, err := strconv.Atoi(trimmed); err == nil {
		return float64(value), false
	}
	return extractNumber(trimmed), false
}

// scoreAge scores every role against the user's age bracket. A role
// qualifies when its numeric minimum age is within the user's ceiling, or
// when it is student-only and the user is a student. Qualifying roles gain
// ScoreAgeQualified, reduced to ScoreAgeBelowPreference when the role also
// prefers an age above the user's ceiling.
func (e *Engine) scoreAge(answer string, eliminate bool) error {
	ceiling, ok := ageCeilings[strings.ToLower(strings.TrimSpace(answer))]
	if !ok {
		return fmt.Errorf("%w: unknown age bracket %q", ErrInvalidResponse, answer)
	}

	for i := range e.roles {
		role := &e.roles[i]

		ageMin, studentOnly := parseAgeMin(role.AgeMin)

		var agePref float64
		hasPref := false
		if pref := strings.TrimSpace(role.AgePreference); pref != "" && !isFalse(pref) {
			hasPref = true
			if value, err := strconv.Atoi(pref); err == nil {
				agePref = float64(value)
			} else {
				agePref = extractNumber(pref)
			}
		}

		qualified := false

		if !studentOnly && ageMin <= ceiling {
			qualified = true
			if !hasPref || agePref <= ceiling {
				e.addScore(role.Name, ScoreAgeQualified)
			} else {
				e.addScore(role.Name, ScoreAgeBelowPreference)
			}
		}

		if studentOnly && e.studentStatus {
			qualified = true
			e.addScore(role.Name, ScoreAgeQualified)
		}

		if eliminate && !qualified {
			e.eliminate(role.Name)
		}
	}

	return nil
}
