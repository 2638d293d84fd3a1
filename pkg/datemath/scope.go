package datemath

import (
	"fmt"
	"strings"
)

var (
	thisWeekPhrases = []string{"tuần này", "tuần hiện tại"}
	nextWeekPhrases = []string{"tuần sau", "tuần tiếp theo", "tuần tiếp"}
)

// DetectScope scans already-normalised text for week qualifiers.
// When both kinds are present the next week wins and conflict is true.
func DetectScope(normalized string) (scope WeekScope, conflict bool) {
	thisWeek := containsAny(normalized, thisWeekPhrases)
	nextWeek := containsAny(normalized, nextWeekPhrases)

	switch {
	case nextWeek:
		return ScopeNextWeek, thisWeek
	case thisWeek:
		return ScopeThisWeek, false
	default:
		return ScopeUnspecified, false
	}
}

// TargetDate returns the date of weekday (0 = Monday … 6 = Sunday) relative to today.
//
//   - ScopeNextWeek: next occurrence, then one more week.
//   - ScopeThisWeek: this week's occurrence, today included; a weekday already past
//     rolls over to next week.
//   - ScopeUnspecified: next occurrence strictly after today.
func TargetDate(today Date, weekday int, scope WeekScope) Date {
	if weekday < 0 || weekday > 6 {
		panic(fmt.Sprintf("datemath: weekday %d out of range", weekday))
	}

	delta := weekday - today.Weekday()
	switch scope {
	case ScopeNextWeek:
		if delta <= 0 {
			delta += 7
		}
		delta += 7
	case ScopeThisWeek:
		if delta < 0 {
			delta += 7
		}
	default:
		if delta <= 0 {
			delta += 7
		}
	}

	return today.AddDays(delta)
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
