package datemath

import (
	"regexp"
	"unicode/utf8"
)

// Rule maps a phrase pattern to a date. Rules are tried in table order and the
// first match wins, so "hôm nay thứ 2" resolves to today.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Resolve func(today Date, scope WeekScope) Date
}

// Resolver turns Vietnamese deadline phrases into dates.
// A Resolver is read-only after construction and safe for concurrent use.
type Resolver struct {
	rules []Rule
}

// NewResolver builds a resolver with the default Vietnamese rule table.
func NewResolver() *Resolver {
	return NewResolverWithRules(defaultRules())
}

// NewResolverWithRules builds a resolver over a caller supplied, ordered rule table.
func NewResolverWithRules(rules []Rule) *Resolver {
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &Resolver{rules: cp}
}

// Rules returns a copy of the rule table in evaluation order.
func (r *Resolver) Rules() []Rule {
	cp := make([]Rule, len(r.rules))
	copy(cp, r.rules)
	return cp
}

// Resolve returns the date of the first rule matching text, relative to today.
// Text that is not valid UTF-8 yields a StatusFailed resolution carrying ErrInvalidText.
func (r *Resolver) Resolve(text string, today Date) Resolution {
	if !utf8.ValidString(text) {
		return Resolution{Status: StatusFailed, Err: ErrInvalidText}
	}

	normalized := Normalize(text)
	scope, conflict := DetectScope(normalized)

	res := Resolution{
		Status:        StatusNotFound,
		Scope:         scope,
		ScopeConflict: conflict,
	}

	for _, rule := range r.rules {
		if rule.Pattern.MatchString(normalized) {
			res.Status = StatusFound
			res.Date = rule.Resolve(today, scope)
			res.Rule = rule.Name
			return res
		}
	}

	return res
}

var defaultResolver = NewResolver()

// Resolve resolves text with the default rule table.
func Resolve(text string, today Date) Resolution {
	return defaultResolver.Resolve(text, today)
}

func defaultRules() []Rule {
	return []Rule{
		{Name: "today", Pattern: regexp.MustCompile(`hôm nay`), Resolve: offset(0)},
		{Name: "tomorrow", Pattern: regexp.MustCompile(`ngày mai`), Resolve: offset(1)},
		{Name: "day_after_tomorrow", Pattern: regexp.MustCompile(`ngày kia`), Resolve: offset(2)},
		{Name: "monday", Pattern: regexp.MustCompile(`thứ 2|thứ hai`), Resolve: weekday(0)},
		{Name: "tuesday", Pattern: regexp.MustCompile(`thứ 3|thứ ba`), Resolve: weekday(1)},
		{Name: "wednesday", Pattern: regexp.MustCompile(`thứ 4|thứ tư`), Resolve: weekday(2)},
		{Name: "thursday", Pattern: regexp.MustCompile(`thứ 5|thứ năm`), Resolve: weekday(3)},
		{Name: "friday", Pattern: regexp.MustCompile(`thứ 6|thứ sáu`), Resolve: weekday(4)},
		{Name: "saturday", Pattern: regexp.MustCompile(`thứ 7|thứ bảy`), Resolve: weekday(5)},
		{Name: "sunday", Pattern: regexp.MustCompile(`chủ nhật|chủ nhựt`), Resolve: weekday(6)},
		{Name: "weekend", Pattern: regexp.MustCompile(`cuối tuần`), Resolve: weekend},
	}
}

func offset(days int) func(Date, WeekScope) Date {
	return func(today Date, _ WeekScope) Date {
		return today.AddDays(days)
	}
}

func weekday(w int) func(Date, WeekScope) Date {
	return func(today Date, scope WeekScope) Date {
		return TargetDate(today, w, scope)
	}
}

// weekend is the coming Saturday, or today when today is already Saturday or Sunday.
func weekend(today Date, _ WeekScope) Date {
	wd := today.Weekday()
	if wd < 5 {
		return today.AddDays(5 - wd)
	}
	return today
}
