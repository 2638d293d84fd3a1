package datemath

// WeekScope is the week qualifier found in the text ("tuần này", "tuần sau", or none).
// It changes how a named weekday is turned into a date.
type WeekScope int

const (
	ScopeUnspecified WeekScope = iota
	ScopeThisWeek
	ScopeNextWeek
)

func (s WeekScope) String() string {
	switch s {
	case ScopeThisWeek:
		return "this_week"
	case ScopeNextWeek:
		return "next_week"
	default:
		return "unspecified"
	}
}

// Status tells whether a Resolution carries a date.
type Status int

const (
	StatusNotFound Status = iota
	StatusFound
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusFailed:
		return "failed"
	default:
		return "not_found"
	}
}

// Resolution is the result of resolving a deadline phrase.
// Date and Rule are only meaningful when Status is StatusFound, Err only when it is StatusFailed.
type Resolution struct {
	Status Status
	Date   Date
	Rule   string // name of the rule that matched
	Err    error

	Scope WeekScope
	// ScopeConflict is set when the text contains both a this-week and a next-week phrase.
	// Scope is ScopeNextWeek in that case.
	ScopeConflict bool
}

// Found reports whether a date was resolved.
func (r Resolution) Found() bool {
	return r.Status == StatusFound
}

// Failed reports whether the text could not be scanned at all.
func (r Resolution) Failed() bool {
	return r.Status == StatusFailed
}
