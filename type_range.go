package expense

import (
	"fmt"
	"time"
)

// Period is a predefined reporting period.
type Period int

const (
	Week Period = iota
	Month
)

func (p Period) String() string {
	switch p {
	case Week:
		return "week"
	case Month:
		return "month"
	default:
		return "unknown"
	}
}

// ParsePeriod parses a string into a Period.
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "week":
		return Week, nil
	case "month":
		return Month, nil
	default:
		return 0, fmt.Errorf("unknown period: %q", s)
	}
}

// Range represents an inclusive range of instants.
type Range struct{ From, To time.Time }

// NewRange creates a new range. If 'from' is after 'to', they are swapped.
func NewRange(from, to time.Time) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if the instant is included in the range (boundaries
// included).
func (r Range) Contains(t time.Time) bool { return !t.Before(r.From) && !t.After(r.To) }

// Range returns the period's full range containing the given instant.
// Weeks start on Monday; months are calendar months. Boundaries are the
// first and the last nanosecond of the period, in the instant's location.
func (p Period) Range(t time.Time) Range {
	y, m, d := t.Date()
	loc := t.Location()
	switch p {
	case Week:
		// time.Weekday numbers Sunday 0; shift so Monday opens the week.
		offset := (int(t.Weekday()) + 6) % 7
		from := time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
		return Range{From: from, To: from.AddDate(0, 0, 7).Add(-time.Nanosecond)}
	case Month:
		from := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		return Range{From: from, To: from.AddDate(0, 1, 0).Add(-time.Nanosecond)}
	default:
		panic("unknown period")
	}
}

// Identifier computes a short unique identifier for the range of a period.
func (r Range) Identifier() string {
	if r.From.Day() == 1 && r.To.Sub(r.From) > 7*24*time.Hour {
		return r.From.Format("2006-January")
	}
	year, week := r.From.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
