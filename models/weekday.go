package models

import "time"

// Weekday is a day-of-week index using the 0=Sunday .. 6=Saturday convention
// that booking clients send in recurring_days. time.Weekday happens to use the
// same numbering, but the type exists so the convention is named rather than
// implied by bare ints.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeekdayOf returns the Weekday of a timestamp.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}

// Valid reports whether w is within 0..6.
func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return "invalid"
	}
	return time.Weekday(w).String()
}

// WeekdaySet is a set of weekdays selected for a recurring booking.
type WeekdaySet map[Weekday]struct{}

// NewWeekdaySet builds a set from raw day indices, ignoring out-of-range values.
func NewWeekdaySet(days []int) WeekdaySet {
	set := make(WeekdaySet, len(days))
	for _, d := range days {
		w := Weekday(d)
		if w.Valid() {
			set[w] = struct{}{}
		}
	}
	return set
}

// Contains reports whether w is a member of the set.
func (s WeekdaySet) Contains(w Weekday) bool {
	_, ok := s[w]
	return ok
}

// Empty reports whether no weekday is selected.
func (s WeekdaySet) Empty() bool {
	return len(s) == 0
}
