package scheduling

import (
	"time"

	"glowdesk/models"
)

// maxExpansionDays is a defensive cap on day iteration so a malformed end
// date can never make the expansion loop run unbounded.
const maxExpansionDays = 1000

// Instance is one concrete appointment produced by recurrence expansion.
type Instance struct {
	Start time.Time
	End   time.Time
}

// Expand walks every calendar day from start's date through the bound,
// inclusive, and emits one instance per day whose weekday is selected. Each
// instance starts at the day combined with start's hour and minute
// (seconds zeroed) and ends durationMinutes later; an instance crossing
// midnight is left as-is.
//
// The bound is endDate clamped to 23:59:59.999 local when given, otherwise
// one year after now. The one-year default is measured from the invocation
// time, not from start.
func Expand(start time.Time, days models.WeekdaySet, endDate *time.Time, durationMinutes int, now time.Time) []Instance {
	loc := start.Location()

	var bound time.Time
	if endDate != nil {
		bound = time.Date(endDate.Year(), endDate.Month(), endDate.Day(),
			23, 59, 59, 999_000_000, loc)
	} else {
		bound = now.AddDate(1, 0, 0)
	}

	duration := time.Duration(durationMinutes) * time.Minute
	var instances []Instance

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	for i := 0; !day.After(bound) && i < maxExpansionDays; i++ {
		if days.Contains(models.WeekdayOf(day)) {
			instStart := time.Date(day.Year(), day.Month(), day.Day(),
				start.Hour(), start.Minute(), 0, 0, loc)
			instances = append(instances, Instance{
				Start: instStart,
				End:   instStart.Add(duration),
			})
		}
		day = day.AddDate(0, 0, 1)
	}

	return instances
}
