package scheduling

import (
	"testing"
	"time"

	"glowdesk/models"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestExpand_WeeklyMondays(t *testing.T) {
	// 2024-01-01 is a Monday.
	start := date(2024, time.January, 1, 10, 0)
	end := date(2024, time.January, 15, 0, 0)
	now := date(2024, time.January, 1, 9, 0)

	instances := Expand(start, models.NewWeekdaySet([]int{1}), &end, 60, now)

	require.Len(t, instances, 3)
	require.Equal(t, date(2024, time.January, 1, 10, 0), instances[0].Start)
	require.Equal(t, date(2024, time.January, 8, 10, 0), instances[1].Start)
	require.Equal(t, date(2024, time.January, 15, 10, 0), instances[2].Start)
	for _, inst := range instances {
		require.Equal(t, inst.Start.Add(60*time.Minute), inst.End)
	}
}

func TestExpand_DurationInvariant(t *testing.T) {
	start := date(2024, time.March, 4, 9, 30)
	end := date(2024, time.April, 4, 0, 0)
	now := start

	for _, minutes := range []int{15, 30, 45, 90} {
		instances := Expand(start, models.NewWeekdaySet([]int{1, 3, 5}), &end, minutes, now)
		require.NotEmpty(t, instances)
		for _, inst := range instances {
			require.Equal(t, time.Duration(minutes)*time.Minute, inst.End.Sub(inst.Start))
		}
	}
}

func TestExpand_WeekdayFidelity(t *testing.T) {
	start := date(2024, time.January, 1, 14, 15)
	end := date(2024, time.February, 29, 0, 0)
	days := models.NewWeekdaySet([]int{0, 2, 6})

	instances := Expand(start, days, &end, 30, start)
	require.NotEmpty(t, instances)
	for _, inst := range instances {
		require.True(t, days.Contains(models.WeekdayOf(inst.Start)),
			"instance on %s falls outside the selected weekdays", inst.Start.Weekday())
	}
}

func TestExpand_TimeOfDayPreserved(t *testing.T) {
	// Seconds in the original start are zeroed on every instance.
	start := time.Date(2024, time.January, 1, 10, 45, 33, 123456, time.UTC)
	end := date(2024, time.January, 8, 0, 0)

	instances := Expand(start, models.NewWeekdaySet([]int{1}), &end, 30, start)
	require.Len(t, instances, 2)
	for _, inst := range instances {
		require.Equal(t, 10, inst.Start.Hour())
		require.Equal(t, 45, inst.Start.Minute())
		require.Equal(t, 0, inst.Start.Second())
		require.Equal(t, 0, inst.Start.Nanosecond())
	}
}

func TestExpand_NoMatchingDays(t *testing.T) {
	// Monday start, Wednesday selected, bound before the first Wednesday.
	start := date(2024, time.January, 1, 10, 0)
	end := date(2024, time.January, 2, 0, 0)

	instances := Expand(start, models.NewWeekdaySet([]int{3}), &end, 60, start)
	require.Empty(t, instances)
}

func TestExpand_BoundBeforeStart(t *testing.T) {
	start := date(2024, time.June, 10, 10, 0)
	end := date(2024, time.June, 1, 0, 0)

	instances := Expand(start, models.NewWeekdaySet([]int{0, 1, 2, 3, 4, 5, 6}), &end, 60, start)
	require.Empty(t, instances)
}

func TestExpand_EndDateInclusive(t *testing.T) {
	// The bound is clamped to end-of-day, so an instance on the end date
	// itself is still emitted.
	start := date(2024, time.January, 1, 23, 30)
	end := date(2024, time.January, 1, 0, 0)

	instances := Expand(start, models.NewWeekdaySet([]int{1}), &end, 60, start)
	require.Len(t, instances, 1)
	// Crosses midnight; the end is simply start + duration.
	require.Equal(t, date(2024, time.January, 2, 0, 30), instances[0].End)
}

func TestExpand_DefaultBoundIsOneYearFromNow(t *testing.T) {
	// The default bound is one year from the invocation time, not from the
	// recurrence start.
	start := date(2024, time.January, 1, 10, 0) // Monday
	now := date(2024, time.July, 1, 0, 0)

	instances := Expand(start, models.NewWeekdaySet([]int{1}), nil, 60, now)
	require.NotEmpty(t, instances)

	last := instances[len(instances)-1]
	bound := now.AddDate(1, 0, 0)
	require.True(t, !last.Start.After(bound))
	// Expansion reaches past one year from start.
	require.True(t, last.Start.After(start.AddDate(1, 0, 0).AddDate(0, -1, 0)))
}

func TestExpand_MalformedFarFutureEndDateIsCapped(t *testing.T) {
	start := date(2024, time.January, 1, 10, 0)
	end := date(2524, time.January, 1, 0, 0)

	instances := Expand(start, models.NewWeekdaySet([]int{0, 1, 2, 3, 4, 5, 6}), &end, 60, start)
	require.Len(t, instances, maxExpansionDays)
}
