package habit

import (
	"sort"
	"time"
)

// DateLayout is the calendar-date format used by completion records.
const DateLayout = "2006-01-02"

// CurrentStreak counts the consecutive run of completed days ending at today.
//
// Only entries with Completed=true and a parseable date participate; a
// malformed date is skipped, never counted. The remaining days are walked
// most-recent-first and the scan stops at the first day whose distance in
// days from today does not equal its index: index 0 must be today itself,
// index 1 exactly one day before, and so on. A missing day or a day toggled
// back to false therefore breaks the chain even when the older entries are
// consecutive among themselves; only the run that reaches today counts.
func CurrentStreak(completions []Completion, today time.Time) int {
	days := make([]time.Time, 0, len(completions))
	for _, c := range completions {
		if !c.Completed {
			continue
		}
		day, err := time.ParseInLocation(DateLayout, c.Date, time.UTC)
		if err != nil {
			continue
		}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	start := midnight(today)
	streak := 0
	for i, day := range days {
		if daysBetween(day, start) != i {
			break
		}
		streak++
	}
	return streak
}

// midnight truncates t to its calendar date, normalized to UTC so day
// arithmetic is immune to DST transitions.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from earlier to later, both at UTC
// midnight.
func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier) / (24 * time.Hour))
}
