package services

import (
	"sort"
	"time"

	"github.com/shashank18-04/recurring-reminder/internal/models"
)

// MaxExpansionSteps bounds the cursor walk so that pathological settings (a
// huge interval against a distant horizon) always terminate. When the cap
// binds, expansion returns whatever was accumulated.
const MaxExpansionSteps = 2000

// DefaultHorizonYears is how far past the start date expansion runs when no
// end date is given.
const DefaultHorizonYears = 5

// ExpandRecurrence enumerates every concrete date a recurrence rule denotes
// within its horizon, as ascending, deduplicated ISO YYYY-MM-DD strings.
//
// The walk is pure and deterministic. A missing or unparseable start date and
// an unknown frequency both yield an empty result rather than an error.
func ExpandRecurrence(settings models.RecurringSettings) []string {
	start, ok := parseDate(settings.StartDate)
	if !ok {
		return []string{}
	}
	end := effectiveEndDate(settings, start)

	interval := settings.Interval
	if interval < 1 {
		interval = 1
	}

	seen := make(map[string]struct{})
	dates := make([]string, 0)
	emit := func(d time.Time) {
		if d.Before(start) || d.After(end) {
			return
		}
		key := d.Format(models.DateLayout)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		dates = append(dates, key)
	}

	switch settings.Frequency {
	case models.FrequencyDaily:
		cursor := start
		for steps := 0; steps < MaxExpansionSteps && !cursor.After(end); steps++ {
			emit(cursor)
			cursor = cursor.AddDate(0, 0, interval)
		}

	case models.FrequencyWeekly:
		selected := make(map[time.Weekday]bool, len(settings.WeeklyDays))
		for _, day := range settings.WeeklyDays {
			selected[day] = true
		}
		// Align to the Sunday on or before the start date so partial first
		// and last weeks are scanned day by day.
		cursor := start.AddDate(0, 0, -int(start.Weekday()))
		for steps := 0; steps < MaxExpansionSteps && !cursor.After(end); steps++ {
			for offset := 0; offset < 7; offset++ {
				day := cursor.AddDate(0, 0, offset)
				if selected[day.Weekday()] {
					emit(day)
				}
			}
			cursor = cursor.AddDate(0, 0, 7*interval)
		}

	case models.FrequencyMonthly:
		cursor := start
		for steps := 0; steps < MaxExpansionSteps && !cursor.After(end); steps++ {
			switch settings.MonthlyType {
			case models.MonthlyOnDay:
				candidate := time.Date(cursor.Year(), cursor.Month(), settings.MonthlyOnDay, 0, 0, 0, 0, cursor.Location())
				// A day beyond the month's length normalizes into the next
				// month; such months contribute nothing.
				if candidate.Month() == cursor.Month() {
					emit(candidate)
				}
			case models.MonthlyOnThe:
				if candidate, ok := nthWeekdayOfMonth(cursor.Year(), cursor.Month(), settings.MonthlyOnThe.Day, settings.MonthlyOnThe.Week.Nth(), cursor.Location()); ok {
					emit(candidate)
				}
			}
			// Reset to day 1 so month-length differences never drift the walk.
			cursor = time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, cursor.Location()).AddDate(0, interval, 0)
		}

	case models.FrequencyYearly:
		for steps := 0; steps < MaxExpansionSteps; steps++ {
			year := start.Year() + steps*interval
			if time.Date(year, time.January, 1, 0, 0, 0, 0, start.Location()).After(end) {
				break
			}
			// Feb 29 anniversaries normalize to Mar 1 on non-leap years.
			emit(time.Date(year, start.Month(), start.Day(), 0, 0, 0, 0, start.Location()))
		}

	default:
		return []string{}
	}

	sort.Strings(dates)
	return dates
}

// effectiveEndDate resolves the inclusive horizon: the configured end date, or
// January 1st five years past the start year.
func effectiveEndDate(settings models.RecurringSettings, start time.Time) time.Time {
	if end, ok := parseDate(settings.EndDate); ok {
		return end
	}
	return time.Date(start.Year()+DefaultHorizonYears, time.January, 1, 0, 0, 0, 0, start.Location())
}

// nthWeekdayOfMonth resolves "the nth weekday of the month", with nth == -1
// meaning the last occurrence. The second return is false when the month has
// no such occurrence.
func nthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, nth int, loc *time.Location) (time.Time, bool) {
	if nth == 0 {
		return time.Time{}, false
	}

	var matches []time.Time
	day := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	for day.Month() == month {
		if day.Weekday() == weekday {
			matches = append(matches, day)
		}
		day = day.AddDate(0, 0, 1)
	}

	if nth == -1 {
		return matches[len(matches)-1], true
	}
	if nth > len(matches) {
		return time.Time{}, false
	}
	return matches[nth-1], true
}

func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(models.DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
