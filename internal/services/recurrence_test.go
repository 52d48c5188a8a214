package services

import (
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/shashank18-04/recurring-reminder/internal/models"
)

func TestExpandRecurrence_Daily(t *testing.T) {
	tests := []struct {
		name     string
		settings models.RecurringSettings
		expected []string
	}{
		{
			name: "every day",
			settings: models.RecurringSettings{
				Frequency: models.FrequencyDaily,
				Interval:  1,
				StartDate: "2024-01-01",
				EndDate:   "2024-01-05",
			},
			expected: []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"},
		},
		{
			name: "every second day",
			settings: models.RecurringSettings{
				Frequency: models.FrequencyDaily,
				Interval:  2,
				StartDate: "2024-01-01",
				EndDate:   "2024-01-05",
			},
			expected: []string{"2024-01-01", "2024-01-03", "2024-01-05"},
		},
		{
			name: "single day range",
			settings: models.RecurringSettings{
				Frequency: models.FrequencyDaily,
				Interval:  1,
				StartDate: "2024-06-15",
				EndDate:   "2024-06-15",
			},
			expected: []string{"2024-06-15"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := ExpandRecurrence(test.settings)
			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, result)
			}
		})
	}
}

func TestExpandRecurrence_DailyDefaultHorizon(t *testing.T) {
	result := ExpandRecurrence(models.RecurringSettings{
		Frequency: models.FrequencyDaily,
		Interval:  1,
		StartDate: "2024-01-01",
	})

	if len(result) == 0 {
		t.Fatal("expected dates")
	}
	if result[0] != "2024-01-01" {
		t.Errorf("expected first date 2024-01-01, got %s", result[0])
	}
	// Horizon defaults to January 1st five years past the start year,
	// inclusive.
	if last := result[len(result)-1]; last != "2029-01-01" {
		t.Errorf("expected last date 2029-01-01, got %s", last)
	}
}

func TestExpandRecurrence_Weekly(t *testing.T) {
	tests := []struct {
		name     string
		settings models.RecurringSettings
		expected []string
	}{
		{
			name: "mondays and wednesdays with partial weeks",
			settings: models.RecurringSettings{
				Frequency:  models.FrequencyWeekly,
				Interval:   1,
				WeeklyDays: []time.Weekday{time.Monday, time.Wednesday},
				StartDate:  "2024-01-01",
				EndDate:    "2024-01-14",
			},
			expected: []string{"2024-01-01", "2024-01-03", "2024-01-08", "2024-01-10"},
		},
		{
			name: "every second week",
			settings: models.RecurringSettings{
				Frequency:  models.FrequencyWeekly,
				Interval:   2,
				WeeklyDays: []time.Weekday{time.Monday},
				StartDate:  "2024-01-01",
				EndDate:    "2024-01-31",
			},
			expected: []string{"2024-01-01", "2024-01-15", "2024-01-29"},
		},
		{
			name: "start mid-week skips earlier selected days",
			settings: models.RecurringSettings{
				Frequency:  models.FrequencyWeekly,
				Interval:   1,
				WeeklyDays: []time.Weekday{time.Monday, time.Friday},
				StartDate:  "2024-01-03",
				EndDate:    "2024-01-08",
			},
			expected: []string{"2024-01-05", "2024-01-08"},
		},
		{
			name: "no weekdays selected",
			settings: models.RecurringSettings{
				Frequency: models.FrequencyWeekly,
				Interval:  1,
				StartDate: "2024-01-01",
				EndDate:   "2024-03-31",
			},
			expected: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := ExpandRecurrence(test.settings)
			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, result)
			}
		})
	}
}

func TestExpandRecurrence_MonthlyOnDay(t *testing.T) {
	tests := []struct {
		name     string
		settings models.RecurringSettings
		expected []string
	}{
		{
			name: "mid-month day",
			settings: models.RecurringSettings{
				Frequency:    models.FrequencyMonthly,
				Interval:     1,
				MonthlyType:  models.MonthlyOnDay,
				MonthlyOnDay: 15,
				StartDate:    "2024-01-01",
				EndDate:      "2024-03-31",
			},
			expected: []string{"2024-01-15", "2024-02-15", "2024-03-15"},
		},
		{
			name: "day 31 skips short months",
			settings: models.RecurringSettings{
				Frequency:    models.FrequencyMonthly,
				Interval:     1,
				MonthlyType:  models.MonthlyOnDay,
				MonthlyOnDay: 31,
				StartDate:    "2024-01-01",
				EndDate:      "2024-04-30",
			},
			expected: []string{"2024-01-31", "2024-03-31"},
		},
		{
			name: "day before start date excluded",
			settings: models.RecurringSettings{
				Frequency:    models.FrequencyMonthly,
				Interval:     1,
				MonthlyType:  models.MonthlyOnDay,
				MonthlyOnDay: 1,
				StartDate:    "2024-01-15",
				EndDate:      "2024-03-31",
			},
			expected: []string{"2024-02-01", "2024-03-01"},
		},
		{
			name: "quarterly interval",
			settings: models.RecurringSettings{
				Frequency:    models.FrequencyMonthly,
				Interval:     3,
				MonthlyType:  models.MonthlyOnDay,
				MonthlyOnDay: 10,
				StartDate:    "2024-01-01",
				EndDate:      "2024-12-31",
			},
			expected: []string{"2024-01-10", "2024-04-10", "2024-07-10", "2024-10-10"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := ExpandRecurrence(test.settings)
			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, result)
			}
		})
	}
}

func TestExpandRecurrence_MonthlyOnThe(t *testing.T) {
	tests := []struct {
		name     string
		settings models.RecurringSettings
		expected []string
	}{
		{
			name: "last friday",
			settings: models.RecurringSettings{
				Frequency:    models.FrequencyMonthly,
				Interval:     1,
				MonthlyType:  models.MonthlyOnThe,
				MonthlyOnThe: models.OrdinalWeekday{Week: models.OrdinalLast, Day: time.Friday},
				StartDate:    "2024-01-01",
				EndDate:      "2024-03-31",
			},
			expected: []string{"2024-01-26", "2024-02-23", "2024-03-29"},
		},
		{
			name: "third tuesday",
			settings: models.RecurringSettings{
				Frequency:    models.FrequencyMonthly,
				Interval:     1,
				MonthlyType:  models.MonthlyOnThe,
				MonthlyOnThe: models.OrdinalWeekday{Week: models.OrdinalThird, Day: time.Tuesday},
				StartDate:    "2024-01-01",
				EndDate:      "2024-02-29",
			},
			expected: []string{"2024-01-16", "2024-02-20"},
		},
		{
			name: "fourth and last differ in five-week months",
			settings: models.RecurringSettings{
				Frequency:    models.FrequencyMonthly,
				Interval:     1,
				MonthlyType:  models.MonthlyOnThe,
				MonthlyOnThe: models.OrdinalWeekday{Week: models.OrdinalFourth, Day: time.Friday},
				StartDate:    "2024-03-01",
				EndDate:      "2024-03-31",
			},
			expected: []string{"2024-03-22"},
		},
		{
			name: "unrecognized ordinal emits nothing",
			settings: models.RecurringSettings{
				Frequency:    models.FrequencyMonthly,
				Interval:     1,
				MonthlyType:  models.MonthlyOnThe,
				MonthlyOnThe: models.OrdinalWeekday{Week: "5", Day: time.Monday},
				StartDate:    "2024-01-01",
				EndDate:      "2024-03-31",
			},
			expected: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := ExpandRecurrence(test.settings)
			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, result)
			}
		})
	}
}

func TestExpandRecurrence_Yearly(t *testing.T) {
	tests := []struct {
		name     string
		settings models.RecurringSettings
		expected []string
	}{
		{
			name: "anniversaries",
			settings: models.RecurringSettings{
				Frequency: models.FrequencyYearly,
				Interval:  1,
				StartDate: "2023-02-28",
				EndDate:   "2025-03-01",
			},
			expected: []string{"2023-02-28", "2024-02-28", "2025-02-28"},
		},
		{
			name: "leap day drifts to march on non-leap years",
			settings: models.RecurringSettings{
				Frequency: models.FrequencyYearly,
				Interval:  1,
				StartDate: "2024-02-29",
				EndDate:   "2026-12-31",
			},
			expected: []string{"2024-02-29", "2025-03-01", "2026-03-01"},
		},
		{
			name: "every second year",
			settings: models.RecurringSettings{
				Frequency: models.FrequencyYearly,
				Interval:  2,
				StartDate: "2024-07-04",
				EndDate:   "2028-12-31",
			},
			expected: []string{"2024-07-04", "2026-07-04", "2028-07-04"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := ExpandRecurrence(test.settings)
			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, result)
			}
		})
	}
}

func TestExpandRecurrence_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name     string
		settings models.RecurringSettings
	}{
		{
			name:     "missing start date",
			settings: models.RecurringSettings{Frequency: models.FrequencyDaily, Interval: 1},
		},
		{
			name: "unparseable start date",
			settings: models.RecurringSettings{
				Frequency: models.FrequencyDaily,
				Interval:  1,
				StartDate: "January 1st 2024",
			},
		},
		{
			name: "unknown frequency",
			settings: models.RecurringSettings{
				Frequency: "hourly",
				Interval:  1,
				StartDate: "2024-01-01",
				EndDate:   "2024-01-05",
			},
		},
		{
			name: "end date before start date",
			settings: models.RecurringSettings{
				Frequency: models.FrequencyDaily,
				Interval:  1,
				StartDate: "2024-06-01",
				EndDate:   "2024-05-01",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := ExpandRecurrence(test.settings)
			if len(result) != 0 {
				t.Errorf("expected empty result, got %v", result)
			}
		})
	}
}

func TestExpandRecurrence_IterationCap(t *testing.T) {
	// A ten-year daily range needs ~3650 steps, well past the cap; expansion
	// must terminate with the first MaxExpansionSteps dates.
	result := ExpandRecurrence(models.RecurringSettings{
		Frequency: models.FrequencyDaily,
		Interval:  1,
		StartDate: "2024-01-01",
		EndDate:   "2033-12-31",
	})

	if len(result) != MaxExpansionSteps {
		t.Fatalf("expected %d dates, got %d", MaxExpansionSteps, len(result))
	}
	if result[0] != "2024-01-01" {
		t.Errorf("expected first date 2024-01-01, got %s", result[0])
	}
	for _, date := range result {
		if date < "2024-01-01" || date > "2033-12-31" {
			t.Fatalf("date %s outside bounds", date)
		}
	}
}

func TestExpandRecurrence_Deterministic(t *testing.T) {
	settings := models.RecurringSettings{
		Frequency:  models.FrequencyWeekly,
		Interval:   2,
		WeeklyDays: []time.Weekday{time.Tuesday, time.Saturday},
		StartDate:  "2024-03-07",
		EndDate:    "2024-09-01",
	}

	first := ExpandRecurrence(settings)
	second := ExpandRecurrence(settings)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expansion not deterministic: %v vs %v", first, second)
	}
}

func TestExpandRecurrence_SortedAndUnique(t *testing.T) {
	result := ExpandRecurrence(models.RecurringSettings{
		Frequency:  models.FrequencyWeekly,
		Interval:   1,
		WeeklyDays: []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
		StartDate:  "2024-01-01",
		EndDate:    "2024-02-29",
	})

	if !sort.StringsAreSorted(result) {
		t.Error("result is not sorted")
	}
	seen := make(map[string]struct{}, len(result))
	for _, date := range result {
		if _, dup := seen[date]; dup {
			t.Errorf("duplicate date %s", date)
		}
		seen[date] = struct{}{}
	}
}

func TestNthWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		weekday  time.Weekday
		nth      int
		expected string
		ok       bool
	}{
		{name: "first monday", year: 2024, month: time.January, weekday: time.Monday, nth: 1, expected: "2024-01-01", ok: true},
		{name: "last friday of february", year: 2024, month: time.February, weekday: time.Friday, nth: -1, expected: "2024-02-23", ok: true},
		{name: "fifth occurrence missing", year: 2024, month: time.February, weekday: time.Monday, nth: 5, ok: false},
		{name: "zero is invalid", year: 2024, month: time.January, weekday: time.Monday, nth: 0, ok: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, ok := nthWeekdayOfMonth(test.year, test.month, test.weekday, test.nth, time.Local)
			if ok != test.ok {
				t.Fatalf("expected ok=%v, got %v", test.ok, ok)
			}
			if ok && result.Format(models.DateLayout) != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result.Format(models.DateLayout))
			}
		})
	}
}
