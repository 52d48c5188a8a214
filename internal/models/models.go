package models

import "time"

// DateLayout is the canonical key format for calendar dates. Lexicographic
// order on these strings matches chronological order.
const DateLayout = "2006-01-02"

// TimeLayout is the format for an assignment's time-of-day.
const TimeLayout = "15:04"

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

type MonthlyType string

const (
	MonthlyOnDay MonthlyType = "onDay"
	MonthlyOnThe MonthlyType = "onThe"
)

// OrdinalWeek selects which occurrence of a weekday within a month.
type OrdinalWeek string

const (
	OrdinalFirst  OrdinalWeek = "1"
	OrdinalSecond OrdinalWeek = "2"
	OrdinalThird  OrdinalWeek = "3"
	OrdinalFourth OrdinalWeek = "4"
	OrdinalLast   OrdinalWeek = "last"
)

// Nth returns the 1-based occurrence index, or -1 for the last occurrence.
// Unrecognized values return 0.
func (o OrdinalWeek) Nth() int {
	switch o {
	case OrdinalFirst:
		return 1
	case OrdinalSecond:
		return 2
	case OrdinalThird:
		return 3
	case OrdinalFourth:
		return 4
	case OrdinalLast:
		return -1
	}
	return 0
}

// OrdinalWeekday is an "Nth weekday of the month" pattern, e.g. third Tuesday
// or last Friday. Day uses Go's weekday numbering (0 = Sunday).
type OrdinalWeekday struct {
	Week OrdinalWeek  `json:"week"`
	Day  time.Weekday `json:"day"`
}

// RecurringSettings describes a recurrence rule. StartDate and EndDate are
// naive local calendar dates in DateLayout form; EndDate may be empty.
type RecurringSettings struct {
	Frequency    Frequency      `json:"frequency"`
	Interval     int            `json:"interval"`
	WeeklyDays   []time.Weekday `json:"weeklyDays,omitempty"`
	MonthlyType  MonthlyType    `json:"monthlyType,omitempty"`
	MonthlyOnDay int            `json:"monthlyOnDay,omitempty"`
	MonthlyOnThe OrdinalWeekday `json:"monthlyOnThe,omitempty"`
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate,omitempty"`
}

// Normalize clamps invalid numeric fields to usable values. The expander
// assumes a validated settings value, so callers at the API edge run this
// before expansion.
func (s *RecurringSettings) Normalize() {
	if s.Interval < 1 {
		s.Interval = 1
	}
	if s.MonthlyOnDay < 1 {
		s.MonthlyOnDay = 1
	}
	if s.MonthlyOnDay > 31 {
		s.MonthlyOnDay = 31
	}
}

// DefaultSettings is the fresh-session rule: daily, every day, starting today,
// with weekdays preselected for when the user switches to weekly.
func DefaultSettings(today time.Time) RecurringSettings {
	return RecurringSettings{
		Frequency: FrequencyDaily,
		Interval:  1,
		WeeklyDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
		MonthlyType:  MonthlyOnDay,
		MonthlyOnDay: today.Day(),
		MonthlyOnThe: OrdinalWeekday{Week: OrdinalFirst, Day: today.Weekday()},
		StartDate:    today.Format(DateLayout),
	}
}

// EventType is a user-defined reminder label.
type EventType struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// EventAssignment attaches one event type and a time-of-day to a single date.
type EventAssignment struct {
	TypeID string `json:"typeId"`
	Time   string `json:"time"`
}

// Schedule is a committed recurrence rule together with its expanded dates and
// the reminder assignments on them. Master, when set, is the event applied
// uniformly to every expanded date; Assignments always holds the materialized
// per-date result.
type Schedule struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Settings    RecurringSettings          `json:"settings"`
	Dates       []string                   `json:"dates"`
	Master      *EventAssignment           `json:"master,omitempty"`
	Assignments map[string]EventAssignment `json:"assignments"`
	CreatedAt   time.Time                  `json:"createdAt"`
	UpdatedAt   time.Time                  `json:"updatedAt"`
}

// Notification is a reminder that has fired.
type Notification struct {
	ScheduleID   string    `json:"scheduleId"`
	ScheduleName string    `json:"scheduleName"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	TypeID       string    `json:"typeId"`
	TypeTitle    string    `json:"typeTitle,omitempty"`
	TypeColor    string    `json:"typeColor,omitempty"`
	FiredAt      time.Time `json:"firedAt"`
}
