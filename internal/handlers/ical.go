package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/shashank18-04/recurring-reminder/internal/models"
	"github.com/shashank18-04/recurring-reminder/internal/repository"
)

const icalDomain = "recurring-reminder"

// ICalHandler serves saved schedules as an iCalendar feed so external
// calendar clients can subscribe to the reminders.
type ICalHandler struct {
	scheduleRepo  repository.ScheduleRepository
	eventTypeRepo repository.EventTypeRepository
}

func NewICalHandler(scheduleRepo repository.ScheduleRepository, eventTypeRepo repository.EventTypeRepository) *ICalHandler {
	return &ICalHandler{
		scheduleRepo:  scheduleRepo,
		eventTypeRepo: eventTypeRepo,
	}
}

func (handler *ICalHandler) Feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	schedules, err := handler.scheduleRepo.FindAll(ctx)
	if err != nil {
		slog.Error("finding schedules for ical", "error", err)
		http.Error(w, "Error", http.StatusInternalServerError)
		return
	}

	typeTitles := make(map[string]string)
	if eventTypes, err := handler.eventTypeRepo.FindAll(ctx); err == nil {
		for _, eventType := range eventTypes {
			typeTitles[eventType.ID] = eventType.Title
		}
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Recurring Reminder//Recurring Reminder//EN")
	cal.SetXWRCalName("Recurring Reminder")

	now := time.Now()
	for _, schedule := range schedules {
		if schedule.Master != nil {
			handler.addMasterEvent(cal, schedule, typeTitles, now)
			continue
		}
		handler.addIndividualEvents(cal, schedule, typeTitles, now)
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=recurring-reminder.ics")
	w.Write([]byte(cal.Serialize()))
}

// addMasterEvent emits a single recurring VEVENT carrying the schedule's rule
// as an RRULE, anchored on the first expanded date.
func (handler *ICalHandler) addMasterEvent(cal *ics.Calendar, schedule models.Schedule, typeTitles map[string]string, now time.Time) {
	if len(schedule.Dates) == 0 {
		return
	}

	start, err := parseDateTime(schedule.Dates[0], schedule.Master.Time)
	if err != nil {
		slog.Warn("skipping schedule in ical feed", "schedule", schedule.ID, "error", err)
		return
	}

	event := cal.AddEvent(fmt.Sprintf("%s@%s", schedule.ID, icalDomain))
	event.SetDtStampTime(now.UTC())
	event.SetSummary(eventSummary(schedule.Name, typeTitles[schedule.Master.TypeID]))
	event.SetStartAt(start)

	if rule, err := recurrenceRule(schedule.Settings); err == nil {
		event.SetProperty(ics.ComponentPropertyRrule, rule)
	} else {
		slog.Warn("rendering rrule", "schedule", schedule.ID, "error", err)
	}
}

// addIndividualEvents emits one VEVENT per assigned date.
func (handler *ICalHandler) addIndividualEvents(cal *ics.Calendar, schedule models.Schedule, typeTitles map[string]string, now time.Time) {
	for _, date := range schedule.Dates {
		assignment, ok := schedule.Assignments[date]
		if !ok {
			continue
		}
		start, err := parseDateTime(date, assignment.Time)
		if err != nil {
			slog.Warn("skipping assignment in ical feed", "schedule", schedule.ID, "date", date, "error", err)
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%s@%s", schedule.ID, date, icalDomain))
		event.SetDtStampTime(now.UTC())
		event.SetSummary(eventSummary(schedule.Name, typeTitles[assignment.TypeID]))
		event.SetStartAt(start)
	}
}

func eventSummary(scheduleName, typeTitle string) string {
	if typeTitle == "" {
		return scheduleName
	}
	return fmt.Sprintf("[%s] %s", typeTitle, scheduleName)
}

func parseDateTime(date, timeOfDay string) (time.Time, error) {
	if timeOfDay == "" {
		return time.ParseInLocation(models.DateLayout, date, time.Local)
	}
	return time.ParseInLocation(models.DateLayout+" "+models.TimeLayout, date+" "+timeOfDay, time.Local)
}

// recurrenceRule renders a settings value as an RFC 5545 RRULE string. The
// rendering is a best-effort translation for calendar clients; the expanded
// date list remains the source of truth.
func recurrenceRule(settings models.RecurringSettings) (string, error) {
	option := rrule.ROption{Interval: settings.Interval}

	switch settings.Frequency {
	case models.FrequencyDaily:
		option.Freq = rrule.DAILY
	case models.FrequencyWeekly:
		option.Freq = rrule.WEEKLY
		for _, day := range settings.WeeklyDays {
			option.Byweekday = append(option.Byweekday, rruleWeekday(day))
		}
	case models.FrequencyMonthly:
		option.Freq = rrule.MONTHLY
		switch settings.MonthlyType {
		case models.MonthlyOnThe:
			weekday := rruleWeekday(settings.MonthlyOnThe.Day)
			option.Byweekday = []rrule.Weekday{weekday.Nth(settings.MonthlyOnThe.Week.Nth())}
		default:
			option.Bymonthday = []int{settings.MonthlyOnDay}
		}
	case models.FrequencyYearly:
		option.Freq = rrule.YEARLY
	default:
		return "", fmt.Errorf("unsupported frequency %q", settings.Frequency)
	}

	if settings.EndDate != "" {
		until, err := time.ParseInLocation(models.DateLayout, settings.EndDate, time.Local)
		if err != nil {
			return "", fmt.Errorf("parsing end date: %w", err)
		}
		// Inclusive horizon: the rule runs through the end of the end date.
		option.Until = until.AddDate(0, 0, 1).Add(-time.Second)
	}

	rule, err := rrule.NewRRule(option)
	if err != nil {
		return "", fmt.Errorf("building rrule: %w", err)
	}
	return rule.String(), nil
}

func rruleWeekday(day time.Weekday) rrule.Weekday {
	switch day {
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.SU
	}
}
