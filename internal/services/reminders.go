package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shashank18-04/recurring-reminder/internal/models"
	"github.com/shashank18-04/recurring-reminder/internal/repository"
)

// Clock abstracts time.Now so reminder checks are deterministic in tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// Notifier delivers a fired reminder to the user.
type Notifier interface {
	Notify(ctx context.Context, notification models.Notification)
}

// SlogNotifier announces reminders on the structured log.
type SlogNotifier struct{}

func (SlogNotifier) Notify(_ context.Context, notification models.Notification) {
	slog.Info("reminder due",
		"schedule", notification.ScheduleName,
		"date", notification.Date,
		"time", notification.Time,
		"event_type", notification.TypeTitle,
	)
}

// ReminderService scans saved schedules for assignments whose time-of-day
// matches the current minute. It is driven by a periodic scheduler, so a
// reminder may fire up to one poll interval late. Fired (schedule, date, time)
// keys are remembered for the rest of the day to suppress duplicates across
// polls within the same minute.
type ReminderService struct {
	scheduleRepo     repository.ScheduleRepository
	eventTypeRepo    repository.EventTypeRepository
	notificationRepo repository.NotificationRepository
	notifier         Notifier
	clock            Clock

	mu       sync.Mutex
	fired    map[string]struct{}
	firedDay string
}

func NewReminderService(
	scheduleRepo repository.ScheduleRepository,
	eventTypeRepo repository.EventTypeRepository,
	notificationRepo repository.NotificationRepository,
	notifier Notifier,
	clock Clock,
) *ReminderService {
	return &ReminderService{
		scheduleRepo:     scheduleRepo,
		eventTypeRepo:    eventTypeRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		clock:            clock,
		fired:            make(map[string]struct{}),
	}
}

// CheckDue fires every assignment due at the current date and minute that has
// not already fired today.
func (service *ReminderService) CheckDue(ctx context.Context) error {
	now := service.clock.Now()
	today := now.Format(models.DateLayout)
	minute := now.Format(models.TimeLayout)

	service.mu.Lock()
	if service.firedDay != today {
		service.fired = make(map[string]struct{})
		service.firedDay = today
	}
	service.mu.Unlock()

	schedules, err := service.scheduleRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("loading schedules: %w", err)
	}

	for _, schedule := range schedules {
		assignment, ok := schedule.Assignments[today]
		if !ok || assignment.Time != minute {
			continue
		}

		key := schedule.ID + "/" + today + "/" + assignment.Time
		service.mu.Lock()
		_, already := service.fired[key]
		if !already {
			service.fired[key] = struct{}{}
		}
		service.mu.Unlock()
		if already {
			continue
		}

		notification := models.Notification{
			ScheduleID:   schedule.ID,
			ScheduleName: schedule.Name,
			Date:         today,
			Time:         assignment.Time,
			TypeID:       assignment.TypeID,
			FiredAt:      now,
		}
		if eventType, err := service.eventTypeRepo.FindByID(ctx, assignment.TypeID); err == nil {
			notification.TypeTitle = eventType.Title
			notification.TypeColor = eventType.Color
		}

		if err := service.notificationRepo.Add(ctx, notification); err != nil {
			slog.Error("recording notification", "schedule", schedule.ID, "error", err)
		}
		service.notifier.Notify(ctx, notification)
	}

	return nil
}
