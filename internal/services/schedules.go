package services

import (
	"context"
	"fmt"

	"github.com/shashank18-04/recurring-reminder/internal/models"
	"github.com/shashank18-04/recurring-reminder/internal/repository"
)

// ScheduleService commits recurrence rules: it expands settings into concrete
// dates and reconciles event assignments onto them.
type ScheduleService struct {
	scheduleRepo repository.ScheduleRepository
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{scheduleRepo: scheduleRepo}
}

// Commit expands the settings and saves a new schedule with its materialized
// assignment map.
func (service *ScheduleService) Commit(ctx context.Context, name string, settings models.RecurringSettings, master *models.EventAssignment, individual map[string]models.EventAssignment) (models.Schedule, error) {
	settings.Normalize()
	dates := ExpandRecurrence(settings)

	schedule := models.Schedule{
		Name:        name,
		Settings:    settings,
		Dates:       dates,
		Master:      master,
		Assignments: MaterializeAssignments(dates, master, individual),
	}

	created, err := service.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("creating schedule: %w", err)
	}
	return created, nil
}

// Recommit re-expands an existing schedule under new settings. Previously
// saved assignments are unioned with the newly materialized ones by date key,
// new assignments winning on collision, so dates outside the new expansion
// keep their events.
func (service *ScheduleService) Recommit(ctx context.Context, id string, name string, settings models.RecurringSettings, master *models.EventAssignment, individual map[string]models.EventAssignment) (models.Schedule, error) {
	existing, err := service.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("loading schedule: %w", err)
	}

	settings.Normalize()
	dates := ExpandRecurrence(settings)

	existing.Name = name
	existing.Settings = settings
	existing.Dates = dates
	existing.Master = master
	existing.Assignments = MergeAssignments(existing.Assignments, MaterializeAssignments(dates, master, individual))

	updated, err := service.scheduleRepo.Update(ctx, existing)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("updating schedule: %w", err)
	}
	return updated, nil
}
