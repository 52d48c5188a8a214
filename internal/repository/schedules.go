package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shashank18-04/recurring-reminder/internal/models"
)

type ScheduleRepository interface {
	FindByID(ctx context.Context, id string) (models.Schedule, error)
	FindAll(ctx context.Context) ([]models.Schedule, error)
	Create(ctx context.Context, schedule models.Schedule) (models.Schedule, error)
	Update(ctx context.Context, schedule models.Schedule) (models.Schedule, error)
	Delete(ctx context.Context, id string) error
}

type MemoryScheduleRepository struct {
	mu        sync.RWMutex
	schedules map[string]models.Schedule
}

func NewScheduleRepository() *MemoryScheduleRepository {
	return &MemoryScheduleRepository{schedules: make(map[string]models.Schedule)}
}

func (repository *MemoryScheduleRepository) FindByID(_ context.Context, id string) (models.Schedule, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	schedule, ok := repository.schedules[id]
	if !ok {
		return models.Schedule{}, fmt.Errorf("finding schedule by id: %w", ErrNotFound)
	}
	return schedule, nil
}

func (repository *MemoryScheduleRepository) FindAll(_ context.Context) ([]models.Schedule, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	schedules := make([]models.Schedule, 0, len(repository.schedules))
	for _, schedule := range repository.schedules {
		schedules = append(schedules, schedule)
	}
	sort.Slice(schedules, func(i, j int) bool {
		if schedules[i].Name != schedules[j].Name {
			return schedules[i].Name < schedules[j].Name
		}
		return schedules[i].ID < schedules[j].ID
	})
	return schedules, nil
}

func (repository *MemoryScheduleRepository) Create(_ context.Context, schedule models.Schedule) (models.Schedule, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = schedule.CreatedAt

	repository.schedules[schedule.ID] = schedule
	return schedule, nil
}

func (repository *MemoryScheduleRepository) Update(_ context.Context, schedule models.Schedule) (models.Schedule, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.schedules[schedule.ID]
	if !ok {
		return models.Schedule{}, fmt.Errorf("updating schedule: %w", ErrNotFound)
	}
	schedule.CreatedAt = existing.CreatedAt
	schedule.UpdatedAt = time.Now()

	repository.schedules[schedule.ID] = schedule
	return schedule, nil
}

func (repository *MemoryScheduleRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.schedules[id]; !ok {
		return fmt.Errorf("deleting schedule: %w", ErrNotFound)
	}
	delete(repository.schedules, id)
	return nil
}
