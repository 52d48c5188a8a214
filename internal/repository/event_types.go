package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shashank18-04/recurring-reminder/internal/models"
)

// ErrNotFound is returned when a lookup by ID matches nothing.
var ErrNotFound = errors.New("not found")

type EventTypeRepository interface {
	FindByID(ctx context.Context, id string) (models.EventType, error)
	FindAll(ctx context.Context) ([]models.EventType, error)
	Create(ctx context.Context, eventType models.EventType) (models.EventType, error)
	Update(ctx context.Context, id string, title string, color string) error
	Delete(ctx context.Context, id string) error
}

// MemoryEventTypeRepository keeps the event-type registry in process memory;
// durability is left to the host application.
type MemoryEventTypeRepository struct {
	mu    sync.RWMutex
	types map[string]models.EventType
}

func NewEventTypeRepository() *MemoryEventTypeRepository {
	return &MemoryEventTypeRepository{types: make(map[string]models.EventType)}
}

func (repository *MemoryEventTypeRepository) FindByID(_ context.Context, id string) (models.EventType, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	eventType, ok := repository.types[id]
	if !ok {
		return models.EventType{}, fmt.Errorf("finding event type by id: %w", ErrNotFound)
	}
	return eventType, nil
}

func (repository *MemoryEventTypeRepository) FindAll(_ context.Context) ([]models.EventType, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	eventTypes := make([]models.EventType, 0, len(repository.types))
	for _, eventType := range repository.types {
		eventTypes = append(eventTypes, eventType)
	}
	sort.Slice(eventTypes, func(i, j int) bool {
		return eventTypes[i].Title < eventTypes[j].Title
	})
	return eventTypes, nil
}

func (repository *MemoryEventTypeRepository) Create(_ context.Context, eventType models.EventType) (models.EventType, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if eventType.ID == "" {
		eventType.ID = uuid.New().String()
	}
	eventType.CreatedAt = time.Now()

	repository.types[eventType.ID] = eventType
	return eventType, nil
}

func (repository *MemoryEventTypeRepository) Update(_ context.Context, id string, title string, color string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	eventType, ok := repository.types[id]
	if !ok {
		return fmt.Errorf("updating event type: %w", ErrNotFound)
	}
	eventType.Title = title
	eventType.Color = color
	repository.types[id] = eventType
	return nil
}

func (repository *MemoryEventTypeRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.types[id]; !ok {
		return fmt.Errorf("deleting event type: %w", ErrNotFound)
	}
	delete(repository.types, id)
	return nil
}
