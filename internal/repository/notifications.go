package repository

import (
	"context"
	"sync"

	"github.com/shashank18-04/recurring-reminder/internal/models"
)

// notificationCapacity bounds the in-memory history of fired reminders.
const notificationCapacity = 200

type NotificationRepository interface {
	Add(ctx context.Context, notification models.Notification) error
	FindRecent(ctx context.Context, limit int) ([]models.Notification, error)
}

type MemoryNotificationRepository struct {
	mu            sync.RWMutex
	notifications []models.Notification
}

func NewNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{}
}

func (repository *MemoryNotificationRepository) Add(_ context.Context, notification models.Notification) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.notifications = append(repository.notifications, notification)
	if len(repository.notifications) > notificationCapacity {
		repository.notifications = repository.notifications[len(repository.notifications)-notificationCapacity:]
	}
	return nil
}

// FindRecent returns up to limit notifications, newest first.
func (repository *MemoryNotificationRepository) FindRecent(_ context.Context, limit int) ([]models.Notification, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	if limit <= 0 || limit > len(repository.notifications) {
		limit = len(repository.notifications)
	}

	recent := make([]models.Notification, 0, limit)
	for i := len(repository.notifications) - 1; i >= len(repository.notifications)-limit; i-- {
		recent = append(recent, repository.notifications[i])
	}
	return recent, nil
}
