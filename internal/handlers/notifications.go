package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shashank18-04/recurring-reminder/internal/repository"
)

type NotificationHandler struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationHandler(notificationRepo repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepo: notificationRepo}
}

// List returns recently fired reminders, newest first.
func (handler *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	notifications, err := handler.notificationRepo.FindRecent(r.Context(), limit)
	if err != nil {
		slog.Error("finding notifications", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load notifications"})
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}
