package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shashank18-04/recurring-reminder/internal/models"
	"github.com/shashank18-04/recurring-reminder/internal/repository"
)

type EventTypeHandler struct {
	eventTypeRepo repository.EventTypeRepository
}

func NewEventTypeHandler(eventTypeRepo repository.EventTypeRepository) *EventTypeHandler {
	return &EventTypeHandler{eventTypeRepo: eventTypeRepo}
}

type eventTypeRequest struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

func (handler *EventTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	eventTypes, err := handler.eventTypeRepo.FindAll(r.Context())
	if err != nil {
		slog.Error("finding event types", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load event types"})
		return
	}
	writeJSON(w, http.StatusOK, eventTypes)
}

func (handler *EventTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventType, err := handler.eventTypeRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "event type not found"})
		return
	}
	writeJSON(w, http.StatusOK, eventType)
}

func (handler *EventTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request eventTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid event type payload"})
		return
	}
	if request.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title is required"})
		return
	}

	created, err := handler.eventTypeRepo.Create(r.Context(), models.EventType{
		Title: request.Title,
		Color: request.Color,
	})
	if err != nil {
		slog.Error("creating event type", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create event type"})
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (handler *EventTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var request eventTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid event type payload"})
		return
	}

	id := chi.URLParam(r, "id")
	if err := handler.eventTypeRepo.Update(r.Context(), id, request.Title, request.Color); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "event type not found"})
			return
		}
		slog.Error("updating event type", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update event type"})
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (handler *EventTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := handler.eventTypeRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "event type not found"})
			return
		}
		slog.Error("deleting event type", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete event type"})
		return
	}
	w.WriteHeader(http.StatusOK)
}
