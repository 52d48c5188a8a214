package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shashank18-04/recurring-reminder/internal/models"
	"github.com/shashank18-04/recurring-reminder/internal/repository"
	"github.com/shashank18-04/recurring-reminder/internal/services"
)

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
	scheduleRepo    repository.ScheduleRepository
}

func NewScheduleHandler(scheduleService *services.ScheduleService, scheduleRepo repository.ScheduleRepository) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		scheduleRepo:    scheduleRepo,
	}
}

type scheduleRequest struct {
	Name        string                            `json:"name"`
	Settings    models.RecurringSettings          `json:"settings"`
	Master      *models.EventAssignment           `json:"master,omitempty"`
	Assignments map[string]models.EventAssignment `json:"assignments,omitempty"`
}

func (handler *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	schedules, err := handler.scheduleRepo.FindAll(r.Context())
	if err != nil {
		slog.Error("finding schedules", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load schedules"})
		return
	}
	writeJSON(w, http.StatusOK, schedules)
}

func (handler *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	schedule, err := handler.scheduleRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "schedule not found"})
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func (handler *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid schedule payload"})
		return
	}
	if request.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	created, err := handler.scheduleService.Commit(r.Context(), request.Name, request.Settings, request.Master, request.Assignments)
	if err != nil {
		slog.Error("creating schedule", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create schedule"})
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (handler *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var request scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid schedule payload"})
		return
	}

	id := chi.URLParam(r, "id")
	updated, err := handler.scheduleService.Recommit(r.Context(), id, request.Name, request.Settings, request.Master, request.Assignments)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "schedule not found"})
			return
		}
		slog.Error("updating schedule", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update schedule"})
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (handler *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := handler.scheduleRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "schedule not found"})
			return
		}
		slog.Error("deleting schedule", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete schedule"})
		return
	}
	w.WriteHeader(http.StatusOK)
}
