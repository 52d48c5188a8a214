package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shashank18-04/recurring-reminder/internal/models"
	"github.com/shashank18-04/recurring-reminder/internal/services"
)

// ExpandHandler exposes the recurrence expander to the UI. Expansion is cheap
// and bounded, so the picker calls it on every settings change.
type ExpandHandler struct {
	clock services.Clock
}

func NewExpandHandler(clock services.Clock) *ExpandHandler {
	return &ExpandHandler{clock: clock}
}

func (handler *ExpandHandler) Expand(w http.ResponseWriter, r *http.Request) {
	var settings models.RecurringSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid settings payload"})
		return
	}

	settings.Normalize()
	dates := services.ExpandRecurrence(settings)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dates": dates,
		"count": len(dates),
	})
}

// DefaultSettings returns the fresh-session settings value the picker starts
// from when no rule exists yet.
func (handler *ExpandHandler) DefaultSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.DefaultSettings(handler.clock.Now()))
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
