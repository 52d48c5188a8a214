package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/shashank18-04/recurring-reminder/internal/config"
	"github.com/shashank18-04/recurring-reminder/internal/handlers"
	"github.com/shashank18-04/recurring-reminder/internal/repository"
	"github.com/shashank18-04/recurring-reminder/internal/services"
)

type Server struct {
	router *chi.Mux
	config config.Config
}

func New(
	cfg config.Config,
	eventTypeRepo repository.EventTypeRepository,
	scheduleRepo repository.ScheduleRepository,
	notificationRepo repository.NotificationRepository,
	scheduleService *services.ScheduleService,
	clock services.Clock,
) *Server {
	expandHandler := handlers.NewExpandHandler(clock)
	eventTypeHandler := handlers.NewEventTypeHandler(eventTypeRepo)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, scheduleRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	icalHandler := handlers.NewICalHandler(scheduleRepo, eventTypeRepo)

	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Compress(5))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Get("/ical", icalHandler.Feed)

	router.Route("/api", func(r chi.Router) {
		r.Post("/expand", expandHandler.Expand)
		r.Get("/settings/default", expandHandler.DefaultSettings)

		r.Get("/event-types", eventTypeHandler.List)
		r.Post("/event-types", eventTypeHandler.Create)
		r.Get("/event-types/{id}", eventTypeHandler.Get)
		r.Put("/event-types/{id}", eventTypeHandler.Update)
		r.Delete("/event-types/{id}", eventTypeHandler.Delete)

		r.Get("/schedules", scheduleHandler.List)
		r.Post("/schedules", scheduleHandler.Create)
		r.Get("/schedules/{id}", scheduleHandler.Get)
		r.Put("/schedules/{id}", scheduleHandler.Update)
		r.Delete("/schedules/{id}", scheduleHandler.Delete)

		r.Get("/notifications", notificationHandler.List)
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

func (server *Server) Start() error {
	address := ":" + server.config.Port
	slog.Info("starting server", "address", address)
	return http.ListenAndServe(address, server.router)
}
