package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/robfig/cron/v3"

	"github.com/shashank18-04/recurring-reminder/internal/config"
	"github.com/shashank18-04/recurring-reminder/internal/repository"
	"github.com/shashank18-04/recurring-reminder/internal/server"
	"github.com/shashank18-04/recurring-reminder/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	configureLogging(cfg.LogLevel)

	eventTypeRepo := repository.NewEventTypeRepository()
	scheduleRepo := repository.NewScheduleRepository()
	notificationRepo := repository.NewNotificationRepository()

	clock := services.RealClock{}
	scheduleService := services.NewScheduleService(scheduleRepo)
	reminderService := services.NewReminderService(scheduleRepo, eventTypeRepo, notificationRepo, services.SlogNotifier{}, clock)

	scheduler := cron.New()
	_, err = scheduler.AddFunc("@every "+cfg.PollInterval.String(), func() {
		if err := reminderService.CheckDue(context.Background()); err != nil {
			slog.Error("checking due reminders", "error", err)
		}
	})
	if err != nil {
		slog.Error("scheduling reminder checks", "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := server.New(cfg, eventTypeRepo, scheduleRepo, notificationRepo, scheduleService, clock)
	if err := srv.Start(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func configureLogging(level string) {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})))
}
