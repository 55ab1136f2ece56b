package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quick-task-capture/config"
	_ "quick-task-capture/docs" // Swagger docs
	"quick-task-capture/internal/httpserver"
	"quick-task-capture/internal/middleware"
	"quick-task-capture/internal/model"
	taskHTTP "quick-task-capture/internal/task/delivery/http"
	"quick-task-capture/internal/task/repository/memory"
	"quick-task-capture/internal/task/usecase"
	"quick-task-capture/pkg/gcalendar"
	"quick-task-capture/pkg/log"
)

// @title       Quick Task Capture API
// @description Task quick-capture with natural-language schedule parsing and Google Calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Quick Task Capture...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Google Calendar client (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendar = client
		}
	}

	// 4. Task domain
	taskRepo, err := memory.New(logger, cfg.Capture.StoreCapacity)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task store: ", err)
		return
	}

	taskUC := usecase.New(logger, taskRepo, calendar, usecase.Config{
		Timezone:        cfg.Capture.Timezone,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		DefaultDuration: time.Duration(cfg.Capture.DefaultDurationMin) * time.Minute,
	})

	taskHandler := taskHTTP.New(logger, taskUC)
	mw := middleware.New(logger, cfg.Capture.PreviewRatePerMin)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: model.Environment(cfg.Environment.Name),
		Middleware:  mw,
		TaskHandler: taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
