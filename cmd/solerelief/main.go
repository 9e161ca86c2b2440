package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapthttp "solerelief/internal/adapter/http"
	"solerelief/internal/adapter/memory"
	"solerelief/internal/adapter/postgres"
	"solerelief/internal/app"
	"solerelief/internal/config"
	"solerelief/internal/domain"
	"solerelief/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.Init(os.Stdout, cfg.LogLevel)
	if cfg.Source == "" {
		logger.Info("no config file found, using defaults and environment")
	} else {
		logger.Info("loaded config", "path", cfg.Source)
	}

	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		log.Fatalf("store open: %v", err)
	}
	defer closeStore()

	svc := adapthttp.Services{
		Exercises:   app.NewExerciseService(store),
		Reminders:   app.NewReminderService(store),
		Progress:    app.NewProgressService(store),
		Completions: app.NewCompletionService(store),
		Profiles:    app.NewProfileService(store),
		Summary:     app.NewSummaryService(store, store, store),
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           adapthttp.New(svc, cfg.WebDir, cfg.DefaultUserID, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			closeStore()
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}
}

// openStore returns the PostgreSQL store when a database URL is configured
// and the seeded in-memory store otherwise.
func openStore(cfg config.Config, logger *slog.Logger) (domain.Store, func(), error) {
	if !cfg.UsePostgres() {
		logger.Info("using in-memory store")
		return memory.New(cfg.DefaultUserID), func() {}, nil
	}

	db, err := postgres.Open(cfg.DatabaseURL, cfg.DefaultUserID)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using postgres store")
	return db, func() { _ = db.Close() }, nil
}
