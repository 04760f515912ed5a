package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campus-sports/arena/internal/auth"
	"github.com/campus-sports/arena/internal/campus"
	"github.com/campus-sports/arena/internal/config"
	"github.com/campus-sports/arena/internal/database"
	"github.com/campus-sports/arena/internal/events"
	server "github.com/campus-sports/arena/internal/http"
	"github.com/campus-sports/arena/internal/matchmaking"
	"github.com/campus-sports/arena/internal/metrics"
	"github.com/campus-sports/arena/internal/notifier/slack"
	"github.com/campus-sports/arena/internal/pubsub"
	"github.com/campus-sports/arena/internal/scheduling"
	"github.com/campus-sports/arena/internal/users"
	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	clock := clockwork.NewRealClock()
	userStore := users.New(db, clock)
	campusStore := campus.New(db)
	matchStore := matchmaking.NewStore(db, clock, campusStore)
	scheduleStore := scheduling.NewStore(db, clock)
	eventStore := events.New(db, campusStore)
	authSvc := auth.New(cfg.Auth.JWTSecret, clock)
	metricsSvc := metrics.NewService()
	metricsStore := metrics.New(db)
	metricsHandler := metrics.NewMetricsHandler()
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	pubsub := pubsub.New(cfg.ProjectID)

	s := server.NewServer(
		userStore,
		campusStore,
		matchStore,
		scheduleStore,
		eventStore,
		authSvc,
		metricsSvc,
		metricsStore,
		metricsHandler,
		cfg,
		notifier,
		pubsub,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
