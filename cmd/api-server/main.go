package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/healthbuddy/health-tracker-core/internal/api"
	"github.com/healthbuddy/health-tracker-core/internal/config"
	"github.com/healthbuddy/health-tracker-core/internal/record"
	"github.com/healthbuddy/health-tracker-core/internal/tracker"
)

const version = "0.1.0"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("api-server starting up")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	log.Printf("running in env=%s http_port=%s", cfg.Env, cfg.HTTPPort)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := record.NewMemoryRepository()
	if err := loadRecords(cfg, repo); err != nil {
		log.Fatalf("load records: %v", err)
	}
	appointments, medications := repo.Counts()
	log.Printf("store ready appointments=%d medications=%d", appointments, medications)

	svc := tracker.NewService(repo, time.Now)

	// Chrome clock: display only, no engine depends on it.
	clock := api.NewClock()
	go clock.Run(rootCtx, cfg.ClockTick)

	router := api.NewRouter(api.RouterConfig{
		Service: svc,
		Clock:   clock,
		Env:     cfg.Env,
		Version: version,
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-rootCtx.Done()

	log.Println("shutting down api-server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

func loadRecords(cfg config.Config, repo record.Repository) error {
	if cfg.FixturePath != "" {
		fixture, err := record.LoadFixture(cfg.FixturePath)
		if err != nil {
			return err
		}
		log.Printf("loaded fixture from %s", cfg.FixturePath)
		return fixture.Populate(repo)
	}

	if cfg.DemoData {
		log.Println("loading built-in demo dataset")
		return record.DemoFixture().Populate(repo)
	}

	log.Println("starting with empty collections")
	return nil
}
