package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"murima/internal/platform/config"
	"murima/internal/platform/httpserver"
	"murima/internal/platform/logger"
	"murima/internal/platform/middleware"
	"murima/internal/registry/handler"
	"murima/internal/registry/metrics"
	"murima/internal/registry/service"
	"murima/internal/registry/store"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	recordStore, cleanup, err := openStore(cfg)
	if err != nil {
		log.Error("store initialization failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if cfg.SeedDemo {
		if err := store.SeedDemo(context.Background(), recordStore); err != nil {
			log.Error("demo seed failed", "error", err)
			os.Exit(1)
		}
		log.Info("demo dataset seeded")
	}

	registryService := service.New(recordStore,
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
	)
	registryHandler := handler.New(registryService, log)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	registryHandler.Register(router)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting registry server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// openStore selects PostgreSQL when DATABASE_URL is set, otherwise the
// in-memory store for local development.
func openStore(cfg config.Server) (service.RecordStore, func(), error) {
	if cfg.DatabaseURL == "" {
		return store.NewInMemory(), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	pg := store.NewPostgres(db)
	if err := pg.EnsureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return pg, func() { _ = db.Close() }, nil
}
