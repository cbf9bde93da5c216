package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"hurghada-dream/go_backend/internal/app/config"
	apphttp "hurghada-dream/go_backend/internal/app/http"
	"hurghada-dream/go_backend/internal/app/http/handlers"
	"hurghada-dream/go_backend/internal/catalog"
	"hurghada-dream/go_backend/internal/domain/activity"
	"hurghada-dream/go_backend/internal/domain/quote/pdf/gofpdf"
	"hurghada-dream/go_backend/internal/domain/settings"
	"hurghada-dream/go_backend/internal/infra/db/postgres"
	"hurghada-dream/go_backend/internal/infra/kv"
	"hurghada-dream/go_backend/internal/infra/logger"
	"hurghada-dream/go_backend/internal/infra/metrics"
	"hurghada-dream/go_backend/internal/remote"
)

const shutdownTimeout = 10 * time.Second

func Run() (err error) {
	cfg := config.MustLoad()

	log := logger.New(logger.Options{
		ServiceName: "hurghada-dream",
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := kv.Open(ctx, kv.Options{Driver: cfg.StoreDriver, Path: cfg.StorePath, RedisURL: cfg.RedisURL})
	if err != nil {
		return fmt.Errorf("kv: %w", err)
	}
	defer func() { err = multierr.Append(err, store.Close()) }()

	prefs := settings.NewStore(ctx, store, cfg.SeedSettings(), log)

	var db *postgres.DB
	if cfg.DatabaseURL != "" {
		db, err = postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db: %w", err)
		}
		defer db.Close()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	syncMetrics := metrics.NewSyncMetrics(reg)

	source := remote.New(remote.Options{Settings: prefs.Get(), DB: db})
	cat := catalog.NewStore(ctx, catalog.Options{
		KV:      store,
		Remote:  source,
		Logger:  log,
		Metrics: syncMetrics,
		Seed:    activity.Examples(),
	})
	log.Info(log.WithFields(ctx, map[string]any{
		"synced":     cat.Synced(),
		"activities": len(cat.List()),
	}), "catalog loaded")

	poller := catalog.NewPoller(source, cat, cfg.SyncInterval, log, syncMetrics)
	pollDone := make(chan struct{})
	go func() {
		defer close(pollDone)
		poller.Start(ctx)
		poller.Wait()
	}()
	defer func() { <-pollDone }()

	h := handlers.New(cat, prefs, gofpdf.New(), log, cfg.QuoteDraftTTL)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           apphttp.NewRouter(cfg, h, log, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info(log.WithField(ctx, "addr", cfg.HTTPAddr), "listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		stop()
		return err
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
