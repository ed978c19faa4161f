package main

import (
	"context"
	"github.com/mufasadev/encounter-types/internal/app"
	"github.com/mufasadev/encounter-types/internal/config"
	"github.com/mufasadev/encounter-types/internal/di"
	"github.com/mufasadev/encounter-types/internal/errors"
	"github.com/mufasadev/encounter-types/internal/infrastructure/api/routers"
	"github.com/mufasadev/encounter-types/pkg/log"
	"github.com/mufasadev/encounter-types/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	appName = "encounter-types"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	opts := []log.LoggerOption{log.WithLogLevel(cfg.Log.Level)}
	if cfg.Log.ConsoleEnabled() {
		opts = append(opts, log.WithConsoleLogger())
	}
	if cfg.Log.File != "" {
		opts = append(opts, log.WithFileLogger(cfg.Log.File))
	}
	log.Init(appName, opts...)
	logger := log.GetLogger()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(cfg.Metrics.Namespace, reg)

	repo, closeDB, err := app.OpenEncounterTypeRepository(ctx, cfg.PostgreSQL)
	if err != nil {
		logger.Fatal().Err(err).Msg(errors.ErrorFailedToConnectToTheDatabase)
	}
	defer closeDB()

	container := di.NewContainer(repo, collector)

	audit := app.NewNameConflictAuditProcess(container.NameConflictAuditInteractor, cfg.Process)
	go func() {
		if err := audit.Run(ctx); err != nil {
			logger.Error().Err(err).Msg(errors.ErrFailedAuditNameConflicts)
		}
	}()

	router := routers.NewRouter(container)
	service := app.NewService(cfg)
	service.Run(ctx, router)
}
