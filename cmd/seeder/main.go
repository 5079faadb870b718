package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"motor_seeder/internal/catalog"
	"motor_seeder/internal/config"
	"motor_seeder/internal/logger"
	"motor_seeder/internal/metrics"
	"motor_seeder/internal/models"
	"motor_seeder/internal/motorapi"
	"motor_seeder/internal/report"
	"motor_seeder/internal/service"
	"motor_seeder/internal/transport"
)

func main() {
	// load config (defaults, configs/config.yml, MOTORSEED_* env)
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	cat, err := catalog.Load(cfg.Seed.File)
	if err != nil {
		log.Fatalw("failed to load seed catalog", "file", cfg.Seed.File, "err", err)
	}

	// wire dependencies
	rec := metrics.New()
	client, err := transport.NewClient(cfg.API.BaseURL,
		transport.WithTimeout(cfg.API.Timeout),
		transport.WithLogger(log),
		transport.WithMetrics(rec),
	)
	if err != nil {
		log.Fatalw("invalid api base url", "base_url", cfg.API.BaseURL, "err", err)
	}
	services := service.NewService(motorapi.New(client), cat, service.Options{
		Credentials:     models.Credentials{Username: cfg.Auth.Username, Password: cfg.Auth.Password},
		PollInterval:    cfg.Baseline.PollInterval,
		BaselineTimeout: cfg.Baseline.Timeout,
		Logger:          log,
		Metrics:         rec,
	})
	pipeline := service.NewPipeline(services, log, rec)

	// cancel the run on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infow("seeding motor demo data", "base_url", cfg.API.BaseURL)
	result, runErr := pipeline.Run(ctx)

	writeOutputs(cfg, result, rec, log)

	if runErr != nil {
		log.Fatalw("seeding aborted", "reached", result.Reached.String(), "err", runErr)
	}
}

// writeOutputs exports the run report and metrics when configured.
func writeOutputs(cfg *config.Config, result *service.Report, rec *metrics.Recorder, log *logger.Logger) {
	if cfg.Report.Path != "" {
		if err := report.Write(cfg.Report.Path, result); err != nil {
			log.Errorw("failed to write run report", "path", cfg.Report.Path, "err", err)
		} else {
			log.Infow("run report written", "path", cfg.Report.Path)
		}
	}
	if cfg.Metrics.Textfile != "" {
		if err := rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			log.Errorw("failed to write metrics", "path", cfg.Metrics.Textfile, "err", err)
		}
	}
}
