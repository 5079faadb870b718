package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"motor_seeder/internal/config"
	"motor_seeder/internal/logger"
	"motor_seeder/internal/mockapi"
	"motor_seeder/internal/repository"
	"motor_seeder/internal/repository/db"
	"motor_seeder/internal/server"
)

const (
	defaultLearnTick = 500 * time.Millisecond
	shutdownTimeout  = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	// open DB
	conn, err := openDB(cfg.Mock.DBPath, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := mockapi.NewService(repos, mockapi.Options{
		SigningKey: cfg.Mock.SigningKey,
		TokenTTL:   cfg.Mock.TokenTTL,
		LearnDelay: cfg.Mock.LearnDelay,
		Logger:     log,
	})
	apiHandler := mockapi.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := mockapi.Bootstrap(ctx, services, cfg.Mock.Username, cfg.Mock.Password, mockapi.DefaultDevices()); err != nil {
		log.Fatalw("failed to bootstrap mock data", "err", err)
	}

	// start baseline learner
	go services.Run(ctx, defaultLearnTick)

	// start HTTP server
	srv := server.New(cfg.Mock.Port, apiHandler.InitRoutes())
	runHTTPServer(srv, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// openDB initializes the SQLite database using configuration.
func openDB(path string, log *logger.Logger) (*sql.DB, error) {
	if path == "" {
		log.Infow("mock.db_path not set; using default file", "default", "mockapi.db")
		path = "mockapi.db"
	}
	return db.InitDB(path)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("mock motor api listening", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
