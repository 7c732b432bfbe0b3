package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/wordgame/internal/api"
	"github.com/vytor/wordgame/internal/catalog"
	"github.com/vytor/wordgame/internal/config"
	"github.com/vytor/wordgame/internal/db"
	"github.com/vytor/wordgame/internal/logger"
	"github.com/vytor/wordgame/internal/repository/sqlstore"
	"github.com/vytor/wordgame/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration: %v", err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("===========================================")
	log.Info("Word Game Server Starting")
	log.Info("===========================================")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_driver=%s", cfg.DBDriver)
	log.Debug("words_path=%s", cfg.WordsPath)
	log.Debug("static_dir=%s", cfg.StaticDir)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("storage_timeout=%s", cfg.StorageTimeout)
	log.Debug("request_timeout=%s", cfg.RequestTimeout)

	// An unusable dataset is fatal: the server never starts without words.
	words, err := catalog.Load(cfg.WordsPath)
	if err != nil {
		log.Error("failed to load word dataset: %v", err)
		os.Exit(1)
	}

	database, err := db.Open(cfg.DBDriver, cfg.DSN(), db.WithSQLLogging(cfg.LogSQL))
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	store := sqlstore.NewStore(database)
	timeout := services.WithStorageTimeout(cfg.StorageTimeout)

	srv := &api.Server{
		Catalog:         words,
		ProgressService: services.NewProgressService(store, store.Progress(), timeout),
		StatsService:    services.NewStatsService(store.Statistics(), timeout),
		Store:           store,
		StaticDir:       cfg.StaticDir,
		CORSOrigins:     cfg.CORSOrigins,
		RequestTimeout:  cfg.RequestTimeout,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Info("received signal %v, initiating graceful shutdown", sig)
	case err := <-serverErr:
		log.Error("HTTP server error: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("Word Game Server Stopped")
	log.Info("===========================================")
}
