package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"pet-store/internal/adapters/storage/postgres"
	"pet-store/internal/config"
	"pet-store/internal/platform/logger"
	"pet-store/internal/router"

	"go.uber.org/zap"
)

// @title Pet Store API
// @version 1.0
// @description API REST de catálogo de mascotas (CRUD + compra).
// @BasePath /
func main() {
	cfg := config.Parse()

	lg, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    "pet-store",
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	var db *sql.DB
	if cfg.DatabaseDSN != "" {
		db, err = postgres.Open(cfg.DatabaseDSN)
		if err != nil {
			lg.Fatal("db open", zap.Error(err))
		}
		defer func() { _ = db.Close() }()

		if err := postgres.Migrate(db); err != nil {
			lg.Fatal("db migrate", zap.Error(err))
		}
		lg.Info("using postgres storage")
	} else {
		lg.Info("using in-memory storage")
	}

	r := router.NewRouter(router.Options{DB: db, Logger: lg})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lg.Info("starting server", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lg.Fatal("server error", zap.Error(err))
	}
}
