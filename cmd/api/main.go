package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/strahovochka/insurance-system/internal/api"
	"github.com/strahovochka/insurance-system/internal/infrastructure/db/sqlite"
	"github.com/strahovochka/insurance-system/internal/pkg/config"
	"github.com/strahovochka/insurance-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := sqlite.NewDB(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("opening database")
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrating database")
	}
	if err := sqlite.Seed(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("seeding database")
	}

	e := api.NewRouter(db, cfg, log)

	go func() {
		log.Info().
			Str("addr", "http://localhost:"+cfg.Port).
			Str("env", cfg.Env).
			Msg("insurance API listening (demo accounts: admin/manager1/client1)")

		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	// Block until interrupted, then drain in-flight requests and close the
	// database handle.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
