// Package main is the entry point for the trip planner.
// Its sole responsibility is wiring dependencies together and running the
// interactive shell. No business logic belongs here.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pressly/goose/v3"

	"github.com/santnier92/proyecto-gestion-viajes/internal/config"
	"github.com/santnier92/proyecto-gestion-viajes/internal/repo"
	"github.com/santnier92/proyecto-gestion-viajes/internal/router"
	"github.com/santnier92/proyecto-gestion-viajes/internal/session"
	"github.com/santnier92/proyecto-gestion-viajes/internal/storage"
	"github.com/santnier92/proyecto-gestion-viajes/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// Logs go to stderr so they never interleave with the rendered views on
	// stdout. Text handler: this is an interactive program, not a service
	// feeding a log aggregator.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Durable store ----------------------------------------------------
	db, err := storage.OpenDB(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Apply pending migrations before anything touches the kv table.
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		slog.Error("failed to create migration provider", "error", err)
		os.Exit(1)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("durable store ready", "path", cfg.DatabasePath)

	// --- Application wiring ----------------------------------------------
	durable := storage.NewSQLiteStore(db)
	volatile := storage.NewMemoryStore()

	users := repo.NewUserRepo(durable, logger)
	trips := repo.NewTripRepo(durable, logger)
	sessions := session.NewManager(volatile, logger)

	ui := newTerminalUI(os.Stdin, os.Stdout)
	rt := router.New(users, trips, sessions, volatile, ui, ui, logger)

	// --- Shell ------------------------------------------------------------
	// The initial navigation mirrors a page load with no fragment: the
	// router defaults to the login view.
	ctx := context.Background()
	if err := rt.Navigate(ctx, ""); err != nil {
		slog.Error("initial navigation failed", "error", err)
		os.Exit(1)
	}

	runShell(ctx, rt, ui)
	slog.Info("goodbye")
}
