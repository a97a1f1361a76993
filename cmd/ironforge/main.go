package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/ironforge/internal/config"
	"github.com/claude/ironforge/internal/server"
	"github.com/claude/ironforge/internal/storage"
	"github.com/claude/ironforge/internal/workout"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("IronForge starting", "version", Version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := storage.RunMigrations(cfg.Data.Dir, cfg.Data.MigrationsPath); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	if *migrateOnly {
		log.Info("migrate-only: exiting")
		return
	}

	ctx := context.Background()
	db, err := storage.Open(cfg.Data.Dir)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database opened", "dir", cfg.Data.Dir)

	userID, err := db.GetOrCreateUser(ctx, cfg.User.Email, cfg.User.Name)
	if err != nil {
		log.Error("failed to resolve user", "error", err)
		os.Exit(1)
	}

	if err := db.Seed(ctx, userID, log); err != nil {
		log.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	p, err := db.GetProgram(ctx, userID)
	if err != nil || p == nil {
		log.Error("failed to load program", "error", err)
		os.Exit(1)
	}
	if err := p.Validate(); err != nil {
		log.Error("stored program is invalid", "error", err)
		os.Exit(1)
	}

	store := workout.NewStore(db, userID, log)
	if err := store.Load(ctx, userID); err != nil {
		log.Error("failed to load workout data", "error", err)
		os.Exit(1)
	}
	log.Info("workout data loaded", "cells", store.Len())

	tracker := workout.NewTracker(p, store, log)
	if settings, err := db.GetSettings(ctx, userID); err == nil && settings != nil && settings.CurrentWeek >= 1 {
		if err := tracker.SetCurrentWeek(settings.CurrentWeek); err != nil {
			log.Warn("stored week out of range, starting at week 1", "week", settings.CurrentWeek)
		}
	}

	srv := server.New(db, userID, p, store, tracker, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("listen failed", "addr", addr, "error", err)
		os.Exit(1)
	}
	log.Info("server starting", "addr", addr, "week", tracker.CurrentWeek())

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: flush pending workout data before exiting.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	srv.Flush()
	log.Info("server stopped")
}
