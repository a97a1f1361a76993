// ironforge-mcp serves read-only training insights over MCP stdio,
// reading the same local database as the main app.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/claude/ironforge/internal/config"
	ifmcp "github.com/claude/ironforge/internal/mcp"
	"github.com/claude/ironforge/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Logs go to stderr: stdout is the MCP transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := storage.RunMigrations(cfg.Data.Dir, cfg.Data.MigrationsPath); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := storage.Open(cfg.Data.Dir)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

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

	s := ifmcp.New(db, userID, p, Version, log)
	log.Info("MCP server starting", "transport", "stdio", "user", userID)
	if err := server.ServeStdio(s); err != nil {
		log.Error("MCP server stopped", "error", err)
		os.Exit(1)
	}
}
