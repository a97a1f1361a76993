// Package mcp exposes read-only training insights over the Model Context
// Protocol: progress, volume and week comparisons an assistant can query
// without going through the HTTP API. Tools reload the workout blob on
// every call, so they always reflect the last persisted state.
package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/claude/ironforge/internal/program"
	"github.com/claude/ironforge/internal/storage"
	"github.com/claude/ironforge/internal/workout"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(db *storage.DB, userID string, p *program.Program, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("IronForge", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("IronForge training data server. Query program structure, workout completion, training volume and body measurements. All data is read-only."),
	)

	h := &handlers{db: db, userID: userID, program: p, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetProgram, Handler: h.getProgram},
		server.ServerTool{Tool: toolGetWeekProgress, Handler: h.getWeekProgress},
		server.ServerTool{Tool: toolGetDayProgress, Handler: h.getDayProgress},
		server.ServerTool{Tool: toolGetWeekVolume, Handler: h.getWeekVolume},
		server.ServerTool{Tool: toolCompareWeeks, Handler: h.compareWeeks},
		server.ServerTool{Tool: toolGetSessionDurations, Handler: h.getSessionDurations},
		server.ServerTool{Tool: toolGetMeasurements, Handler: h.getMeasurements},
	)

	s.AddResources(
		server.ServerResource{Resource: resProgram, Handler: h.programResource},
		server.ServerResource{Resource: resCurrentWeek, Handler: h.currentWeekResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	db      *storage.DB
	userID  string
	program *program.Program
	log     *slog.Logger
}

// stats loads a fresh snapshot of the workout blob and wraps it in the
// aggregation view.
func (h *handlers) stats(ctx context.Context) (*workout.Stats, error) {
	store := workout.NewStore(h.db, h.userID, h.log)
	if err := store.Load(ctx, h.userID); err != nil {
		return nil, fmt.Errorf("loading workout data: %w", err)
	}
	return workout.NewStats(h.program, store), nil
}

// currentWeek resolves the user's current program week from settings,
// falling back to week 1 when settings are missing.
func (h *handlers) currentWeek(ctx context.Context) int {
	settings, err := h.db.GetSettings(ctx, h.userID)
	if err != nil || settings == nil || settings.CurrentWeek < 1 {
		return 1
	}
	return settings.CurrentWeek
}

// --- Resource definitions ---

var resProgram = mcp.NewResource(
	"ironforge://program",
	"Training Program",
	mcp.WithResourceDescription("The active training program: days, exercise slots, target sets and rep schemes"),
	mcp.WithMIMEType("application/json"),
)

var resCurrentWeek = mcp.NewResource(
	"ironforge://current_week",
	"Current Week Summary",
	mcp.WithResourceDescription("Completion, volume and session durations for the user's current program week"),
	mcp.WithMIMEType("application/json"),
)
