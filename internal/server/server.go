// Package server exposes the workout engine to the UI layer as a local
// JSON API. All engine access is funneled through one mutex so the
// single-writer model the engine assumes survives Go's concurrent HTTP
// runtime.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/claude/ironforge/internal/program"
	"github.com/claude/ironforge/internal/storage"
	"github.com/claude/ironforge/internal/workout"
	"github.com/go-chi/chi/v5"
)

// persistDelay is how long after the last cell write the store is flushed
// to durable storage, so per-keystroke edits coalesce into one write.
const persistDelay = 500 * time.Millisecond

// Compile-time check: *storage.DB satisfies the engine's blob collaborator.
var _ workout.Blobs = (*storage.DB)(nil)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	log    *slog.Logger
	router chi.Router

	mu           sync.Mutex
	userID       string
	program      *program.Program
	store        *workout.Store
	tracker      *workout.Tracker
	stats        *workout.Stats
	persistTimer *time.Timer
}

// New creates a Server over an assembled engine with all routes
// configured.
func New(db *storage.DB, userID string, p *program.Program, store *workout.Store, tracker *workout.Tracker, log *slog.Logger) *Server {
	s := &Server{
		db:      db,
		log:     log,
		router:  chi.NewRouter(),
		userID:  userID,
		program: p,
		store:   store,
		tracker: tracker,
		stats:   workout.NewStats(p, store),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/program", s.handleProgram)
		r.Get("/exercises", s.handleExercises)

		r.Get("/settings", s.handleSettings)
		r.Put("/settings/week", s.handleSetWeek)

		r.Get("/session", s.handleSession)
		r.Post("/session/start", s.handleStartWorkout)
		r.Post("/session/end", s.handleEndWorkout)

		r.Get("/cells", s.handleGetCell)
		r.Put("/cells", s.handleSetCell)

		r.Get("/progress", s.handleProgress)
		r.Get("/volume", s.handleVolume)

		r.Get("/measurements", s.handleQueryMeasurements)
		r.Post("/measurements", s.handleInsertMeasurement)

		r.Get("/export", s.handleExport)
		r.Post("/import", s.handleImport)
		r.Post("/reset", s.handleReset)
	})
}

// schedulePersist (re)arms the debounced flush. Called with s.mu held.
func (s *Server) schedulePersist() {
	if s.persistTimer != nil {
		s.persistTimer.Stop()
	}
	s.persistTimer = time.AfterFunc(persistDelay, s.flush)
}

// flush writes the store to durable storage if it has unpersisted
// changes. A failed flush is a warning, not a fatal error: the data is
// still in memory and the next write retries.
func (s *Server) flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.Dirty() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.store.Persist(ctx); err != nil {
		s.log.Warn("workout data not persisted", "error", err)
	}
}

// Flush forces a synchronous persist, used at shutdown.
func (s *Server) Flush() {
	s.mu.Lock()
	if s.persistTimer != nil {
		s.persistTimer.Stop()
	}
	s.mu.Unlock()
	s.flush()
}
