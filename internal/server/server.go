// Package server serves a live preview of the workspace project.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/chrisdamba/menucraft/internal/export"
	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/chrisdamba/menucraft/internal/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	workspace repositories.WorkspaceRepository
	opts      export.Options
}

func New(workspace repositories.WorkspaceRepository, opts export.Options) *Server {
	return &Server{workspace: workspace, opts: opts}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/", s.Preview)
	r.Get("/export/{format}", s.Export)

	return r
}

// GET /
// The workspace is re-read on every request so CLI edits show up on reload.
func (s *Server) Preview(w http.ResponseWriter, r *http.Request) {
	project, ok := s.current(w, r)
	if !ok {
		return
	}
	s.render(w, export.FormatHTML, project, false)
}

// GET /export/{format}
func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		respondError(w, http.StatusNotFound, "unknown_format", err.Error())
		return
	}
	project, ok := s.current(w, r)
	if !ok {
		return
	}
	s.render(w, format, project, true)
}

func (s *Server) current(w http.ResponseWriter, r *http.Request) (models.MenuProject, bool) {
	project, err := s.workspace.LoadCurrent(r.Context())
	if errors.Is(err, repositories.ErrNoCurrentProject) {
		respondError(w, http.StatusNotFound, "no_project", "no active project; run `menucraft new` first")
		return models.MenuProject{}, false
	}
	if err != nil {
		log.Printf("failed to load workspace project: %v", err)
		respondError(w, http.StatusInternalServerError, "internal", "failed to load project")
		return models.MenuProject{}, false
	}
	return *project, true
}

func (s *Server) render(w http.ResponseWriter, format export.Format, project models.MenuProject, download bool) {
	exporter, err := export.New(format, s.opts)
	if err != nil {
		respondError(w, http.StatusNotFound, "unknown_format", err.Error())
		return
	}

	// buffer so a failed render still gets a clean error response
	var buf bytes.Buffer
	if err := exporter.Export(&buf, project); err != nil {
		log.Printf("failed to render %s: %v", format, err)
		respondError(w, http.StatusInternalServerError, "render_failed", "failed to render menu")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if download {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(project, format)))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: requestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("preview server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down preview server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: code, Message: message})
}
