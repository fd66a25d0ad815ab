// Package server exposes sessions and statistics over a JSON HTTP API
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/quiver/internal/config"
	"github.com/ayoisaiah/quiver/internal/osutil"
	"github.com/ayoisaiah/quiver/internal/session"
	"github.com/ayoisaiah/quiver/interpret"
	"github.com/ayoisaiah/quiver/report"
	"github.com/ayoisaiah/quiver/stats"
	"github.com/ayoisaiah/quiver/store"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

type errorHandler func(w http.ResponseWriter, r *http.Request) error

// statusError attaches an HTTP status to an error.
type statusError struct {
	err    error
	status int
}

func (e *statusError) Error() string {
	return e.err.Error()
}

func (e *statusError) Unwrap() error {
	return e.err
}

func badRequest(err error) error {
	return &statusError{err: err, status: http.StatusBadRequest}
}

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err == nil {
		return
	}

	status := http.StatusInternalServerError

	var se *statusError

	switch {
	case errors.As(err, &se):
		status = se.status
	case errors.Is(err, store.ErrSessionNotFound):
		status = http.StatusNotFound
	}

	slog.Error(
		"request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err),
	)

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// Server serves the session database.
type Server struct {
	db      store.DB
	compare stats.CompareOptions
	mux     *http.ServeMux
}

// New returns a server backed by db. Statistics use compare to select the
// subpopulation of the training/competition comparison.
func New(db store.DB, compare stats.CompareOptions) *Server {
	s := &Server{
		db:      db,
		compare: compare,
		mux:     http.NewServeMux(),
	}

	s.mux.Handle("GET /api/health", errorHandler(s.health))
	s.mux.Handle("GET /api/sessions", errorHandler(s.listSessions))
	s.mux.Handle("POST /api/sessions", errorHandler(s.createSession))
	s.mux.Handle("GET /api/sessions/{id}", errorHandler(s.getSession))
	s.mux.Handle("PUT /api/sessions/{id}", errorHandler(s.updateSession))
	s.mux.Handle("DELETE /api/sessions/{id}", errorHandler(s.deleteSession))
	s.mux.Handle("GET /api/statistics", errorHandler(s.statistics))

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) error {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	return nil
}

func (s *Server) find(r *http.Request) ([]session.Session, *config.FilterConfig, error) {
	f, err := filterFromQuery(r)
	if err != nil {
		return nil, nil, badRequest(err)
	}

	sessions, err := s.db.Find(f.Query())
	if err != nil {
		return nil, nil, err
	}

	return sessions, f, nil
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) error {
	sessions, _, err := s.find(r)
	if err != nil {
		return err
	}

	if sessions == nil {
		sessions = []session.Session{}
	}

	writeJSON(w, http.StatusOK, sessions)

	return nil
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) error {
	sess, err := decodeSession(w, r)
	if err != nil {
		return err
	}

	if err := s.db.Create(&sess); err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, sess)

	return nil
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) error {
	sess, err := s.db.Get(r.PathValue("id"))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, sess)

	return nil
}

func (s *Server) updateSession(w http.ResponseWriter, r *http.Request) error {
	id := r.PathValue("id")

	sess, err := decodeSession(w, r)
	if err != nil {
		return err
	}

	if err := s.db.Update(id, &sess); err != nil {
		return err
	}

	updated, err := s.db.Get(id)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, updated)

	return nil
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) error {
	if err := s.db.Delete(r.PathValue("id")); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

func (s *Server) statistics(w http.ResponseWriter, r *http.Request) error {
	sessions, f, err := s.find(r)
	if err != nil {
		return err
	}

	unit := interpret.Normalized
	if r.URL.Query().Get("unit") == "mm" {
		unit = interpret.Millimeters
	}

	compare, err := compareFromQuery(r, s.compare)
	if err != nil {
		return err
	}

	rep := report.New(sessions, report.Opts{
		StartTime: f.StartTime,
		EndTime:   f.EndTime,
		Compare:   compare,
		Unit:      unit,
	})

	writeJSON(w, http.StatusOK, rep)

	return nil
}

func filterFromQuery(r *http.Request) (*config.FilterConfig, error) {
	q := r.URL.Query()

	opts := config.FilterOptions{
		Period:      q.Get("period"),
		From:        q.Get("from"),
		To:          q.Get("to"),
		Kind:        q.Get("kind"),
		Environment: q.Get("environment"),
		Target:      q.Get("targetType"),
		Distance:    session.ParseDistance(q.Get("distance")),
	}

	return config.NewFilter(opts, time.Now())
}

// compareFromQuery overrides the comparison conditions with the
// compareTarget and compareDistance query parameters.
func compareFromQuery(
	r *http.Request,
	defaults stats.CompareOptions,
) (stats.CompareOptions, error) {
	q := r.URL.Query()
	opts := defaults

	if v := q.Get("compareTarget"); v != "" {
		target, ok := session.ParseTargetType(v)
		if !ok {
			return opts, badRequest(errInvalidCompareTarget.Fmt(v))
		}

		opts.TargetType = target
	}

	if v := q.Get("compareDistance"); v != "" {
		d := session.ParseDistance(v)
		if d <= 0 {
			return opts, badRequest(errInvalidCompareDistance.Fmt(v))
		}

		opts.Distance = d
	}

	return opts, nil
}

// decodeSession reads a session from the request body. The body is
// normalized the same way stored records are, so partial sessions are
// accepted. Only syntactically invalid JSON is rejected.
func decodeSession(w http.ResponseWriter, r *http.Request) (session.Session, error) {
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return session.Session{}, badRequest(errReadBody.Wrap(err))
	}

	if !json.Valid(b) {
		return session.Session{}, badRequest(errInvalidBody)
	}

	return session.Normalize(session.DecodeRecord(b)), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("writing response failed", slog.Any("error", err))
	}
}

// ListenAndServe serves the API on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	pterm.Info.Printfln("serving the quiver API on %s", addr)

	select {
	case err := <-errCh:
		return errListen.Wrap(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// OpenBrowser opens url with the platform's default handler.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case osutil.Windows:
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case osutil.Darwin:
		cmd = exec.Command("open", url)
	default:
		return errUnsupportedPlatform.Fmt(runtime.GOOS)
	}

	return cmd.Start()
}
