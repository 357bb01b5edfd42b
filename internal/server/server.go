// Package server implements the checklist preview server. It renders
// the checklist to HTML, serves the current lint report as JSON and
// pushes live-reload messages to connected browsers when the source
// file changes.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	checklint "github.com/code-review-checklists/checklint"
	"github.com/code-review-checklists/checklint/internal/embedded"
	"github.com/code-review-checklists/checklint/internal/server/cache"
	"github.com/code-review-checklists/checklint/internal/server/websocket"
	"github.com/code-review-checklists/checklint/pkg/constants"
)

// Config holds preview server configuration.
type Config struct {
	// Addr is the listen address, host:port.
	Addr string

	// Linter provides the document and the lint report.
	Linter *checklint.Linter

	// Logger for server events. Required.
	Logger *zerolog.Logger
}

// Server is the checklist preview server.
type Server struct {
	cfg      Config
	pages    *cache.Pages
	hub      *websocket.Hub
	upgrader gorillaws.Upgrader
	httpSrv  *http.Server
}

// New creates a preview server.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = constants.DefaultServeAddr
	}

	s := &Server{
		cfg:   cfg,
		pages: cache.New(constants.RenderCacheTTL, constants.RenderCacheCleanup),
		hub:   websocket.NewHub(cfg.Logger),
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Local preview tool, same-origin policy not enforced
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/report", s.handleReport)
	mux.HandleFunc("/ws", s.handleWS)

	s.httpSrv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe runs the server until the context is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	go s.hub.Run(ctx)

	if path := s.cfg.Linter.Path(); path != "" {
		watcher, err := newWatcher(path, s.onChange, s.cfg.Logger)
		if err != nil {
			return err
		}
		go watcher.run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		s.cfg.Logger.Info().
			Str("addr", s.cfg.Addr).
			Msg("Preview server listening")
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}

// onChange handles a source file change: re-parse, drop cached renders
// and tell connected browsers to refresh.
func (s *Server) onChange() {
	s.cfg.Linter.Reload()
	s.pages.Invalidate()

	rep, err := s.cfg.Linter.Lint(context.Background())
	if err != nil {
		s.cfg.Logger.Error().Err(err).Msg("Re-lint after change failed")
		s.hub.Broadcast(websocket.Message{
			Type:      websocket.TypeReload,
			Timestamp: time.Now(),
		})
		return
	}

	s.hub.Broadcast(websocket.Message{
		Type:      websocket.TypeReport,
		Timestamp: time.Now(),
		Data:      rep.Summary,
	})
	s.hub.Broadcast(websocket.Message{
		Type:      websocket.TypeReload,
		Timestamp: time.Now(),
	})
}

// source returns the raw markdown of the configured document.
func (s *Server) source() ([]byte, error) {
	if path := s.cfg.Linter.Path(); path != "" {
		return os.ReadFile(path)
	}
	return embedded.FS.ReadFile(embedded.SamplePath)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	doc, err := s.cfg.Linter.Document()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if page, ok := s.pages.Page(doc.Digest); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
		return
	}

	src, err := s.source()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page, err := renderPage(doc.Title, src)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.pages.SetPage(doc.Digest, page)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"clients": s.hub.ClientCount(),
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.cfg.Linter.Lint(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(rep)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.cfg.Logger.Debug().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	id := fmt.Sprintf("%s-%d", r.RemoteAddr, time.Now().UnixNano())
	client := websocket.NewClient(id, s.hub, conn)
	client.Register()

	go client.WritePump()
	go client.ReadPump()
}
