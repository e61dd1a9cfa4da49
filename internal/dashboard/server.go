// Package dashboard serves the aggregation catalogue over HTTP and reloads
// the dataset when its file changes.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/leapstack-labs/zfdash/internal/aggregate"
	"github.com/leapstack-labs/zfdash/internal/dashboard/notifier"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

// reloadDebounce coalesces bursts of write events from editors and exporters.
const reloadDebounce = 100 * time.Millisecond

// Server is the dashboard API server.
type Server struct {
	store          *Store
	params         aggregate.Params
	port           int
	watch          bool
	allowedOrigins []string
	logger         *slog.Logger
	notifier       *notifier.Notifier
}

// Config holds configuration for the dashboard server.
type Config struct {
	Store          *Store
	Params         aggregate.Params
	Port           int
	Watch          bool
	AllowedOrigins []string
	Logger         *slog.Logger
}

// NewServer creates a new dashboard server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		store:          cfg.Store,
		params:         cfg.Params,
		port:           cfg.Port,
		watch:          cfg.Watch,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         logger,
		notifier:       notifier.New(),
	}
}

// Handler builds the routed, middleware-wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(s.logger),
		middleware.Recoverer,
		middleware.Compress(5),
	)

	NewHandlers(s.store, s.notifier, s.params, s.logger).SetupRoutes(r)

	origins := s.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Accept-Encoding", "X-Request-ID"},
	})
	return c.Handler(r)
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting dashboard server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch && s.store.Path() != "" {
		eg.Go(func() error {
			return s.watchDataset(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down dashboard server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// watchDataset reloads the dataset when its file is written or replaced.
// The parent directory is watched so atomic renames are seen too.
func (s *Server) watchDataset(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	target, err := filepath.Abs(s.store.Path())
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		s.logger.Error("failed to watch dataset directory", "error", err)
		// Keep serving without reloads.
		<-ctx.Done()
		return nil
	}

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, _ := filepath.Abs(event.Name); name != target {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(reloadDebounce, func() {
				s.logger.Debug("dataset changed, reloading", "file", event.Name)
				s.reload(ctx)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// reload loads a fresh snapshot and notifies SSE clients either way.
func (s *Server) reload(ctx context.Context) {
	ds, err := s.store.Reload(ctx)
	if err != nil {
		s.logger.Error("reload failed, keeping previous dataset", "error", err)
		s.notifier.Broadcast(notifier.Event{Err: err.Error()})
		return
	}
	s.notifier.Broadcast(notifier.Event{DatasetID: ds.ID.String(), Rows: ds.Rows})
}
