// Package server wires the site pages, static assets and middleware into an
// HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jackielii/pagesite"
	"github.com/jackielii/pagesite/chirouter"
	"github.com/jackielii/pagesite/internal/config"
	"github.com/jackielii/pagesite/site"
	"github.com/jackielii/pagesite/static"
	"github.com/jackielii/pagesite/views"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg     config.Config
	log     *slog.Logger
	handler http.Handler
}

// New builds the router: the page routes first, then the public directory
// for every path no page claims.
func New(cfg config.Config, log *slog.Logger) (*Server, error) {
	assets, err := site.Assets(cfg.SiteDir)
	if err != nil {
		return nil, err
	}
	vw, err := views.New(assets, site.Name)
	if err != nil {
		return nil, err
	}
	public, err := site.Public(assets)
	if err != nil {
		return nil, fmt.Errorf("server: public assets: %w", err)
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(log),
		middleware.Recoverer,
		middleware.GetHead,
	)

	sp := pagesite.New(
		pagesite.WithErrorHandler(errorHandler(log)),
		pagesite.WithMiddlewares(pageLogger(log)),
	)
	if err := sp.MountPages(chirouter.NewChiRouter(r), site.Pages{}, "/", site.Name, vw); err != nil {
		return nil, fmt.Errorf("server: mount pages: %w", err)
	}
	r.NotFound(static.Handler(public).ServeHTTP)

	return &Server{cfg: cfg, log: log, handler: r}, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on the configured port until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("server: listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully, giving in-flight requests shutdownTimeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.Info("server.started", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("server.shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

// Routes lists the page routes.
func Routes() (string, error) {
	return pagesite.PrintRoutes("/", site.Pages{})
}
