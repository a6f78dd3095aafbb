// Package server provides HTTP server for the theme-aware pages.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/shade/app/server/web"
)

// Server represents the HTTP server.
type Server struct {
	cfg        Config
	version    string
	baseURL    string
	webHandler *web.Handler
	staticFS   fs.FS // embedded static files
}

// Config holds server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Version         string
	BaseURL         string        // base URL path for reverse proxy (e.g., /shade)
	CookieMaxAge    time.Duration // theme cookie lifetime
	CookieSecure    bool          // mark theme cookie Secure
	CacheSize       int           // rendered pages kept in cache

	// limits
	BodySizeLimit  int64 // max request body size in bytes
	RequestsPerSec int64 // max requests per second
}

// New creates a new Server instance serving pages for the given layouts.
func New(layouts web.LayoutProvider, cfg Config) (*Server, error) {
	staticContent, err := web.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}

	webHandler, err := web.New(layouts, web.Config{
		BaseURL:      cfg.BaseURL,
		CookieMaxAge: cfg.CookieMaxAge,
		CookieSecure: cfg.CookieSecure,
		CacheSize:    cfg.CacheSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}

	return &Server{
		cfg:        cfg,
		version:    cfg.Version,
		baseURL:    cfg.BaseURL,
		webHandler: webHandler,
		staticFS:   staticContent,
	}, nil
}

// Run starts the HTTP server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	// graceful shutdown
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] shutdown error: %v", err)
		}
		if err := s.webHandler.Close(); err != nil {
			log.Printf("[WARN] %v", err)
		}
	}()

	log.Printf("[DEBUG] started server on %s", s.cfg.Address)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// handler returns the HTTP handler, wrapping routes with base URL support if configured.
func (s *Server) handler() http.Handler {
	routes := s.routes()
	if s.baseURL == "" {
		return routes
	}
	mux := http.NewServeMux()
	// redirect /base to /base/
	mux.HandleFunc(s.baseURL, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.baseURL+"/", http.StatusMovedPermanently)
	})
	mux.Handle(s.baseURL+"/", http.StripPrefix(s.baseURL, routes))
	return mux
}

// routes configures and returns the HTTP handler with all routes and middleware.
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP, // must be before Throttle to rate-limit by real client IP
		rest.Throttle(s.requestsPerSec()),
		rest.Trace,
		rest.SizeLimit(s.bodySizeLimit()),
		rest.AppInfo("shade", "umputun", s.version),
		rest.Ping,
	)

	router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.staticFS))))

	// pages depend on the color scheme hint
	router.Group().Route(func(webRouter *routegroup.Bundle) {
		webRouter.Use(web.ClientHints)
		s.webHandler.Register(webRouter)
	})

	return router
}

// bodySizeLimit returns the configured body size limit, or default 64KB if not set.
func (s *Server) bodySizeLimit() int64 {
	if s.cfg.BodySizeLimit > 0 {
		return s.cfg.BodySizeLimit
	}
	return 64 * 1024
}

// requestsPerSec returns the configured requests per second limit, or default 1000 if not set.
func (s *Server) requestsPerSec() int64 {
	if s.cfg.RequestsPerSec > 0 {
		return s.cfg.RequestsPerSec
	}
	return 1000
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout > 0 {
		return s.cfg.ShutdownTimeout
	}
	return 5 * time.Second
}
