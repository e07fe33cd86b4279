package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/aref-vc/youtube-content-analyzer/shared/config"
	"github.com/aref-vc/youtube-content-analyzer/shared/insights"
	"github.com/aref-vc/youtube-content-analyzer/shared/logging"
	"github.com/aref-vc/youtube-content-analyzer/shared/monitoring"
	"github.com/aref-vc/youtube-content-analyzer/shared/storage"
)

const defaultFetchLimit = 50

// Server represents the HTTP API
type Server struct {
	server     *http.Server
	router     *chi.Mux
	engine     *insights.Engine
	catalog    insights.Catalog
	cache      *storage.ReportCache
	monitor    *monitoring.Monitor
	validate   *validator.Validate
	fetchLimit int
	logger     zerolog.Logger
}

type Option func(*Server)

// WithCatalog enables the endpoints that load channels and videos from the
// platform: analysis by reference, channel uploads and search.
func WithCatalog(c insights.Catalog) Option {
	return func(s *Server) { s.catalog = c }
}

// WithReportCache serves fresh channel reports from c.
func WithReportCache(c *storage.ReportCache) Option {
	return func(s *Server) { s.cache = c }
}

// WithMonitor reports the health of m, typically a scheduler's, instead of a
// fresh monitor.
func WithMonitor(m *monitoring.Monitor) Option {
	return func(s *Server) { s.monitor = m }
}

// WithFetchLimit caps how many uploads are fetched per channel.
func WithFetchLimit(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.fetchLimit = n
		}
	}
}

// NewServer creates the HTTP API server
func NewServer(cfg config.ServerConfig, engine *insights.Engine, opts ...Option) *Server {
	s := &Server{
		router:     chi.NewRouter(),
		engine:     engine,
		validate:   newValidator(),
		fetchLimit: defaultFetchLimit,
		logger:     logging.WithComponent("api"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.monitor == nil {
		s.monitor = monitoring.NewMonitor()
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	monitoring.NewHealthServer(s.monitor, "").Routes(r)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/title/analyze", s.analyzeTitle)
		r.Post("/video/analyze", s.analyzeVideo)
		r.Post("/patterns/detect", s.detectPatterns)
		r.Post("/channel/analyze", s.analyzeChannel)
		r.Post("/channels/compare", s.compareChannels)
		r.Get("/channel/{id}/videos", s.channelVideos)
		r.Post("/search", s.search)
	})

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("API server listening")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
