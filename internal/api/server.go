package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/pageflow/internal/config"
	"github.com/dgallion1/pageflow/internal/crawl"
	"github.com/dgallion1/pageflow/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server is the HTTP API server for pageflow.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	fetcher      *crawl.Fetcher
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, fetcher *crawl.Fetcher, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		fetcher:      fetcher,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Public endpoints.
	r.Get("/", s.handleHealth)
	r.Get("/health", s.handleHealth)

	r.Post("/api/extract", s.handleExtract)
	r.Post("/api/extract-advanced", s.handleExtractAdvanced)
	r.Post("/api/crawl", s.handleCrawl)
	r.Post("/api/graph/check-edge", s.handleCheckEdge)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/ingest", s.handleIngest)
		r.Get("/api/ingest/{jobID}/status", s.handleIngestStatus)
		r.Get("/api/ingest/{jobID}/graph", s.handleIngestGraph)
		r.Get("/api/stats/fetch", s.handleFetchStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok","message":"pageflow is running"}`))
}
