package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/gymez/internal/ingest/alpha"
	"github.com/claude/gymez/internal/strength"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	formula strength.Formula
	apiKey  string
	alpha   *alpha.Provider
	mcp     http.Handler
	log     *slog.Logger
	router  chi.Router
}

// New creates a new Server with all routes configured. def is the formula
// used when a request does not name one; an empty apiKey disables the key
// check; a nil mcpHandler leaves /mcp unmounted.
func New(def strength.Formula, apiKey string, mcpHandler http.Handler, log *slog.Logger) *Server {
	s := &Server{
		formula: def,
		apiKey:  apiKey,
		alpha:   alpha.NewProvider(log),
		mcp:     mcpHandler,
		log:     log,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(middleware.RealIP)
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(middleware.Recoverer)
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealth)

	s.router.Group(func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(APIKeyAuth(s.apiKey))
		}

		r.Route("/api/v1", func(r chi.Router) {
			r.Post("/one-rep-max", s.handleOneRepMaxPost)
			r.Get("/one-rep-max", s.handleOneRepMaxGet)
			r.Get("/chart", s.handleChart)
			r.Get("/chart.png", s.handleChartPNG)
			r.Get("/chart.xlsx", s.handleChartXLSX)
			r.Get("/strength-level", s.handleStrengthLevel)
			r.Get("/formulas", s.handleFormulas)
			r.Get("/lifts", s.handleLifts)
			r.Post("/personal-record", s.handlePersonalRecord)
			r.Post("/ingest/alpha", s.handleAlphaIngest)
		})

		if s.mcp != nil {
			r.Handle("/mcp", s.mcp)
		}
	})
}
