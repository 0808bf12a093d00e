package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/klauspost/compress/gzhttp"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	log     *slog.Logger
	limiter *IPRateLimiter
	mcp     http.Handler
	router  chi.Router
}

// New creates a new Server with all routes configured. A nil limiter
// disables rate limiting.
func New(limiter *IPRateLimiter, log *slog.Logger) *Server {
	s := &Server{
		log:     log,
		limiter: limiter,
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
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)
	if s.limiter != nil {
		s.router.Use(s.limiter.Middleware)
	}

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(Compress)
		r.Get("/formulas", s.handleFormulas)
		r.Get("/defaults", s.handleDefaults)
		r.Get("/estimate", s.handleEstimate)
		r.Post("/estimate/batch", s.handleEstimateBatch)
		r.Get("/compare", s.handleCompare)
		r.Get("/chart", s.handleChart)
		r.Get("/export.txt", s.handleExportText)
		r.Get("/export.xlsx", s.handleExportXLSX)
		r.Get("/export.pdf", s.handleExportPDF)
		r.Post("/import/alpha", s.handleImportAlpha)
	})

	s.router.Handle("/mcp", http.HandlerFunc(s.serveMCP))
}

// SetMCP mounts an MCP transport handler at /mcp.
func (s *Server) SetMCP(h http.Handler) {
	s.mcp = h
}

func (s *Server) serveMCP(w http.ResponseWriter, r *http.Request) {
	if s.mcp == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "mcp not enabled"})
		return
	}
	s.mcp.ServeHTTP(w, r)
}

// Compress gzips responses for clients that accept it.
func Compress(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}
