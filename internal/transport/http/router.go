package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-notes-nosql/internal/application/note"
	"github.com/go-notes-nosql/internal/config"
	"github.com/go-notes-nosql/internal/transport/http/handler"
	appmiddleware "github.com/go-notes-nosql/internal/transport/http/middleware"
	"github.com/go-notes-nosql/internal/web"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	metrics := appmiddleware.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	if cfg.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Handler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	writeMw := func(next http.Handler) http.Handler { return next }
	if deps.WriteLimiter != nil {
		writeMw = deps.WriteLimiter.Limit
	}

	noteSvc := note.NewService(deps.NoteRepo)

	healthH := handler.NewHealthHandler()
	noteH := handler.NewNoteHandler(noteSvc)

	r.Get("/health", healthH.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/notes", noteH.List)
	r.With(writeMw).Post("/notes", noteH.Create)
	r.With(writeMw).Delete("/notes/{id}", noteH.Delete)

	// ── Client UI ────────────────────────────────────────────────────────
	r.Method(http.MethodGet, "/", web.Index())
	r.Method(http.MethodGet, "/static/*", web.Assets())

	return r
}
