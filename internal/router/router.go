package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/iqtrace/iqtrace/internal/middleware"
	"github.com/iqtrace/iqtrace/internal/middleware/metrics"
	"github.com/iqtrace/iqtrace/internal/setup"
)

// New creates and configures the application router.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chi_middleware.Recoverer)
	r.Use(chi_middleware.Compress(5))
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	h := deps.Handler
	needAuth := mw.NeedAuth(deps.Jwt)
	adminOnly := mw.AdminOnly(deps.Jwt)

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(needAuth)
			r.Get("/me", h.Me)
			r.Put("/me", h.UpdateMe)
			r.Patch("/image-encoding", h.EnrollEncoding)
			r.Post("/me/image-encoding/compare", h.CompareEncoding)
		})

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/", h.GetUsers)
			r.Delete("/{id}", h.DeleteUser)
		})
	})

	r.Route("/rooms", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Post("/", h.CreateRoom)
			r.Delete("/{number}", h.DeleteRoom)
		})

		r.Group(func(r chi.Router) {
			r.Use(needAuth)
			r.Get("/", h.GetRooms)
			r.Get("/{number}/timelogs", h.GetRoomTimelogs)
		})
	})

	r.With(needAuth).Post("/timelog", h.CreateTimelog)

	r.Post("/verification", h.IssueVerification)
	r.Get("/verification/{id}", h.ConsumeVerification)

	// Avoid 404s for CORS preflight requests
	r.MethodFunc(http.MethodOptions, "/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
