package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the API router. The events handler serves the SSE stream
// and may be nil in headless deployments.
func Routes(h *EvaluationHandler, events http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Healthz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/evaluations", h.CreateEvaluation)
		r.Get("/evaluations", h.ListEvaluations)
		r.Get("/evaluations/{id}", h.GetEvaluation)
		if events != nil {
			r.Handle("/events", events)
		}
	})

	return r
}
