package routers

import (
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mufasadev/encounter-types/internal/di"
	http2 "github.com/mufasadev/encounter-types/internal/infrastructure/api/http"
	"github.com/mufasadev/encounter-types/internal/infrastructure/api/middlewares"
)

func NewRouter(container *di.Container) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(container.Metrics.Middleware)

	router.Handle("/metrics", container.Metrics.Handler())

	// Set up v1 routes with a path prefix
	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/encounter-types", func(r chi.Router) {
			eh := container.EncounterTypeHandler
			r.Get("/", eh.List)
			r.Post("/", eh.Create)
			r.Post("/validate", eh.Validate)

			r.Route(fmt.Sprintf("/{%s}", http2.EncounterTypeUUIDParam), func(r chi.Router) {
				r.Use(middlewares.EncounterTypeValidationMiddleware(container.EncounterTypeInteractor))
				r.Get("/", eh.Get)
				r.Put("/", eh.Update)
				r.Post("/retire", eh.Retire)
				r.Post("/unretire", eh.Unretire)
			})
		})
	})

	return router
}
