/*
Package handler provides the HTTP handlers and routing setup for the presence gateway.

This file defines the main Router, applying CORS, request ids, request logging, metrics and
panic recovery before delegating to the individual handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"rbxpresence/internal/pkg/logx"
)

// Router sets up the main HTTP routing table for the application.
func Router(deps *AppDeps) http.Handler {
	r := chi.NewRouter()

	corsAllowedOrigins := []string{"*"}
	allowCredentials := false
	if !deps.Config.IsDevelopment() && len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
		allowCredentials = true
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: allowCredentials,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(deps.Metrics.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/", HandleIndex())
	r.Get("/health", HandleHealth(deps))

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/test", HandleTest())

		api.Get("/presence/{userId}", HandleGetPresence(deps))
		api.Post("/presence", HandlePostPresence(deps))

		api.Get("/universe/{universeId}", HandleGetUniverse(deps))
	})

	return r
}
