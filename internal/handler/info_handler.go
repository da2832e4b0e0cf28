package handler

import (
	"net/http"
	"time"

	"rbxpresence/internal/pkg/resp"
)

// Endpoints lists the public routes, as shown by the index page.
var Endpoints = []string{
	"GET /api/test",
	"GET /api/presence/:userId",
	"POST /api/presence",
	"GET /api/universe/:universeId",
}

// HandleIndex describes the service and its routes.
func HandleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondJSON(w, r, http.StatusOK, map[string]any{
			"status":    "online",
			"message":   "Presence gateway is running",
			"endpoints": Endpoints,
		})
	}
}

// HandleTest is a liveness probe for API clients.
func HandleTest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondJSON(w, r, http.StatusOK, map[string]any{
			"success":   true,
			"message":   "API is working",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// HandleHealth reports service status and whether a session credential is configured.
func HandleHealth(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"status":            "ok",
			"service":           "rbxpresence",
			"sessionCredential": deps.Gateway.HasSessionCredential(),
		})
	}
}
