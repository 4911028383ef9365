// Package api serves the stakeholder dialogue over a small JSON HTTP API.
package api

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/alexanderramin/scenariodialogue/internal/profiles"
	"github.com/alexanderramin/scenariodialogue/internal/service"
)

// Container holds the dependencies of the router.
type Container struct {
	Catalog   *profiles.Catalog
	Scenarios service.ScenarioService
	Dialogue  service.DialogueService
	Explore   service.ExploreService
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()
	r.Use(corsMiddleware, traceMiddleware)

	h := &handler{c: c}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/stakeholders", h.listStakeholders).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/stakeholders/{id}", h.getStakeholder).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/responses", h.listResponses).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/responses/{id}", h.getResponse).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/sentiment", h.computeSentiment).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/scenario", h.getScenario).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/ai/status", h.aiStatus).Methods(http.MethodGet, http.MethodOptions)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origins := os.Getenv("DIALOGUE_CORS_ORIGINS")
		if origins == "" {
			origins = "*"
		}
		w.Header().Set("Access-Control-Allow-Origin", origins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
