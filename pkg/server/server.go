// Package server implements the JSON HTTP API. Handlers are methods on
// TrackerServer, split into domain-specific files, and do boundary
// validation only; all derived-statistics work lives in pkg/stats.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"droscher.com/CaffeineGargoyle/pkg/repository"
)

var ErrInvalidInput = errors.New("bad request")

type TrackerServer struct {
	logger  *zap.Logger
	periods repository.PeriodRepository
	entries repository.EntryRepository
}

func NewTrackerServer(periods repository.PeriodRepository, entries repository.EntryRepository, logger *zap.Logger) *TrackerServer {
	return &TrackerServer{periods: periods, entries: entries, logger: logger}
}

func (t *TrackerServer) RegisterRoutes(router chi.Router) {
	router.Route("/api", func(api chi.Router) {
		api.Route("/periods", func(r chi.Router) {
			r.Get("/", t.ListPeriods)
			r.Post("/", t.CreatePeriod)
			r.Put("/{id}", t.UpdatePeriod)
			r.Patch("/{id}/toggle-hidden", t.TogglePeriodHidden)
			r.Delete("/{id}", t.DeletePeriod)
		})

		api.Route("/drink-entries", func(r chi.Router) {
			r.Get("/", t.ListDrinkEntries)
			r.Get("/period/{periodId}", t.ListDrinkEntriesByPeriod)
			r.Post("/", t.CreateDrinkEntry)
			r.Post("/import", t.ImportDrinkEntries)
			r.Delete("/{id}", t.DeleteDrinkEntry)
		})

		api.Get("/report", t.GetReport)
		api.Get("/week", t.GetWeek)
		api.Get("/stats", t.GetStats)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (t *TrackerServer) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		t.logger.Error("error encoding response", zap.Error(err))
	}
}

func (t *TrackerServer) respondError(w http.ResponseWriter, status int, message string) {
	t.respondJSON(w, status, errorResponse{Error: message})
}

// respondStorageError maps repository failures onto status codes: missing
// records become 404s, anything else is logged and hidden behind a 500.
func (t *TrackerServer) respondStorageError(w http.ResponseWriter, err error, notFoundMessage string) {
	if errors.Is(err, repository.ErrNotFound) {
		t.respondError(w, http.StatusNotFound, notFoundMessage)

		return
	}

	t.logger.Error("storage error", zap.Error(err))
	t.respondError(w, http.StatusInternalServerError, "internal server error")
}

func decodeBody(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
