package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/CaffeineGargoyle/pkg/importer"
	"droscher.com/CaffeineGargoyle/pkg/model"
)

type DrinkEntryRequest struct {
	PeriodID       string     `json:"periodId"`
	DrinkName      string     `json:"drinkName"`
	CaffeineAmount int64      `json:"caffeineAmount"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
}

type DrinkEntryResponse struct {
	ID             string    `json:"id"`
	PeriodID       string    `json:"periodId"`
	DrinkName      string    `json:"drinkName"`
	CaffeineAmount int64     `json:"caffeineAmount"`
	Timestamp      time.Time `json:"timestamp"`
}

type ImportRequest struct {
	PeriodID string `json:"periodId"`
	CSV      string `json:"csv"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

func (t *TrackerServer) ListDrinkEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := t.entries.ListEntries(r.Context())
	if err != nil {
		t.respondStorageError(w, err, "drink entry not found")

		return
	}

	t.respondJSON(w, http.StatusOK, entriesToResponse(entries))
}

func (t *TrackerServer) ListDrinkEntriesByPeriod(w http.ResponseWriter, r *http.Request) {
	periodID, err := uuid.Parse(chi.URLParam(r, "periodId"))
	if err != nil {
		t.respondError(w, http.StatusNotFound, "period not found")

		return
	}

	entries, err := t.entries.ListEntriesByPeriod(r.Context(), periodID)
	if err != nil {
		t.respondStorageError(w, err, "drink entry not found")

		return
	}

	t.respondJSON(w, http.StatusOK, entriesToResponse(entries))
}

func (t *TrackerServer) CreateDrinkEntry(w http.ResponseWriter, r *http.Request) {
	var request DrinkEntryRequest

	if err := decodeBody(r, &request); err != nil {
		t.respondError(w, http.StatusUnprocessableEntity, "invalid drink entry data")

		return
	}

	periodID, err := validateEntry(request)
	if err != nil {
		t.respondError(w, http.StatusUnprocessableEntity, err.Error())

		return
	}

	// Backdated timestamps come from the custom-drink form and bulk import;
	// the quick-log path omits the field and gets the current time.
	timestamp := time.Now()
	if request.Timestamp != nil {
		timestamp = *request.Timestamp
	}

	entry, err := t.entries.CreateEntry(r.Context(), model.DrinkEntry{
		PeriodUUID:     periodID,
		DrinkName:      request.DrinkName,
		CaffeineAmount: request.CaffeineAmount,
		Timestamp:      timestamp,
	})
	if err != nil {
		t.respondStorageError(w, err, "drink entry not found")

		return
	}

	t.respondJSON(w, http.StatusCreated, entryToResponse(entry))
}

// ImportDrinkEntries accepts a CSV document and creates one entry per valid
// row. A single malformed row rejects the whole import so users can fix the
// file instead of untangling a partial upload.
func (t *TrackerServer) ImportDrinkEntries(w http.ResponseWriter, r *http.Request) {
	var request ImportRequest

	if err := decodeBody(r, &request); err != nil {
		t.respondError(w, http.StatusUnprocessableEntity, "invalid import data")

		return
	}

	periodID, err := uuid.Parse(request.PeriodID)
	if err != nil {
		t.respondError(w, http.StatusUnprocessableEntity, "periodId is required")

		return
	}

	parsed, err := importer.Parse(request.CSV)
	if err != nil {
		t.respondError(w, http.StatusUnprocessableEntity, err.Error())

		return
	}

	for _, row := range parsed {
		_, err = t.entries.CreateEntry(r.Context(), model.DrinkEntry{
			PeriodUUID:     periodID,
			DrinkName:      row.DrinkName,
			CaffeineAmount: row.CaffeineAmount,
			Timestamp:      row.Timestamp,
		})
		if err != nil {
			t.logger.Error("error importing drink entry", zap.String("drink", row.DrinkName), zap.Error(err))
			t.respondStorageError(w, err, "drink entry not found")

			return
		}
	}

	t.respondJSON(w, http.StatusCreated, ImportResponse{Imported: len(parsed)})
}

func (t *TrackerServer) DeleteDrinkEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		t.respondError(w, http.StatusNotFound, "drink entry not found")

		return
	}

	if err := t.entries.DeleteEntry(r.Context(), id); err != nil {
		t.respondStorageError(w, err, "drink entry not found")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validateEntry(request DrinkEntryRequest) (uuid.UUID, error) {
	periodID, err := uuid.Parse(request.PeriodID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: periodId is required", ErrInvalidInput)
	}

	if request.DrinkName == "" {
		return uuid.Nil, fmt.Errorf("%w: drinkName is required", ErrInvalidInput)
	}

	if request.CaffeineAmount <= 0 {
		return uuid.Nil, fmt.Errorf("%w: caffeineAmount must be positive", ErrInvalidInput)
	}

	return periodID, nil
}

func entryToResponse(entry *model.DrinkEntry) DrinkEntryResponse {
	return DrinkEntryResponse{
		ID:             entry.UUID.String(),
		PeriodID:       entry.PeriodUUID.String(),
		DrinkName:      entry.DrinkName,
		CaffeineAmount: entry.CaffeineAmount,
		Timestamp:      entry.Timestamp,
	}
}

func entriesToResponse(entries []*model.DrinkEntry) []DrinkEntryResponse {
	response := make([]DrinkEntryResponse, 0, len(entries))

	for _, entry := range entries {
		response = append(response, entryToResponse(entry))
	}

	return response
}
