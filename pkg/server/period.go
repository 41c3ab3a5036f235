package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"droscher.com/CaffeineGargoyle/pkg/model"
	"droscher.com/CaffeineGargoyle/pkg/stats"
)

type PeriodRequest struct {
	Name      string     `json:"name"`
	StartDate stats.Date `json:"startDate"`
	EndDate   stats.Date `json:"endDate"`
}

type PeriodResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	StartDate stats.Date `json:"startDate"`
	EndDate   stats.Date `json:"endDate"`
	Hidden    bool       `json:"hidden"`
}

type ToggleHiddenRequest struct {
	Hidden *bool `json:"hidden"`
}

// ListPeriods returns every period in collection order. The period selector
// passes visibleOnly=true to omit hidden periods from its dropdown.
func (t *TrackerServer) ListPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := t.periods.ListPeriods(r.Context())
	if err != nil {
		t.respondStorageError(w, err, "period not found")

		return
	}

	if r.URL.Query().Get("visibleOnly") == "true" {
		periods = stats.VisiblePeriods(periods)
	}

	response := make([]PeriodResponse, 0, len(periods))

	for _, period := range periods {
		response = append(response, periodToResponse(period))
	}

	t.respondJSON(w, http.StatusOK, response)
}

func (t *TrackerServer) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var request PeriodRequest

	if err := decodeBody(r, &request); err != nil {
		t.respondError(w, http.StatusUnprocessableEntity, "invalid period data")

		return
	}

	if err := validatePeriod(request); err != nil {
		t.respondError(w, http.StatusUnprocessableEntity, err.Error())

		return
	}

	period, err := t.periods.CreatePeriod(r.Context(), model.Period{
		Name:      request.Name,
		StartDate: request.StartDate.Time(),
		EndDate:   request.EndDate.Time(),
	})
	if err != nil {
		t.respondStorageError(w, err, "period not found")

		return
	}

	t.respondJSON(w, http.StatusCreated, periodToResponse(period))
}

func (t *TrackerServer) UpdatePeriod(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		t.respondError(w, http.StatusNotFound, "period not found")

		return
	}

	var request PeriodRequest

	if err := decodeBody(r, &request); err != nil {
		t.respondError(w, http.StatusUnprocessableEntity, "invalid period data")

		return
	}

	if err := validatePeriod(request); err != nil {
		t.respondError(w, http.StatusUnprocessableEntity, err.Error())

		return
	}

	period, err := t.periods.UpdatePeriod(r.Context(), id, request.Name, request.StartDate.Time(), request.EndDate.Time())
	if err != nil {
		t.respondStorageError(w, err, "period not found")

		return
	}

	t.respondJSON(w, http.StatusOK, periodToResponse(period))
}

func (t *TrackerServer) TogglePeriodHidden(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		t.respondError(w, http.StatusNotFound, "period not found")

		return
	}

	var request ToggleHiddenRequest

	if err := decodeBody(r, &request); err != nil || request.Hidden == nil {
		t.respondError(w, http.StatusUnprocessableEntity, "hidden must be a boolean value")

		return
	}

	period, err := t.periods.SetPeriodHidden(r.Context(), id, *request.Hidden)
	if err != nil {
		t.respondStorageError(w, err, "period not found")

		return
	}

	t.respondJSON(w, http.StatusOK, periodToResponse(period))
}

// DeletePeriod removes a period without cascading to its entries; orphaned
// entries stay queryable and are excluded from visible-scope statistics.
func (t *TrackerServer) DeletePeriod(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		t.respondError(w, http.StatusNotFound, "period not found")

		return
	}

	if err := t.periods.DeletePeriod(r.Context(), id); err != nil {
		t.respondStorageError(w, err, "period not found")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validatePeriod(request PeriodRequest) error {
	if request.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if request.EndDate.Before(request.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	return nil
}

func periodToResponse(period *model.Period) PeriodResponse {
	return PeriodResponse{
		ID:        period.UUID.String(),
		Name:      period.Name,
		StartDate: stats.DateOf(period.StartDate),
		EndDate:   stats.DateOf(period.EndDate),
		Hidden:    period.Hidden,
	}
}
