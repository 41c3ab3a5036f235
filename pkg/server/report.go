package server

import (
	"net/http"
	"strconv"
	"time"

	"droscher.com/CaffeineGargoyle/pkg/model"
	"droscher.com/CaffeineGargoyle/pkg/stats"
)

// GetReport runs the whole engine pipeline (resolve, window, aggregate,
// stats, assemble) and returns the resulting report snapshot. With no
// resolvable period the report covers all visible periods ("all time" mode).
func (t *TrackerServer) GetReport(w http.ResponseWriter, r *http.Request) {
	periods, entries, ok := t.loadSnapshots(w, r)
	if !ok {
		return
	}

	now := time.Now()
	active := stats.ResolveActivePeriod(periods, r.URL.Query().Get("periodId"))
	window := stats.ComputeWindow(active, now)

	var (
		scopeID  string
		snapshot stats.Snapshot
	)

	if active != nil {
		scopeID = active.UUID.String()
		snapshot = stats.ComputeStats(entries, stats.PeriodScope(scopeID))
	} else {
		snapshot = stats.ComputeStats(entries, stats.AllVisibleScope(periods))
	}

	week := stats.AggregateByDay(entries, window, scopeID)

	t.respondJSON(w, http.StatusOK, stats.AssembleReport(active, snapshot, week, now))
}

// GetWeek returns the window-shaped day tallies that feed the weekly
// calendar (per-drink counts) and the intake chart (per-day sums).
func (t *TrackerServer) GetWeek(w http.ResponseWriter, r *http.Request) {
	periods, entries, ok := t.loadSnapshots(w, r)
	if !ok {
		return
	}

	active := stats.ResolveActivePeriod(periods, r.URL.Query().Get("periodId"))
	window := stats.ComputeWindow(active, time.Now())

	scopeID := ""
	if active != nil {
		scopeID = active.UUID.String()
	}

	t.respondJSON(w, http.StatusOK, stats.AggregateByDay(entries, window, scopeID))
}

// GetStats returns a statistics snapshot for an explicit scope:
// ?scope=period&periodId=..., ?scope=allVisible, or ?scope=year&year=....
func (t *TrackerServer) GetStats(w http.ResponseWriter, r *http.Request) {
	periods, entries, ok := t.loadSnapshots(w, r)
	if !ok {
		return
	}

	var scope stats.Scope

	switch r.URL.Query().Get("scope") {
	case "period":
		scope = stats.PeriodScope(r.URL.Query().Get("periodId"))
	case "allVisible":
		scope = stats.AllVisibleScope(periods)
	case "year":
		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil {
			t.respondError(w, http.StatusUnprocessableEntity, "year must be an integer")

			return
		}

		scope = stats.YearScope(year)
	default:
		t.respondError(w, http.StatusUnprocessableEntity, "scope must be one of period, allVisible, year")

		return
	}

	t.respondJSON(w, http.StatusOK, stats.ComputeStats(entries, scope))
}

// loadSnapshots fetches full period and entry collections. The engine
// recomputes from fresh snapshots on every request; there is no incremental
// path and none is needed at single-user volumes.
func (t *TrackerServer) loadSnapshots(w http.ResponseWriter, r *http.Request) ([]*model.Period, []*model.DrinkEntry, bool) {
	periods, err := t.periods.ListPeriods(r.Context())
	if err != nil {
		t.respondStorageError(w, err, "period not found")

		return nil, nil, false
	}

	entries, err := t.entries.ListEntries(r.Context())
	if err != nil {
		t.respondStorageError(w, err, "drink entry not found")

		return nil, nil, false
	}

	return periods, entries, true
}
