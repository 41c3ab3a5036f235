package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/CaffeineGargoyle/pkg/model"
	"droscher.com/CaffeineGargoyle/pkg/repository"
	"droscher.com/CaffeineGargoyle/pkg/server"
)

var (
	testStart = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)
)

// TrackerTestSuite exercises handlers end to end through the chi router,
// backed by the in-memory store.
type TrackerTestSuite struct {
	suite.Suite
	store        *repository.MemoryStore
	router       chi.Router
	observedLogs *observer.ObservedLogs
}

func (suite *TrackerTestSuite) SetupTest() {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	observedLogger := zap.New(observedZapCore)

	suite.store = repository.NewMemoryStore(observedLogger)
	suite.router = chi.NewRouter()
	server.NewTrackerServer(suite.store, suite.store, observedLogger).RegisterRoutes(suite.router)
}

func (suite *TrackerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, request)

	return recorder
}

func (suite *TrackerTestSuite) decodeResponse(recorder *httptest.ResponseRecorder, target any) {
	suite.Require().NoError(json.NewDecoder(recorder.Body).Decode(target))
}

func (suite *TrackerTestSuite) seedPeriod(name string, start, end time.Time) *model.Period {
	period, err := suite.store.CreatePeriod(context.Background(), model.Period{
		Name:      name,
		StartDate: start,
		EndDate:   end,
	})
	suite.Require().NoError(err)

	return period
}

func (suite *TrackerTestSuite) seedEntry(periodID uuid.UUID, name string, caffeine int64, timestamp time.Time) *model.DrinkEntry {
	entry, err := suite.store.CreateEntry(context.Background(), model.DrinkEntry{
		PeriodUUID:     periodID,
		DrinkName:      name,
		CaffeineAmount: caffeine,
		Timestamp:      timestamp,
	})
	suite.Require().NoError(err)

	return entry
}

func (suite *TrackerTestSuite) assertErrorResponse(recorder *httptest.ResponseRecorder, status int, message string) {
	suite.Equal(status, recorder.Code)

	var response struct {
		Error string `json:"error"`
	}

	suite.decodeResponse(recorder, &response)
	suite.Contains(response.Error, message)
}
