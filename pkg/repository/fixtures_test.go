package repository_test

import (
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"droscher.com/CaffeineGargoyle/pkg/model"
)

var (
	testStart = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)
)

func testPeriodModel(name string) model.Period {
	return model.Period{Name: name, StartDate: testStart, EndDate: testEnd}
}

func periodRows(id uuid.UUID, name string, hidden bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "uuid", "name", "start_date", "end_date", "hidden"}).
		AddRow(1, id.String(), name, testStart, testEnd, hidden)
}

func entryRows(id uuid.UUID, periodID uuid.UUID, name string, caffeine int64, timestamp time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "uuid", "period_uuid", "drink_name", "caffeine_amount", "timestamp"}).
		AddRow(1, id.String(), periodID.String(), name, caffeine, timestamp)
}
