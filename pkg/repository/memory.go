package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/CaffeineGargoyle/pkg/model"
)

// MemoryStore keeps all records in process memory. It exists for local use
// and for tests; it implements the same Store contract as the gorm
// Repository. Slices preserve insertion order so collection order stays
// deterministic, matching the Postgres implementation's ORDER BY id.
type MemoryStore struct {
	mu      sync.RWMutex
	logger  *zap.Logger
	nextID  uint
	periods []*model.Period
	entries []*model.DrinkEntry
}

func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{logger: logger}
}

func (m *MemoryStore) Migrate() error {
	return nil
}

func (m *MemoryStore) Close() {}

func (m *MemoryStore) CreatePeriod(_ context.Context, period model.Period) (*model.Period, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	period.Model = gorm.Model{ID: m.nextID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	period.UUID = uuid.New()
	m.periods = append(m.periods, &period)

	copied := period

	return &copied, nil
}

func (m *MemoryStore) GetPeriodByUUID(_ context.Context, id uuid.UUID) (*model.Period, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, period := range m.periods {
		if period.UUID == id {
			copied := *period

			return &copied, nil
		}
	}

	return nil, ErrNotFound
}

func (m *MemoryStore) ListPeriods(_ context.Context) ([]*model.Period, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	periods := make([]*model.Period, 0, len(m.periods))

	for _, period := range m.periods {
		copied := *period
		periods = append(periods, &copied)
	}

	return periods, nil
}

func (m *MemoryStore) UpdatePeriod(_ context.Context, id uuid.UUID, name string, startDate, endDate time.Time) (*model.Period, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, period := range m.periods {
		if period.UUID == id {
			period.Name = name
			period.StartDate = startDate
			period.EndDate = endDate
			period.UpdatedAt = time.Now()

			copied := *period

			return &copied, nil
		}
	}

	return nil, ErrNotFound
}

func (m *MemoryStore) SetPeriodHidden(_ context.Context, id uuid.UUID, hidden bool) (*model.Period, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, period := range m.periods {
		if period.UUID == id {
			period.Hidden = hidden
			period.UpdatedAt = time.Now()

			copied := *period

			return &copied, nil
		}
	}

	return nil, ErrNotFound
}

func (m *MemoryStore) DeletePeriod(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for index, period := range m.periods {
		if period.UUID == id {
			m.periods = append(m.periods[:index], m.periods[index+1:]...)

			return nil
		}
	}

	return ErrNotFound
}

func (m *MemoryStore) CreateEntry(_ context.Context, entry model.DrinkEntry) (*model.DrinkEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	entry.Model = gorm.Model{ID: m.nextID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	entry.UUID = uuid.New()
	m.entries = append(m.entries, &entry)

	copied := entry

	return &copied, nil
}

func (m *MemoryStore) ListEntries(_ context.Context) ([]*model.DrinkEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]*model.DrinkEntry, 0, len(m.entries))

	for _, entry := range m.entries {
		copied := *entry
		entries = append(entries, &copied)
	}

	return entries, nil
}

func (m *MemoryStore) ListEntriesByPeriod(_ context.Context, periodID uuid.UUID) ([]*model.DrinkEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var entries []*model.DrinkEntry

	for _, entry := range m.entries {
		if entry.PeriodUUID == periodID {
			copied := *entry
			entries = append(entries, &copied)
		}
	}

	return entries, nil
}

func (m *MemoryStore) DeleteEntry(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for index, entry := range m.entries {
		if entry.UUID == id {
			m.entries = append(m.entries[:index], m.entries[index+1:]...)

			return nil
		}
	}

	return ErrNotFound
}
