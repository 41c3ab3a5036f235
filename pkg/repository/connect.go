package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/CaffeineGargoyle/configs"
	"droscher.com/CaffeineGargoyle/pkg/model"
)

// ErrNotFound is returned by every Store implementation for lookups,
// updates, and deletes that match no record.
var ErrNotFound = errors.New("record not found")

var ErrUnknownDriver = errors.New("unknown database driver")

type PeriodRepository interface {
	CreatePeriod(ctx context.Context, period model.Period) (*model.Period, error)
	GetPeriodByUUID(ctx context.Context, id uuid.UUID) (*model.Period, error)
	ListPeriods(ctx context.Context) ([]*model.Period, error)
	UpdatePeriod(ctx context.Context, id uuid.UUID, name string, startDate, endDate time.Time) (*model.Period, error)
	SetPeriodHidden(ctx context.Context, id uuid.UUID, hidden bool) (*model.Period, error)
	DeletePeriod(ctx context.Context, id uuid.UUID) error
}

type EntryRepository interface {
	CreateEntry(ctx context.Context, entry model.DrinkEntry) (*model.DrinkEntry, error)
	ListEntries(ctx context.Context) ([]*model.DrinkEntry, error)
	ListEntriesByPeriod(ctx context.Context, periodID uuid.UUID) ([]*model.DrinkEntry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

// Store is the full persistence capability set. Two interchangeable
// implementations exist: the gorm-backed Repository and the MemoryStore,
// selected at startup by the db.driver config value.
type Store interface {
	PeriodRepository
	EntryRepository
	Migrate() error
	Close()
}

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour

	memoryDriver   = "memory"
	postgresDriver = "postgres"
)

func Open(conf *configs.Config, logger *zap.Logger) (Store, error) {
	switch conf.DB.Driver {
	case memoryDriver:
		return NewMemoryStore(logger), nil
	case postgresDriver:
		return openPostgres(conf, logger)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, conf.DB.Driver)
}

func openPostgres(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		conf.DB.Host, conf.DB.User, conf.DB.Password, conf.DB.Database, conf.DB.Port)

	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(conf.DB.MaxIdleConnections)
	sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return &Repository{DB: db, Logger: logger}, nil
}

func (r *Repository) Migrate() error {
	return r.DB.AutoMigrate(&model.Period{}, &model.DrinkEntry{})
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}
