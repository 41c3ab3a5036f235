package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/CaffeineGargoyle/pkg/model"
)

func (r *Repository) CreatePeriod(ctx context.Context, period model.Period) (*model.Period, error) {
	period.UUID = uuid.New()

	if result := r.DB.WithContext(ctx).Create(&period); result.Error != nil {
		return nil, result.Error
	}

	return &period, nil
}

func (r *Repository) GetPeriodByUUID(ctx context.Context, id uuid.UUID) (*model.Period, error) {
	var period model.Period

	result := r.DB.WithContext(ctx).Where("uuid = ?", id).First(&period)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, result.Error
	}

	return &period, nil
}

// ListPeriods returns every period, hidden ones included, in insertion
// order. Collection order is load-bearing: the default-selection fallback
// in the stats engine picks the first element.
func (r *Repository) ListPeriods(ctx context.Context) ([]*model.Period, error) {
	var periods []*model.Period

	result := r.DB.WithContext(ctx).Order("id asc").Find(&periods)
	if result.Error != nil {
		r.Logger.Error("error listing periods", zap.Error(result.Error))

		return nil, result.Error
	}

	return periods, nil
}

func (r *Repository) UpdatePeriod(ctx context.Context, id uuid.UUID, name string, startDate, endDate time.Time) (*model.Period, error) {
	period, err := r.GetPeriodByUUID(ctx, id)
	if err != nil {
		return nil, err
	}

	period.Name = name
	period.StartDate = startDate
	period.EndDate = endDate

	if result := r.DB.WithContext(ctx).Save(period); result.Error != nil {
		return nil, result.Error
	}

	return period, nil
}

func (r *Repository) SetPeriodHidden(ctx context.Context, id uuid.UUID, hidden bool) (*model.Period, error) {
	period, err := r.GetPeriodByUUID(ctx, id)
	if err != nil {
		return nil, err
	}

	period.Hidden = hidden

	if result := r.DB.WithContext(ctx).Save(period); result.Error != nil {
		return nil, result.Error
	}

	return period, nil
}

// DeletePeriod removes the period only. Entries referencing it are left in
// place; the stats engine tolerates and excludes such orphans.
func (r *Repository) DeletePeriod(ctx context.Context, id uuid.UUID) error {
	result := r.DB.WithContext(ctx).Where("uuid = ?", id).Delete(&model.Period{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
