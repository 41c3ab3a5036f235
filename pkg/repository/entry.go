package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/CaffeineGargoyle/pkg/model"
)

func (r *Repository) CreateEntry(ctx context.Context, entry model.DrinkEntry) (*model.DrinkEntry, error) {
	entry.UUID = uuid.New()

	if result := r.DB.WithContext(ctx).Create(&entry); result.Error != nil {
		return nil, result.Error
	}

	return &entry, nil
}

func (r *Repository) ListEntries(ctx context.Context) ([]*model.DrinkEntry, error) {
	var entries []*model.DrinkEntry

	result := r.DB.WithContext(ctx).Order("id asc").Find(&entries)
	if result.Error != nil {
		r.Logger.Error("error listing drink entries", zap.Error(result.Error))

		return nil, result.Error
	}

	return entries, nil
}

func (r *Repository) ListEntriesByPeriod(ctx context.Context, periodID uuid.UUID) ([]*model.DrinkEntry, error) {
	var entries []*model.DrinkEntry

	result := r.DB.WithContext(ctx).Where("period_uuid = ?", periodID).Order("id asc").Find(&entries)
	if result.Error != nil {
		r.Logger.Error("error listing drink entries for period", zap.String("period", periodID.String()), zap.Error(result.Error))

		return nil, result.Error
	}

	return entries, nil
}

func (r *Repository) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	result := r.DB.WithContext(ctx).Where("uuid = ?", id).Delete(&model.DrinkEntry{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
