package repository

import (
	"context"
	"errors"
	apperrors "fleetwatch/internal/monitor/errors"
	"fleetwatch/internal/monitor/model"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RollupRepository interface {
	UpsertRollups(ctx context.Context, rollups []model.HealthHourly) error
	GetRollups(ctx context.Context, serverName string, from time.Time, to time.Time) ([]model.HealthHourly, error)
	ListServerNames(ctx context.Context) ([]string, error)
	LatestRollup(ctx context.Context) (model.HealthHourly, error)
	DeleteRollupsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type rollupRepository struct {
	db *gorm.DB
}

// UpsertRollups writes rollup rows, replacing any existing row for the same
// (server_name, hour_start). Re-running a generator pass over an already
// rolled-up hour therefore converges instead of duplicating.
func (r *rollupRepository) UpsertRollups(ctx context.Context, rollups []model.HealthHourly) error {
	if len(rollups) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "server_name"}, {Name: "hour_start"}},
		UpdateAll: true,
	}).Create(&rollups)
	if result.Error != nil {
		return fmt.Errorf("RollupRepository.UpsertRollups: %w", translateStoreError(result.Error))
	}
	return nil
}

// GetRollups returns rollups with hour_start in [from, to), oldest first.
func (r *rollupRepository) GetRollups(ctx context.Context, serverName string, from time.Time, to time.Time) ([]model.HealthHourly, error) {
	query := r.db.WithContext(ctx).Where("hour_start >= ? AND hour_start < ?", from, to)
	if serverName != "" {
		query = query.Where("server_name = ?", serverName)
	}
	var rollups []model.HealthHourly
	result := query.Order("hour_start asc").Find(&rollups)
	if result.Error != nil {
		return nil, fmt.Errorf("RollupRepository.GetRollups: %w", translateStoreError(result.Error))
	}
	return rollups, nil
}

func (r *rollupRepository) ListServerNames(ctx context.Context) ([]string, error) {
	var names []string
	result := r.db.WithContext(ctx).Model(&model.HealthHourly{}).Distinct().Order("server_name asc").Pluck("server_name", &names)
	if result.Error != nil {
		return nil, fmt.Errorf("RollupRepository.ListServerNames: %w", translateStoreError(result.Error))
	}
	return names, nil
}

func (r *rollupRepository) LatestRollup(ctx context.Context) (model.HealthHourly, error) {
	var rollup model.HealthHourly
	result := r.db.WithContext(ctx).Order("hour_start desc").First(&rollup)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return rollup, fmt.Errorf("RollupRepository.LatestRollup: %w", apperrors.ErrNoRollups)
		}
		return rollup, fmt.Errorf("RollupRepository.LatestRollup: %w", translateStoreError(result.Error))
	}
	return rollup, nil
}

func (r *rollupRepository) DeleteRollupsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("hour_start < ?", cutoff).Delete(&model.HealthHourly{})
	if result.Error != nil {
		return 0, fmt.Errorf("RollupRepository.DeleteRollupsBefore: %w", translateStoreError(result.Error))
	}
	return result.RowsAffected, nil
}

func NewRollupRepository(db *gorm.DB) RollupRepository {
	return &rollupRepository{
		db: db,
	}
}
