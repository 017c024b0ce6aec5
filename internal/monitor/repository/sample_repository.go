package repository

import (
	"context"
	"errors"
	apperrors "fleetwatch/internal/monitor/errors"
	"fleetwatch/internal/monitor/model"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

type SampleRepository interface {
	AppendSample(ctx context.Context, sample model.HealthSample) (model.HealthSample, error)
	GetSamples(ctx context.Context, serverName string, from time.Time, to time.Time) ([]model.HealthSample, error)
	ListServerNames(ctx context.Context) ([]string, error)
	OldestSample(ctx context.Context) (model.HealthSample, error)
	DeleteSamplesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type sampleRepository struct {
	db *gorm.DB
}

func (s *sampleRepository) AppendSample(ctx context.Context, sample model.HealthSample) (model.HealthSample, error) {
	result := s.db.WithContext(ctx).Create(&sample)
	if result.Error != nil {
		return sample, fmt.Errorf("SampleRepository.AppendSample: %w", translateStoreError(result.Error))
	}
	return sample, nil
}

// GetSamples returns samples with timestamp in [from, to), oldest first.
func (s *sampleRepository) GetSamples(ctx context.Context, serverName string, from time.Time, to time.Time) ([]model.HealthSample, error) {
	query := s.db.WithContext(ctx).Where("timestamp >= ? AND timestamp < ?", from, to)
	if serverName != "" {
		query = query.Where("server_name = ?", serverName)
	}
	var samples []model.HealthSample
	result := query.Order("timestamp asc").Find(&samples)
	if result.Error != nil {
		return nil, fmt.Errorf("SampleRepository.GetSamples: %w", translateStoreError(result.Error))
	}
	return samples, nil
}

func (s *sampleRepository) ListServerNames(ctx context.Context) ([]string, error) {
	var names []string
	result := s.db.WithContext(ctx).Model(&model.HealthSample{}).Distinct().Order("server_name asc").Pluck("server_name", &names)
	if result.Error != nil {
		return nil, fmt.Errorf("SampleRepository.ListServerNames: %w", translateStoreError(result.Error))
	}
	return names, nil
}

func (s *sampleRepository) OldestSample(ctx context.Context) (model.HealthSample, error) {
	var sample model.HealthSample
	result := s.db.WithContext(ctx).Order("timestamp asc").First(&sample)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return sample, fmt.Errorf("SampleRepository.OldestSample: %w", apperrors.ErrNoSamples)
		}
		return sample, fmt.Errorf("SampleRepository.OldestSample: %w", translateStoreError(result.Error))
	}
	return sample, nil
}

// DeleteSamplesBefore removes all samples strictly older than cutoff in one
// range delete and reports how many rows went away. A sample at exactly
// cutoff survives.
func (s *sampleRepository) DeleteSamplesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("timestamp < ?", cutoff).Delete(&model.HealthSample{})
	if result.Error != nil {
		return 0, fmt.Errorf("SampleRepository.DeleteSamplesBefore: %w", translateStoreError(result.Error))
	}
	return result.RowsAffected, nil
}

func NewSampleRepository(db *gorm.DB) SampleRepository {
	return &sampleRepository{
		db: db,
	}
}

// translateStoreError folds driver-level unavailability (locked file,
// unwritable path, io failure) into ErrStoreUnavailable so callers can
// separate "store down" from "bad query".
func translateStoreError(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen, sqlite3.ErrIoErr:
			return apperrors.ErrStoreUnavailable
		}
	}
	return err
}
