package service

import (
	"context"
	apperrors "fleetwatch/internal/monitor/errors"
	"fleetwatch/internal/monitor/metrics"
	"fleetwatch/internal/monitor/repository"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const retentionTimeout = 5 * time.Minute

type RetentionService interface {
	Start()
	Stop()
	RunOnce(ctx context.Context) error
}

type retentionService struct {
	ticker       *time.Ticker
	interval     time.Duration
	startupDelay time.Duration
	horizon      time.Duration
	logger       *zap.Logger
	stopChan     chan struct{}
	sampleRepo   repository.SampleRepository
	rollupRepo   repository.RollupRepository
}

func (r *retentionService) Start() {
	go func() {
		delay := time.NewTimer(r.startupDelay)
		select {
		case <-delay.C:
		case <-r.stopChan:
			delay.Stop()
			return
		}
		r.onTick()
		r.ticker = time.NewTicker(r.interval)
		for {
			select {
			case <-r.ticker.C:
				r.onTick()
			case <-r.stopChan:
				r.ticker.Stop()
				return
			}
		}
	}()
}

func (r *retentionService) Stop() {
	r.stopChan <- struct{}{}
}

func (r *retentionService) onTick() {
	ctx, cancel := context.WithTimeout(context.Background(), retentionTimeout)
	defer cancel()
	if err := r.RunOnce(ctx); err != nil {
		// Retried on the next tick.
		r.logger.Error("retention reap skipped", zap.Error(err))
	}
}

// RunOnce bulk-deletes samples and rollups older than the horizon.
// Rows exactly at the boundary are kept.
func (r *retentionService) RunOnce(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-r.horizon)
	samplesDeleted, err := r.sampleRepo.DeleteSamplesBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("retentionService.RunOnce: %w: %w", apperrors.ErrAggregationSkipped, err)
	}
	metrics.ReapedRowsTotal.WithLabelValues("health_samples").Add(float64(samplesDeleted))
	rollupsDeleted, err := r.rollupRepo.DeleteRollupsBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("retentionService.RunOnce: %w: %w", apperrors.ErrAggregationSkipped, err)
	}
	metrics.ReapedRowsTotal.WithLabelValues("health_hourly").Add(float64(rollupsDeleted))
	if samplesDeleted > 0 || rollupsDeleted > 0 {
		r.logger.Info("retention reap completed",
			zap.Int64("samples_deleted", samplesDeleted),
			zap.Int64("rollups_deleted", rollupsDeleted),
			zap.Time("cutoff", cutoff))
	}
	return nil
}

func NewRetentionService(logger *zap.Logger, sampleRepository repository.SampleRepository, rollupRepository repository.RollupRepository, interval time.Duration, startupDelay time.Duration, horizon time.Duration) RetentionService {
	return &retentionService{
		interval:     interval,
		startupDelay: startupDelay,
		horizon:      horizon,
		logger:       logger,
		stopChan:     make(chan struct{}),
		sampleRepo:   sampleRepository,
		rollupRepo:   rollupRepository,
	}
}
