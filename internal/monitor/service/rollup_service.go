package service

import (
	"context"
	"errors"
	apperrors "fleetwatch/internal/monitor/errors"
	"fleetwatch/internal/monitor/metrics"
	"fleetwatch/internal/monitor/model"
	"fleetwatch/internal/monitor/repository"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"
)

const rollupTimeout = 5 * time.Minute

type RollupService interface {
	Start()
	Stop()
	RunOnce(ctx context.Context) error
}

type rollupService struct {
	ticker       *time.Ticker
	interval     time.Duration
	startupDelay time.Duration
	logger       *zap.Logger
	stopChan     chan struct{}
	sampleRepo   repository.SampleRepository
	rollupRepo   repository.RollupRepository
}

// Start waits out the startup delay so the first samples have landed,
// then aggregates on every tick.
func (r *rollupService) Start() {
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

func (r *rollupService) Stop() {
	r.stopChan <- struct{}{}
}

func (r *rollupService) onTick() {
	ctx, cancel := context.WithTimeout(context.Background(), rollupTimeout)
	defer cancel()
	if err := r.RunOnce(ctx); err != nil {
		// Retried on the next tick.
		metrics.RollupRunsTotal.WithLabelValues("skipped").Inc()
		r.logger.Error("hourly rollup run skipped", zap.Error(err))
		return
	}
	metrics.RollupRunsTotal.WithLabelValues("completed").Inc()
}

// RunOnce aggregates every completed hour that has no rollup yet, from
// the hour after the latest rollup (or the oldest sample's hour on an
// empty rollup table) up to, but excluding, the current hour.
func (r *rollupService) RunOnce(ctx context.Context) error {
	start, err := r.backfillStart(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoSamples) {
			return nil
		}
		return fmt.Errorf("rollupService.RunOnce: %w: %w", apperrors.ErrAggregationSkipped, err)
	}
	end := time.Now().UTC().Truncate(time.Hour)
	for hour := start; hour.Before(end); hour = hour.Add(time.Hour) {
		if err = r.rollupHour(ctx, hour); err != nil {
			return fmt.Errorf("rollupService.RunOnce: %w: %w", apperrors.ErrAggregationSkipped, err)
		}
	}
	return nil
}

func (r *rollupService) backfillStart(ctx context.Context) (time.Time, error) {
	latest, err := r.rollupRepo.LatestRollup(ctx)
	if err == nil {
		return latest.HourStart.UTC().Add(time.Hour), nil
	}
	if !errors.Is(err, apperrors.ErrNoRollups) {
		return time.Time{}, fmt.Errorf("rollupService.backfillStart: %w", err)
	}
	oldest, err := r.sampleRepo.OldestSample(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("rollupService.backfillStart: %w", err)
	}
	return oldest.Timestamp.UTC().Truncate(time.Hour), nil
}

// rollupHour aggregates one completed hour across every server present
// in that hour's samples. Hours without samples produce no rows.
func (r *rollupService) rollupHour(ctx context.Context, hourStart time.Time) error {
	samples, err := r.sampleRepo.GetSamples(ctx, "", hourStart, hourStart.Add(time.Hour))
	if err != nil {
		return fmt.Errorf("rollupService.rollupHour: %w", err)
	}
	if len(samples) == 0 {
		return nil
	}
	grouped := make(map[string][]model.HealthSample)
	for _, sample := range samples {
		grouped[sample.ServerName] = append(grouped[sample.ServerName], sample)
	}
	rollups := make([]model.HealthHourly, 0, len(grouped))
	for serverName, serverSamples := range grouped {
		rollups = append(rollups, computeHourly(serverName, hourStart, serverSamples))
	}
	sort.Slice(rollups, func(i, j int) bool {
		return rollups[i].ServerName < rollups[j].ServerName
	})
	if err = r.rollupRepo.UpsertRollups(ctx, rollups); err != nil {
		return fmt.Errorf("rollupService.rollupHour: %w", err)
	}
	return nil
}

// computeHourly derives one rollup row. Latency statistics stay null
// when the hour has no healthy samples.
func computeHourly(serverName string, hourStart time.Time, samples []model.HealthSample) model.HealthHourly {
	rollup := model.HealthHourly{
		ServerName:   serverName,
		HourStart:    hourStart,
		ProtocolKind: samples[len(samples)-1].ProtocolKind,
		SampleCount:  int64(len(samples)),
	}
	latencies := make([]float64, 0, len(samples))
	var minLatency, maxLatency int64
	var sum float64
	for _, sample := range samples {
		if !sample.IsHealthy || sample.LatencyMillis == nil {
			continue
		}
		latency := *sample.LatencyMillis
		if rollup.HealthyCount == 0 || latency < minLatency {
			minLatency = latency
		}
		if rollup.HealthyCount == 0 || latency > maxLatency {
			maxLatency = latency
		}
		rollup.HealthyCount++
		sum += float64(latency)
		latencies = append(latencies, float64(latency))
	}
	if rollup.HealthyCount == 0 {
		return rollup
	}
	sort.Float64s(latencies)
	avg := sum / float64(rollup.HealthyCount)
	p95 := percentile(latencies, 0.95)
	rollup.AvgLatencyMillis = &avg
	rollup.MinLatencyMillis = &minLatency
	rollup.MaxLatencyMillis = &maxLatency
	rollup.P95LatencyMillis = &p95
	return rollup
}

// percentile interpolates linearly between the two ranks surrounding
// p*(n-1) on an ascending-sorted slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := p * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper || upper >= len(sorted) {
		return sorted[lower]
	}
	frac := idx - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

func NewRollupService(logger *zap.Logger, sampleRepository repository.SampleRepository, rollupRepository repository.RollupRepository, interval time.Duration, startupDelay time.Duration) RollupService {
	return &rollupService{
		interval:     interval,
		startupDelay: startupDelay,
		logger:       logger,
		stopChan:     make(chan struct{}),
		sampleRepo:   sampleRepository,
		rollupRepo:   rollupRepository,
	}
}
