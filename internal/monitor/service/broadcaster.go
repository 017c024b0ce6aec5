package service

import (
	"context"
	"encoding/json"
	"fleetwatch/internal/monitor/broadcast"
	"fleetwatch/internal/monitor/discovery"
	apperrors "fleetwatch/internal/monitor/errors"
	"fleetwatch/internal/monitor/metrics"
	"fleetwatch/internal/monitor/model"
	"fleetwatch/internal/monitor/probe"
	"fleetwatch/internal/monitor/repository"
	"fleetwatch/pkg/infra"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const cycleTimeout = 30 * time.Second

type Broadcaster interface {
	Start()
	Stop()
	GetLatest() *model.StatusSnapshot
}

type snapshotBroadcaster struct {
	ticker     *time.Ticker
	interval   time.Duration
	logger     *zap.Logger
	stopChan   chan struct{}
	discoverer discovery.Discoverer
	prober     probe.Prober
	sampleRepo repository.SampleRepository
	hub        broadcast.Hub
	kafka      infra.KafkaWriter
	latest     atomic.Value
}

func (b *snapshotBroadcaster) Start() {
	go func() {
		b.runCycle()
		b.ticker = time.NewTicker(b.interval)
		for {
			select {
			case <-b.ticker.C:
				b.runCycle()
			case <-b.stopChan:
				b.ticker.Stop()
				if b.kafka != nil {
					b.kafka.Close()
				}
				return
			}
		}
	}()
}

// Stop returns once the loop has observed the signal, so an in-flight
// cycle always finishes its current phase first.
func (b *snapshotBroadcaster) Stop() {
	b.stopChan <- struct{}{}
}

// GetLatest returns the current snapshot, or nil before the first
// completed cycle.
func (b *snapshotBroadcaster) GetLatest() *model.StatusSnapshot {
	snapshot, _ := b.latest.Load().(*model.StatusSnapshot)
	return snapshot
}

func (b *snapshotBroadcaster) runCycle() {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()

	servers, err := b.discoverer.Discover(ctx)
	if err != nil {
		// The previous snapshot stays current; the next tick retries.
		metrics.BroadcastCyclesTotal.WithLabelValues("skipped").Inc()
		b.logger.Error("discovery failed, keeping previous snapshot", zap.Error(fmt.Errorf("snapshotBroadcaster.runCycle: %w", err)))
		return
	}

	results := b.prober.Probe(ctx, servers)
	snapshot := buildSnapshot(servers, results, time.Now().UTC())

	b.latest.Store(snapshot)
	b.hub.Publish(snapshot)
	b.persistSamples(ctx, snapshot)

	metrics.ServersTotal.Set(float64(snapshot.TotalServers))
	metrics.ServersHealthy.Set(float64(snapshot.HealthyServers))
	metrics.BroadcastCyclesTotal.WithLabelValues("completed").Inc()
	metrics.BroadcastCycleDuration.Observe(time.Since(start).Seconds())
}

// persistSamples writes one sample per server and publishes each stored
// sample to the egress topic when one is configured. Store and egress
// failures are logged per server and never abort the cycle.
func (b *snapshotBroadcaster) persistSamples(ctx context.Context, snapshot *model.StatusSnapshot) {
	var messages []kafka.Message
	for _, status := range snapshot.Servers {
		sample := model.HealthSample{
			ServerName:    status.Name,
			Timestamp:     snapshot.TakenAt,
			ProtocolKind:  status.ProtocolKind,
			IsHealthy:     status.IsHealthy,
			LatencyMillis: status.LatencyMillis,
		}
		created, err := b.sampleRepo.AppendSample(ctx, sample)
		if err != nil {
			metrics.SampleWriteFailuresTotal.Inc()
			b.logger.Error("failed to persist health sample", zap.Error(fmt.Errorf("snapshotBroadcaster.persistSamples: %w", err)), zap.String("server_name", status.Name))
			continue
		}
		if b.kafka != nil {
			value, e := json.Marshal(created)
			if e != nil {
				b.logger.Error("failed to marshal health sample", zap.Error(fmt.Errorf("snapshotBroadcaster.persistSamples: %w", e)), zap.String("server_name", status.Name))
				continue
			}
			messages = append(messages, kafka.Message{
				Key:   []byte(created.ServerName),
				Value: value,
			})
		}
	}
	if b.kafka != nil && len(messages) > 0 {
		if err := b.kafka.WriteMessages(ctx, messages...); err != nil {
			b.logger.Error("failed to publish health samples", zap.Error(fmt.Errorf("snapshotBroadcaster.persistSamples: %w", err)))
		}
	}
}

// buildSnapshot derives one status per discovered server. Healthy means
// the probe connected and the pod lifecycle is running; latency is kept
// only for healthy servers.
func buildSnapshot(servers []model.ServerDescriptor, results []model.ProbeResult, takenAt time.Time) *model.StatusSnapshot {
	statuses := make([]model.ServerStatus, 0, len(servers))
	healthy := 0
	for i, server := range servers {
		result := results[i]
		status := model.ServerStatus{
			Name:           server.Name,
			ProtocolKind:   server.ProtocolKind,
			LifecycleState: server.LifecycleState,
		}
		switch {
		case result.IsReachable && server.LifecycleState == model.LifecycleRunning:
			status.IsHealthy = true
			status.LatencyMillis = result.LatencyMillis
			healthy++
		case result.IsReachable:
			status.Message = fmt.Sprintf("reachable but pod lifecycle state is %s", server.LifecycleState)
		default:
			status.Message = result.Message
			metrics.ProbeFailuresTotal.WithLabelValues(probeFailureReason(result.Message)).Inc()
		}
		statuses = append(statuses, status)
	}
	return &model.StatusSnapshot{
		Servers:        statuses,
		TakenAt:        takenAt,
		TotalServers:   len(servers),
		HealthyServers: healthy,
	}
}

func probeFailureReason(message string) string {
	switch message {
	case apperrors.ErrProbeRefused.Error():
		return "refused"
	case apperrors.ErrProbeTimeout.Error():
		return "timeout"
	default:
		return "other"
	}
}

// NewSnapshotBroadcaster wires the discover-probe-publish cycle. A nil
// kafka writer disables sample egress.
func NewSnapshotBroadcaster(logger *zap.Logger, discoverer discovery.Discoverer, prober probe.Prober, sampleRepository repository.SampleRepository, hub broadcast.Hub, kafka infra.KafkaWriter, interval time.Duration) Broadcaster {
	return &snapshotBroadcaster{
		interval:   interval,
		logger:     logger,
		stopChan:   make(chan struct{}),
		discoverer: discoverer,
		prober:     prober,
		sampleRepo: sampleRepository,
		hub:        hub,
		kafka:      kafka,
	}
}
