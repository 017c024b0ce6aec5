package service

import (
	"context"
	"fleetwatch/internal/monitor/discovery"
	apperrors "fleetwatch/internal/monitor/errors"
	"fleetwatch/internal/monitor/model"
	"fleetwatch/internal/monitor/repository"
	"fmt"
	"sort"
	"time"
)

type MonitorService interface {
	GetServers(ctx context.Context) ([]model.ServerDescriptor, error)
	GetServer(ctx context.Context, name string) (model.ServerDescriptor, error)
	GetStatus() (*model.StatusSnapshot, error)
	GetSamples(ctx context.Context, serverName string, from time.Time, to time.Time) ([]model.HealthSample, error)
	GetRollups(ctx context.Context, serverName string, from time.Time, to time.Time) ([]model.HealthHourly, error)
	ListServerNames(ctx context.Context) ([]string, error)
}

type monitorService struct {
	discoverer  discovery.Discoverer
	broadcaster Broadcaster
	sampleRepo  repository.SampleRepository
	rollupRepo  repository.RollupRepository
}

func (s *monitorService) GetServers(ctx context.Context) ([]model.ServerDescriptor, error) {
	servers, err := s.discoverer.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.GetServers: %w", err)
	}
	sort.Slice(servers, func(i, j int) bool {
		return servers[i].Name < servers[j].Name
	})
	return servers, nil
}

func (s *monitorService) GetServer(ctx context.Context, name string) (model.ServerDescriptor, error) {
	servers, err := s.discoverer.Discover(ctx)
	if err != nil {
		return model.ServerDescriptor{}, fmt.Errorf("MonitorService.GetServer: %w", err)
	}
	for _, server := range servers {
		if server.Name == name {
			return server, nil
		}
	}
	return model.ServerDescriptor{}, fmt.Errorf("MonitorService.GetServer: %w", apperrors.ErrServerNotFound)
}

func (s *monitorService) GetStatus() (*model.StatusSnapshot, error) {
	snapshot := s.broadcaster.GetLatest()
	if snapshot == nil {
		return nil, fmt.Errorf("MonitorService.GetStatus: %w", apperrors.ErrSnapshotNotReady)
	}
	return snapshot, nil
}

func (s *monitorService) GetSamples(ctx context.Context, serverName string, from time.Time, to time.Time) ([]model.HealthSample, error) {
	samples, err := s.sampleRepo.GetSamples(ctx, serverName, from, to)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.GetSamples: %w", err)
	}
	return samples, nil
}

func (s *monitorService) GetRollups(ctx context.Context, serverName string, from time.Time, to time.Time) ([]model.HealthHourly, error) {
	rollups, err := s.rollupRepo.GetRollups(ctx, serverName, from, to)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.GetRollups: %w", err)
	}
	return rollups, nil
}

// ListServerNames returns every server with any stored data, sampled or
// rolled up.
func (s *monitorService) ListServerNames(ctx context.Context) ([]string, error) {
	sampleNames, err := s.sampleRepo.ListServerNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.ListServerNames: %w", err)
	}
	rollupNames, err := s.rollupRepo.ListServerNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.ListServerNames: %w", err)
	}
	seen := make(map[string]struct{}, len(sampleNames))
	names := make([]string, 0, len(sampleNames))
	for _, name := range sampleNames {
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, name := range rollupNames {
		if _, ok := seen[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func NewMonitorService(discoverer discovery.Discoverer, broadcaster Broadcaster, sampleRepository repository.SampleRepository, rollupRepository repository.RollupRepository) MonitorService {
	return &monitorService{
		discoverer:  discoverer,
		broadcaster: broadcaster,
		sampleRepo:  sampleRepository,
		rollupRepo:  rollupRepository,
	}
}
