package service

import (
	"context"
	"errors"
	apperrors "fleetwatch/internal/monitor/errors"
	mockdiscovery "fleetwatch/internal/monitor/mocks/discovery"
	mockrepository "fleetwatch/internal/monitor/mocks/repository"
	"fleetwatch/internal/monitor/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMonitorService_GetStatus(t *testing.T) {
	t.Run("returns not ready before the first cycle", func(t *testing.T) {
		service := NewMonitorService(nil, &snapshotBroadcaster{}, nil, nil)

		snapshot, err := service.GetStatus()

		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, apperrors.ErrSnapshotNotReady)
	})

	t.Run("returns the cached snapshot", func(t *testing.T) {
		cached := &model.StatusSnapshot{TakenAt: time.Now().UTC(), TotalServers: 3, HealthyServers: 2}
		broadcaster := &snapshotBroadcaster{}
		broadcaster.latest.Store(cached)
		service := NewMonitorService(nil, broadcaster, nil, nil)

		snapshot, err := service.GetStatus()

		assert.NoError(t, err)
		assert.Same(t, cached, snapshot)
	})
}

func TestMonitorService_GetServers(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMocks func(mockDiscoverer *mockdiscovery.MockDiscoverer)
		output     []model.ServerDescriptor
		wantErr    error
	}{
		{
			name: "Success Servers sorted by name",
			setupMocks: func(mockDiscoverer *mockdiscovery.MockDiscoverer) {
				mockDiscoverer.EXPECT().Discover(ctx).Return([]model.ServerDescriptor{
					{Name: "smb-0", ProtocolKind: "smb"},
					{Name: "ftp-0", ProtocolKind: "ftp"},
				}, nil)
			},
			output: []model.ServerDescriptor{
				{Name: "ftp-0", ProtocolKind: "ftp"},
				{Name: "smb-0", ProtocolKind: "smb"},
			},
		},
		{
			name: "Error Platform unavailable",
			setupMocks: func(mockDiscoverer *mockdiscovery.MockDiscoverer) {
				mockDiscoverer.EXPECT().Discover(ctx).Return(nil, apperrors.NewPlatformError("list pods", errors.New("unauthorized")))
			},
			wantErr: apperrors.ErrPlatformUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDiscoverer := mockdiscovery.NewMockDiscoverer(ctrl)
			tc.setupMocks(mockDiscoverer)

			service := NewMonitorService(mockDiscoverer, nil, nil, nil)

			got, err := service.GetServers(ctx)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.output, got)
		})
	}
}

func TestMonitorService_GetServer(t *testing.T) {
	ctx := context.Background()
	fleet := []model.ServerDescriptor{
		{Name: "ftp-0", ProtocolKind: "ftp", Host: "10.244.0.10", Port: 21, LifecycleState: model.LifecycleRunning},
		{Name: "nfs-0", ProtocolKind: "nfs", Host: "10.244.0.13", Port: 2049, LifecycleState: model.LifecycleRunning},
	}

	testCases := []struct {
		name       string
		serverName string
		setupMocks func(mockDiscoverer *mockdiscovery.MockDiscoverer)
		output     model.ServerDescriptor
		wantErr    error
	}{
		{
			name:       "Success Server found",
			serverName: "nfs-0",
			setupMocks: func(mockDiscoverer *mockdiscovery.MockDiscoverer) {
				mockDiscoverer.EXPECT().Discover(ctx).Return(fleet, nil)
			},
			output: fleet[1],
		},
		{
			name:       "Error Server not in the fleet",
			serverName: "sftp-9",
			setupMocks: func(mockDiscoverer *mockdiscovery.MockDiscoverer) {
				mockDiscoverer.EXPECT().Discover(ctx).Return(fleet, nil)
			},
			wantErr: apperrors.ErrServerNotFound,
		},
		{
			name:       "Error Platform unavailable",
			serverName: "ftp-0",
			setupMocks: func(mockDiscoverer *mockdiscovery.MockDiscoverer) {
				mockDiscoverer.EXPECT().Discover(ctx).Return(nil, apperrors.NewPlatformError("list pods", errors.New("timeout")))
			},
			wantErr: apperrors.ErrPlatformUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDiscoverer := mockdiscovery.NewMockDiscoverer(ctrl)
			tc.setupMocks(mockDiscoverer)

			service := NewMonitorService(mockDiscoverer, nil, nil, nil)

			got, err := service.GetServer(ctx, tc.serverName)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.output, got)
		})
	}
}

func TestMonitorService_GetSamples(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSampleRepo := mockrepository.NewMockSampleRepository(ctrl)
	samples := []model.HealthSample{
		{ID: 1, ServerName: "ftp-0", Timestamp: from.Add(5 * time.Second), IsHealthy: true, LatencyMillis: int64Ptr(12)},
	}
	mockSampleRepo.EXPECT().GetSamples(ctx, "ftp-0", from, to).Return(samples, nil)

	service := NewMonitorService(nil, nil, mockSampleRepo, nil)

	got, err := service.GetSamples(ctx, "ftp-0", from, to)

	assert.NoError(t, err)
	assert.Equal(t, samples, got)
}

func TestMonitorService_ListServerNames(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMocks func(mockSampleRepo *mockrepository.MockSampleRepository, mockRollupRepo *mockrepository.MockRollupRepository)
		output     []string
		expectErr  bool
	}{
		{
			name: "Success Union of sampled and rolled up servers",
			setupMocks: func(mockSampleRepo *mockrepository.MockSampleRepository, mockRollupRepo *mockrepository.MockRollupRepository) {
				mockSampleRepo.EXPECT().ListServerNames(ctx).Return([]string{"nfs-0", "ftp-0"}, nil)
				mockRollupRepo.EXPECT().ListServerNames(ctx).Return([]string{"ftp-0", "smb-0"}, nil)
			},
			output: []string{"ftp-0", "nfs-0", "smb-0"},
		},
		{
			name: "Success No data yet",
			setupMocks: func(mockSampleRepo *mockrepository.MockSampleRepository, mockRollupRepo *mockrepository.MockRollupRepository) {
				mockSampleRepo.EXPECT().ListServerNames(ctx).Return([]string{}, nil)
				mockRollupRepo.EXPECT().ListServerNames(ctx).Return([]string{}, nil)
			},
			output: []string{},
		},
		{
			name: "Error Sample repository fails",
			setupMocks: func(mockSampleRepo *mockrepository.MockSampleRepository, mockRollupRepo *mockrepository.MockRollupRepository) {
				mockSampleRepo.EXPECT().ListServerNames(ctx).Return(nil, apperrors.ErrStoreUnavailable)
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSampleRepo := mockrepository.NewMockSampleRepository(ctrl)
			mockRollupRepo := mockrepository.NewMockRollupRepository(ctrl)
			tc.setupMocks(mockSampleRepo, mockRollupRepo)

			service := NewMonitorService(nil, nil, mockSampleRepo, mockRollupRepo)

			got, err := service.ListServerNames(ctx)

			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.output, got)
		})
	}
}
