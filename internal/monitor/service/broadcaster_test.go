package service

import (
	"errors"
	"fleetwatch/internal/monitor/broadcast"
	apperrors "fleetwatch/internal/monitor/errors"
	mockdiscovery "fleetwatch/internal/monitor/mocks/discovery"
	mockprobe "fleetwatch/internal/monitor/mocks/probe"
	mockrepository "fleetwatch/internal/monitor/mocks/repository"
	"fleetwatch/internal/monitor/model"
	"fleetwatch/pkg/infra"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func int64Ptr(v int64) *int64 {
	return &v
}

var testFleet = []model.ServerDescriptor{
	{Name: "ftp-0", ProtocolKind: "ftp", Host: "10.244.0.10", Port: 21, LifecycleState: model.LifecycleRunning},
	{Name: "s3-0", ProtocolKind: "s3", Host: "10.244.0.11", Port: 9000, LifecycleState: model.LifecycleRunning},
	{Name: "smb-0", ProtocolKind: "smb", Host: "10.244.0.12", Port: 445, LifecycleState: model.LifecycleRunning},
}

var testResults = []model.ProbeResult{
	{ServerName: "ftp-0", IsReachable: true, LatencyMillis: int64Ptr(40)},
	{ServerName: "s3-0", IsReachable: true, LatencyMillis: int64Ptr(4000)},
	{ServerName: "smb-0", IsReachable: false, Message: apperrors.ErrProbeRefused.Error()},
}

func TestBuildSnapshot(t *testing.T) {
	takenAt := time.Now().UTC()
	snapshot := buildSnapshot(testFleet, testResults, takenAt)

	assert.Equal(t, 3, snapshot.TotalServers)
	assert.Equal(t, 2, snapshot.HealthyServers)
	assert.Equal(t, takenAt, snapshot.TakenAt)
	require.Len(t, snapshot.Servers, 3)

	ftp := snapshot.Servers[0]
	assert.True(t, ftp.IsHealthy)
	require.NotNil(t, ftp.LatencyMillis)
	assert.Equal(t, int64(40), *ftp.LatencyMillis)

	s3 := snapshot.Servers[1]
	assert.True(t, s3.IsHealthy)
	require.NotNil(t, s3.LatencyMillis)
	assert.Equal(t, int64(4000), *s3.LatencyMillis)

	smb := snapshot.Servers[2]
	assert.False(t, smb.IsHealthy)
	assert.Nil(t, smb.LatencyMillis)
	assert.Equal(t, apperrors.ErrProbeRefused.Error(), smb.Message)
}

func TestBuildSnapshotReachableButNotRunning(t *testing.T) {
	servers := []model.ServerDescriptor{
		{Name: "nfs-0", ProtocolKind: "nfs", Host: "10.244.0.13", Port: 2049, LifecycleState: model.LifecyclePending},
	}
	results := []model.ProbeResult{
		{ServerName: "nfs-0", IsReachable: true, LatencyMillis: int64Ptr(12)},
	}
	snapshot := buildSnapshot(servers, results, time.Now().UTC())

	assert.Equal(t, 0, snapshot.HealthyServers)
	assert.False(t, snapshot.Servers[0].IsHealthy)
	assert.Nil(t, snapshot.Servers[0].LatencyMillis)
	assert.Contains(t, snapshot.Servers[0].Message, model.LifecyclePending)
}

func TestSnapshotBroadcaster_RunCycle(t *testing.T) {
	testCases := []struct {
		name          string
		cycles        int
		setupMocks    func(mockDiscoverer *mockdiscovery.MockDiscoverer, mockProber *mockprobe.MockProber, mockRepo *mockrepository.MockSampleRepository)
		wantSnapshots int
		wantHealthy   int
		wantTotal     int
	}{
		{
			name:   "Success Publish snapshot and persist samples",
			cycles: 1,
			setupMocks: func(mockDiscoverer *mockdiscovery.MockDiscoverer, mockProber *mockprobe.MockProber, mockRepo *mockrepository.MockSampleRepository) {
				mockDiscoverer.EXPECT().Discover(gomock.Any()).Return(testFleet, nil)
				mockProber.EXPECT().Probe(gomock.Any(), testFleet).Return(testResults)
				mockRepo.EXPECT().AppendSample(gomock.Any(), gomock.Any()).Return(model.HealthSample{ID: 1}, nil).Times(3)
			},
			wantSnapshots: 1,
			wantHealthy:   2,
			wantTotal:     3,
		},
		{
			name:   "Failure Discovery error keeps previous snapshot",
			cycles: 2,
			setupMocks: func(mockDiscoverer *mockdiscovery.MockDiscoverer, mockProber *mockprobe.MockProber, mockRepo *mockrepository.MockSampleRepository) {
				gomock.InOrder(
					mockDiscoverer.EXPECT().Discover(gomock.Any()).Return(testFleet, nil),
					mockDiscoverer.EXPECT().Discover(gomock.Any()).Return(nil, apperrors.NewPlatformError("list pods", errors.New("connection refused"))),
				)
				mockProber.EXPECT().Probe(gomock.Any(), testFleet).Return(testResults)
				mockRepo.EXPECT().AppendSample(gomock.Any(), gomock.Any()).Return(model.HealthSample{}, nil).Times(3)
			},
			wantSnapshots: 1,
			wantHealthy:   2,
			wantTotal:     3,
		},
		{
			name:   "Success Empty fleet still publishes",
			cycles: 1,
			setupMocks: func(mockDiscoverer *mockdiscovery.MockDiscoverer, mockProber *mockprobe.MockProber, mockRepo *mockrepository.MockSampleRepository) {
				mockDiscoverer.EXPECT().Discover(gomock.Any()).Return([]model.ServerDescriptor{}, nil)
				mockProber.EXPECT().Probe(gomock.Any(), gomock.Len(0)).Return([]model.ProbeResult{})
			},
			wantSnapshots: 1,
			wantHealthy:   0,
			wantTotal:     0,
		},
		{
			name:   "Failure Sample write error does not abort cycle",
			cycles: 1,
			setupMocks: func(mockDiscoverer *mockdiscovery.MockDiscoverer, mockProber *mockprobe.MockProber, mockRepo *mockrepository.MockSampleRepository) {
				mockDiscoverer.EXPECT().Discover(gomock.Any()).Return(testFleet, nil)
				mockProber.EXPECT().Probe(gomock.Any(), testFleet).Return(testResults)
				gomock.InOrder(
					mockRepo.EXPECT().AppendSample(gomock.Any(), gomock.Any()).Return(model.HealthSample{}, apperrors.ErrStoreUnavailable),
					mockRepo.EXPECT().AppendSample(gomock.Any(), gomock.Any()).Return(model.HealthSample{ID: 2}, nil),
					mockRepo.EXPECT().AppendSample(gomock.Any(), gomock.Any()).Return(model.HealthSample{ID: 3}, nil),
				)
			},
			wantSnapshots: 1,
			wantHealthy:   2,
			wantTotal:     3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDiscoverer := mockdiscovery.NewMockDiscoverer(ctrl)
			mockProber := mockprobe.NewMockProber(ctrl)
			mockRepo := mockrepository.NewMockSampleRepository(ctrl)
			hub := broadcast.NewHub(zap.NewNop())
			_, updates := hub.Subscribe()

			tc.setupMocks(mockDiscoverer, mockProber, mockRepo)

			b := &snapshotBroadcaster{
				logger:     zap.NewNop(),
				discoverer: mockDiscoverer,
				prober:     mockProber,
				sampleRepo: mockRepo,
				hub:        hub,
			}
			for i := 0; i < tc.cycles; i++ {
				b.runCycle()
			}

			assert.Len(t, updates, tc.wantSnapshots)
			received := <-updates
			assert.Equal(t, tc.wantTotal, received.TotalServers)
			assert.Equal(t, tc.wantHealthy, received.HealthyServers)
			assert.Same(t, received, b.GetLatest())
		})
	}
}

func TestSnapshotBroadcaster_KafkaEgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDiscoverer := mockdiscovery.NewMockDiscoverer(ctrl)
	mockProber := mockprobe.NewMockProber(ctrl)
	mockRepo := mockrepository.NewMockSampleRepository(ctrl)
	mockKafka := infra.NewMockKafkaWriter(ctrl)

	mockDiscoverer.EXPECT().Discover(gomock.Any()).Return(testFleet, nil)
	mockProber.EXPECT().Probe(gomock.Any(), testFleet).Return(testResults)
	mockRepo.EXPECT().AppendSample(gomock.Any(), gomock.Any()).Return(model.HealthSample{ID: 7, ServerName: "ftp-0"}, nil).Times(3)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Len(3)).Return(nil)

	b := &snapshotBroadcaster{
		logger:     zap.NewNop(),
		discoverer: mockDiscoverer,
		prober:     mockProber,
		sampleRepo: mockRepo,
		hub:        broadcast.NewHub(zap.NewNop()),
		kafka:      mockKafka,
	}
	b.runCycle()
}

func TestSnapshotBroadcaster_GetLatestBeforeFirstCycle(t *testing.T) {
	b := &snapshotBroadcaster{}
	assert.Nil(t, b.GetLatest())
}

func TestSnapshotBroadcaster_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDiscoverer := mockdiscovery.NewMockDiscoverer(ctrl)
	mockProber := mockprobe.NewMockProber(ctrl)
	mockRepo := mockrepository.NewMockSampleRepository(ctrl)
	mockKafka := infra.NewMockKafkaWriter(ctrl)

	mockDiscoverer.EXPECT().Discover(gomock.Any()).Return(testFleet, nil).MinTimes(1)
	mockProber.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(testResults).MinTimes(1)
	mockRepo.EXPECT().AppendSample(gomock.Any(), gomock.Any()).Return(model.HealthSample{}, nil).AnyTimes()
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().Close().Times(1)

	b := NewSnapshotBroadcaster(zap.NewNop(), mockDiscoverer, mockProber, mockRepo, broadcast.NewHub(zap.NewNop()), mockKafka, 50*time.Millisecond)
	b.Start()

	time.Sleep(120 * time.Millisecond)

	b.Stop()

	time.Sleep(50 * time.Millisecond)

	assert.NotNil(t, b.GetLatest())
}
