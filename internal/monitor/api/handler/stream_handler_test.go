package handler

import (
	"context"
	"encoding/json"
	"fleetwatch/internal/monitor/api/dto/response"
	"fleetwatch/internal/monitor/broadcast"
	"fleetwatch/internal/monitor/model"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
)

func TestStreamHandler_SubscribeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := broadcast.NewHub(zap.NewNop())
	streamHandler := NewStreamHandler(zap.NewNop(), hub)

	r := gin.New()
	r.GET("/api/status/subscribe", streamHandler.SubscribeStatus())

	server := httptest.NewServer(r)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/status/subscribe"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "test done")

	require.Eventually(t, func() bool {
		return hub.SubscriberCount() == 1
	}, time.Second, 10*time.Millisecond)

	snapshot := &model.StatusSnapshot{
		Servers: []model.ServerStatus{
			{Name: "ftp-0", ProtocolKind: "ftp", LifecycleState: model.LifecycleRunning, IsHealthy: true, LatencyMillis: int64Ptr(40)},
			{Name: "smb-0", ProtocolKind: "smb", LifecycleState: model.LifecycleRunning, IsHealthy: false, Message: "probe connection refused"},
		},
		TakenAt:        time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC),
		TotalServers:   2,
		HealthyServers: 1,
	}
	hub.Publish(snapshot)

	msgType, payload, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, websocket.MessageText, msgType)

	var received response.StatusSnapshotResponse
	require.NoError(t, json.Unmarshal(payload, &received))
	assert.Equal(t, 2, received.TotalServers)
	assert.Equal(t, 1, received.HealthyServers)
	require.Len(t, received.Servers, 2)
	assert.Equal(t, "ftp-0", received.Servers[0].Name)
	require.NotNil(t, received.Servers[0].LatencyMillis)
	assert.Equal(t, int64(40), *received.Servers[0].LatencyMillis)
	assert.Nil(t, received.Servers[1].LatencyMillis)

	hub.Publish(snapshot)
	_, payload, err = conn.Read(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"total_servers":2`)

	conn.Close(websocket.StatusNormalClosure, "done")
	require.Eventually(t, func() bool {
		return hub.SubscriberCount() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStreamHandler_SubscribeStatusRejectsPlainRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := broadcast.NewHub(zap.NewNop())
	streamHandler := NewStreamHandler(zap.NewNop(), hub)

	r := gin.New()
	r.GET("/api/status/subscribe", streamHandler.SubscribeStatus())

	server := httptest.NewServer(r)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/status/subscribe")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEqual(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, hub.SubscriberCount())
}
