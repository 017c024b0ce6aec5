package handler

import (
	"context"
	"encoding/json"
	"fleetwatch/internal/monitor/broadcast"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
)

const snapshotWriteTimeout = 5 * time.Second

type StreamHandler interface {
	SubscribeStatus() gin.HandlerFunc
}

type streamHandler struct {
	logger *zap.Logger
	hub    broadcast.Hub
}

// SubscribeStatus upgrades the request to a websocket and forwards one
// snapshot message per broadcast cycle. There is no replay: a client that
// reconnects starts from the next cycle and should fetch the status
// endpoint to catch up.
func (h *streamHandler) SubscribeStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := websocket.Accept(c.Writer, c.Request, nil)
		if err != nil {
			h.logger.Warn("websocket upgrade failed", zap.Error(err), zap.String("http_path", c.Request.URL.Path))
			return
		}
		defer conn.Close(websocket.StatusInternalError, "stream closed")

		id, updates := h.hub.Subscribe()
		defer h.hub.Unsubscribe(id)
		h.logger.Info("status subscriber connected", zap.String("subscriber_id", id))

		// The stream is write-only. CloseRead drains incoming frames and
		// cancels the context when the client closes the connection.
		ctx := conn.CloseRead(c.Request.Context())
		for {
			select {
			case <-ctx.Done():
				conn.Close(websocket.StatusNormalClosure, "client gone")
				return
			case snapshot, ok := <-updates:
				if !ok {
					conn.Close(websocket.StatusGoingAway, "hub closed")
					return
				}
				payload, err := json.Marshal(toStatusSnapshotResponse(snapshot))
				if err != nil {
					h.logger.Error("failed to encode snapshot", zap.Error(err), zap.String("subscriber_id", id))
					continue
				}
				writeCtx, cancel := context.WithTimeout(ctx, snapshotWriteTimeout)
				err = conn.Write(writeCtx, websocket.MessageText, payload)
				cancel()
				if err != nil {
					h.logger.Info("status subscriber dropped", zap.Error(err), zap.String("subscriber_id", id))
					return
				}
			}
		}
	}
}

func NewStreamHandler(logger *zap.Logger, hub broadcast.Hub) StreamHandler {
	return &streamHandler{
		logger: logger,
		hub:    hub,
	}
}
