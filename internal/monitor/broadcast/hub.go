package broadcast

import (
	"fleetwatch/internal/monitor/model"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// subscriberBuffer absorbs short consumer stalls. A subscriber that falls
// further behind misses snapshots and must fall back to the status
// endpoint; there is no replay.
const subscriberBuffer = 8

type Hub interface {
	Subscribe() (string, <-chan *model.StatusSnapshot)
	Unsubscribe(id string)
	Publish(snapshot *model.StatusSnapshot)
	SubscriberCount() int
}

type snapshotHub struct {
	mu          sync.RWMutex
	subscribers map[string]chan *model.StatusSnapshot
	logger      *zap.Logger
}

func (h *snapshotHub) Subscribe() (string, <-chan *model.StatusSnapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan *model.StatusSnapshot, subscriberBuffer)
	h.subscribers[id] = ch
	return id, ch
}

func (h *snapshotHub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(ch)
	}
}

// Publish delivers the snapshot to every live subscriber without blocking
// the broadcast cycle. A subscriber with a full buffer is skipped.
func (h *snapshotHub) Publish(snapshot *model.StatusSnapshot) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subscribers {
		select {
		case ch <- snapshot:
		default:
			h.logger.Warn("subscriber too slow, dropping snapshot", zap.String("subscriber_id", id))
		}
	}
}

func (h *snapshotHub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

func NewHub(logger *zap.Logger) Hub {
	return &snapshotHub{
		subscribers: make(map[string]chan *model.StatusSnapshot),
		logger:      logger,
	}
}
