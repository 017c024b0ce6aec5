package broadcast

import (
	"fleetwatch/internal/monitor/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSnapshot(healthy int) *model.StatusSnapshot {
	return &model.StatusSnapshot{
		TakenAt:        time.Now().UTC(),
		TotalServers:   healthy,
		HealthyServers: healthy,
	}
}

func TestHubDeliversToAllSubscribers(t *testing.T) {
	hub := NewHub(zap.NewNop())

	_, first := hub.Subscribe()
	_, second := hub.Subscribe()
	require.Equal(t, 2, hub.SubscriberCount())

	published := testSnapshot(3)
	hub.Publish(published)

	select {
	case got := <-first:
		assert.Same(t, published, got)
	case <-time.After(time.Second):
		t.Fatal("first subscriber did not receive the snapshot")
	}
	select {
	case got := <-second:
		assert.Same(t, published, got)
	case <-time.After(time.Second):
		t.Fatal("second subscriber did not receive the snapshot")
	}
}

func TestHubDropsForSlowSubscriber(t *testing.T) {
	hub := NewHub(zap.NewNop())

	_, slow := hub.Subscribe()

	// Overflow the subscriber buffer. Publish must never block the cycle.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer+5; i++ {
			hub.Publish(testSnapshot(i))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// The buffer holds the oldest snapshots; the overflow was dropped.
	received := 0
	for {
		select {
		case <-slow:
			received++
			continue
		default:
		}
		break
	}
	assert.Equal(t, subscriberBuffer, received)
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(zap.NewNop())

	id, ch := hub.Subscribe()
	hub.Unsubscribe(id)
	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-ch
	assert.False(t, open)

	// Unsubscribing twice and publishing afterwards must not panic.
	hub.Unsubscribe(id)
	hub.Publish(testSnapshot(1))
}

func TestHubNoReplayForLateSubscriber(t *testing.T) {
	hub := NewHub(zap.NewNop())

	hub.Publish(testSnapshot(1))

	_, late := hub.Subscribe()
	select {
	case snapshot := <-late:
		t.Fatalf("late subscriber must not receive replayed snapshots, got %+v", snapshot)
	case <-time.After(50 * time.Millisecond):
	}
}
