package response

import "time"

type ServerStatusResponse struct {
	Name           string `json:"name"`
	ProtocolKind   string `json:"protocol_kind"`
	LifecycleState string `json:"lifecycle_state"`
	IsHealthy      bool   `json:"is_healthy"`
	LatencyMillis  *int64 `json:"latency_ms"`
	Message        string `json:"message,omitempty"`
}

type StatusSnapshotResponse struct {
	Servers        []ServerStatusResponse `json:"servers"`
	TakenAt        time.Time              `json:"taken_at"`
	TotalServers   int                    `json:"total_servers"`
	HealthyServers int                    `json:"healthy_servers"`
}
