package response

import "time"

type HealthSampleResponse struct {
	ServerName    string    `json:"server_name"`
	Timestamp     time.Time `json:"timestamp"`
	ProtocolKind  string    `json:"protocol_kind"`
	IsHealthy     bool      `json:"is_healthy"`
	LatencyMillis *int64    `json:"latency_ms"`
}
