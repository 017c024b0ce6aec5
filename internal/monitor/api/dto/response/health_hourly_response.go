package response

import "time"

type HealthHourlyResponse struct {
	ServerName       string    `json:"server_name"`
	HourStart        time.Time `json:"hour_start"`
	ProtocolKind     string    `json:"protocol_kind"`
	SampleCount      int64     `json:"sample_count"`
	HealthyCount     int64     `json:"healthy_count"`
	AvgLatencyMillis *float64  `json:"avg_latency_ms"`
	MinLatencyMillis *int64    `json:"min_latency_ms"`
	MaxLatencyMillis *int64    `json:"max_latency_ms"`
	P95LatencyMillis *float64  `json:"p95_latency_ms"`
}
