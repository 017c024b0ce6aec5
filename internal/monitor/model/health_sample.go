package model

import "time"

type HealthSample struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ServerName    string    `gorm:"index:idx_samples_server_ts" json:"server_name"`
	Timestamp     time.Time `gorm:"index:idx_samples_server_ts;index:idx_samples_ts" json:"timestamp"`
	ProtocolKind  string    `json:"protocol_kind"`
	IsHealthy     bool      `json:"is_healthy"`
	LatencyMillis *int64    `json:"latency_ms"` // null iff IsHealthy is false
}

func (HealthSample) TableName() string {
	return "health_samples"
}
