package model

import "time"

// HealthHourly summarizes one server over one completed hour. The unique
// index on (server_name, hour_start) is what the rollup upsert conflicts
// against, so re-running an hour converges instead of duplicating rows.
type HealthHourly struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	ServerName       string    `gorm:"uniqueIndex:ux_hourly_server_hour"`
	HourStart        time.Time `gorm:"uniqueIndex:ux_hourly_server_hour;index:idx_hourly_hour"`
	ProtocolKind     string
	SampleCount      int64
	HealthyCount     int64
	AvgLatencyMillis *float64 // latency stats are null when HealthyCount is 0
	MinLatencyMillis *int64
	MaxLatencyMillis *int64
	P95LatencyMillis *float64
}

func (HealthHourly) TableName() string {
	return "health_hourly"
}
