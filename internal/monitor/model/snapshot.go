package model

import "time"

type ServerStatus struct {
	Name           string
	ProtocolKind   string
	LifecycleState string
	IsHealthy      bool
	LatencyMillis  *int64
	Message        string
}

// StatusSnapshot is immutable once assembled. The broadcaster replaces
// the cached snapshot wholesale instead of mutating it in place.
type StatusSnapshot struct {
	Servers        []ServerStatus
	TakenAt        time.Time
	TotalServers   int
	HealthyServers int
}
