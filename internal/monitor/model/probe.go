package model

type ProbeResult struct {
	ServerName    string
	IsReachable   bool
	LatencyMillis *int64 // set only when IsReachable is true
	Message       string
}
