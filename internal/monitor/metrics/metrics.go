package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Broadcast cycle metrics
	BroadcastCyclesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleetwatch_broadcast_cycles_total",
			Help: "Total number of broadcast cycles by outcome",
		},
		[]string{"outcome"},
	)

	BroadcastCycleDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fleetwatch_broadcast_cycle_duration_seconds",
			Help:    "Wall-clock duration of one discover-probe-publish cycle",
			Buckets: prometheus.DefBuckets,
		},
	)

	ServersTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fleetwatch_servers_total",
			Help: "Number of servers in the latest snapshot",
		},
	)

	ServersHealthy = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fleetwatch_servers_healthy",
			Help: "Number of healthy servers in the latest snapshot",
		},
	)

	ProbeFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleetwatch_probe_failures_total",
			Help: "Total number of failed probes by reason",
		},
		[]string{"reason"},
	)

	// Store metrics
	SampleWriteFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fleetwatch_sample_write_failures_total",
			Help: "Total number of health samples that failed to persist",
		},
	)

	// Background task metrics
	RollupRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleetwatch_rollup_runs_total",
			Help: "Total number of rollup generator runs by outcome",
		},
		[]string{"outcome"},
	)

	ReapedRowsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleetwatch_reaped_rows_total",
			Help: "Total number of rows removed by the retention reaper by table",
		},
		[]string{"table"},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(BroadcastCyclesTotal)
	prometheus.MustRegister(BroadcastCycleDuration)
	prometheus.MustRegister(ServersTotal)
	prometheus.MustRegister(ServersHealthy)
	prometheus.MustRegister(ProbeFailuresTotal)
	prometheus.MustRegister(SampleWriteFailuresTotal)
	prometheus.MustRegister(RollupRunsTotal)
	prometheus.MustRegister(ReapedRowsTotal)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
