package overview

import "github.com/prometheus/client_golang/prometheus"

// Collectors are the Prometheus metrics of this package. They are registered
// by the router together with the HTTP metrics.
var Collectors = []prometheus.Collector{
	refreshCount,
	refreshCoalescedCount,
	refreshDuration,
}

var refreshCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "overview_refreshes_total",
		Help: "How many overview computations finished, partitioned by result.",
	},
	[]string{"result"},
)

var refreshCoalescedCount = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "overview_refreshes_coalesced_total",
		Help: "How many overview refresh requests joined a computation that was already in flight.",
	},
)

var refreshDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name: "overview_refresh_duration_seconds",
		Help: "The duration of overview computations in seconds.",
	},
)
