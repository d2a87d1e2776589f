package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "qbench"
	subsystem        = "bench"
)

var (
	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Total number of benchmark runs by backend and status",
		},
		[]string{"backend", "status"},
	)

	executeSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "execute_seconds",
			Help:      "Wall-clock duration of adapter Execute calls",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 9),
		},
		[]string{"backend"},
	)
)
