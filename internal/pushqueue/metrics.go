package pushqueue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tipatask",
		Subsystem: "pushqueue",
		Name:      "submissions_total",
		Help:      "Jobs accepted into the push queue.",
	})

	queueFullTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tipatask",
		Subsystem: "pushqueue",
		Name:      "queue_full_total",
		Help:      "Submissions rejected because the queue stayed full.",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "tipatask",
		Subsystem: "pushqueue",
		Name:      "depth",
		Help:      "Jobs currently waiting in the queue.",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "tipatask",
		Subsystem: "pushqueue",
		Name:      "run_duration_seconds",
		Help:      "Job execution latency.",
	})
)
