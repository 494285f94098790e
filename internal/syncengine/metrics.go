package syncengine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pullsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tipatask",
			Subsystem: "sync",
			Name:      "pulls_total",
			Help:      "Pull attempts by outcome.",
		},
		[]string{"result"}, // changed | unchanged | error
	)

	pushesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tipatask",
		Subsystem: "sync",
		Name:      "pushes_total",
		Help:      "Snapshot documents successfully written to the remote.",
	})

	pushFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tipatask",
		Subsystem: "sync",
		Name:      "push_failures_total",
		Help:      "Pushes that gave up after their final attempt.",
	})
)
