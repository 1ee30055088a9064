package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "academy"

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status class.",
	}, []string{"method", "route", "status"})

	GenerationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_requests_total",
		Help:      "Outbound generation calls by kind and outcome.",
	}, []string{"kind", "outcome"})

	GenerationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Latency of outbound generation calls.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 80},
	}, []string{"kind"})

	HandoffOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "handoff_operations_total",
		Help:      "Draft handoff writes and reads; hit=false means the slot was empty.",
	}, []string{"channel", "op", "hit"})

	ShowcaseWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "showcase_writes_total",
		Help:      "Project collection mutations by kind.",
	}, []string{"kind"})
)
