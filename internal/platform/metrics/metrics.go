package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	LidmateGeskep         prometheus.Counter
	LidmateVerwyder       prometheus.Counter
	ToewysingsSuksesvol   prometheus.Counter
	ToewysingsMisluk      prometheus.Counter
	KennisgewingsGestuur  prometheus.Counter
	OuditSkryfMisluk      prometheus.Counter
	RequestDuration       *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		LidmateGeskep: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gemeentenet_lidmate_geskep_total",
			Help: "Total number of members created.",
		}),
		LidmateVerwyder: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gemeentenet_lidmate_verwyder_total",
			Help: "Total number of members deleted.",
		}),
		ToewysingsSuksesvol: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gemeentenet_toewysings_suksesvol_total",
			Help: "Per-member assignment updates that succeeded.",
		}),
		ToewysingsMisluk: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gemeentenet_toewysings_misluk_total",
			Help: "Per-member assignment updates that failed.",
		}),
		KennisgewingsGestuur: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gemeentenet_kennisgewings_gestuur_total",
			Help: "Push notifications handed to the gateway.",
		}),
		OuditSkryfMisluk: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gemeentenet_oudit_skryf_misluk_total",
			Help: "Audit log writes that failed (best-effort, swallowed).",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gemeentenet_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}
