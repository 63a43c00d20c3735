package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "offer_landing"

//nolint:gochecknoglobals
var (
	DealLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deal_lookups_total",
		Help:      "Deal lookups by mode and outcome.",
	}, []string{"mode", "outcome"})

	CRMRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "crm_request_duration_seconds",
		Help:      "Duration of CRM calls by mode.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode"})

	AnalyticsEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_events_total",
		Help:      "Analytics events accepted by name and category.",
	}, []string{"name", "category"})

	AnalyticsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_events_dropped_total",
		Help:      "Analytics events that could not be delivered.",
	}, []string{"reason"})
)

//nolint:gochecknoglobals
var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route pattern, method and status.",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration by route pattern and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	HTTPPanics = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_panics_total",
		Help:      "Handler panics recovered by the server.",
	})

	TaskFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_failures_total",
		Help:      "Failed background task attempts by task type.",
	}, []string{"task_type"})
)
