package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const prefix = "hostelhub"

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Workflow metrics
	VotesSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_votes_submitted_total",
			Help: "Total number of vote rows written",
		},
	)

	VoteBatchesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_vote_batches_rejected_total",
			Help: "Vote batches rejected, by reason",
		},
		[]string{"reason"},
	)

	VotingWindowEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_voting_window_events_total",
			Help: "Voting window transitions",
		},
		[]string{"event"},
	)

	MenusGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_menus_generated_total",
			Help: "Total number of draft menus generated",
		},
	)

	MenusPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_menus_published_total",
			Help: "Total number of menus published",
		},
	)

	MenuCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_menu_cache_lookups_total",
			Help: "Published menu cache lookups, by result",
		},
		[]string{"result"},
	)

	RecomputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_recommendation_recompute_duration_seconds",
			Help:    "Duration of recommendation recomputes in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// ObserveSince records the seconds elapsed since start on h.
func ObserveSince(h prometheus.Observer, start time.Time) {
	h.Observe(time.Since(start).Seconds())
}
