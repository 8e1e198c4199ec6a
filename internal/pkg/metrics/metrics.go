package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedBuildDuration latency of BuildPage by viewer kind
	FeedBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "viewy_feed_build_duration_seconds",
			Help:    "Duration of feed page assembly in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"viewer"},
	)

	// PaginationResetsTotal cursors no longer present in the live ordering
	PaginationResetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viewy_pagination_resets_total",
			Help: "Total number of pages that fell back to the first page because the cursor was stale",
		},
		[]string{"list"},
	)

	// EngagementEventsTotal favorites, views, reports and emotes
	EngagementEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viewy_engagement_events_total",
			Help: "Total number of engagement mutations by kind",
		},
		[]string{"kind"},
	)

	// PosterCacheTotal is-poster lookups by cache outcome
	PosterCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viewy_poster_cache_total",
			Help: "Total number of is-poster lookups by cache outcome",
		},
		[]string{"result"},
	)
)

func ObserveFeedBuild(anonymous bool, start time.Time) {
	viewer := "user"
	if anonymous {
		viewer = "anonymous"
	}
	FeedBuildDuration.WithLabelValues(viewer).Observe(time.Since(start).Seconds())
}

func RecordPaginationReset(list string) {
	PaginationResetsTotal.WithLabelValues(list).Inc()
}

func RecordEngagement(kind string) {
	EngagementEventsTotal.WithLabelValues(kind).Inc()
}

func RecordPosterCache(hit bool) {
	if hit {
		PosterCacheTotal.WithLabelValues("hit").Inc()
		return
	}
	PosterCacheTotal.WithLabelValues("miss").Inc()
}
