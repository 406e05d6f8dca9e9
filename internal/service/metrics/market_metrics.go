package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// SnapshotFetches counts per-symbol snapshot resolutions by outcome:
	// hit (served from cache), built (fresh upstream fetch), failed.
	SnapshotFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apexdesk",
			Subsystem: "market",
			Name:      "snapshot_fetches_total",
			Help:      "Snapshot resolutions by outcome",
		},
		[]string{"outcome"},
	)

	SnapshotBuildLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "apexdesk",
			Subsystem: "market",
			Name:      "snapshot_build_seconds",
			Help:      "Latency of building one snapshot from upstream",
			Buckets:   prometheus.DefBuckets,
		},
	)

	BriefingGenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apexdesk",
			Subsystem: "briefing",
			Name:      "generations_total",
			Help:      "Briefing generations by outcome (cached, generated, failed)",
		},
		[]string{"outcome"},
	)

	UpstreamFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apexdesk",
			Subsystem: "upstream",
			Name:      "fallbacks_total",
			Help:      "Times a service fell back to mock data",
		},
		[]string{"service"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			SnapshotFetches,
			SnapshotBuildLatency,
			BriefingGenerations,
			UpstreamFallbacks,
		)
	})
}
