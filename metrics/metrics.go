// Package metrics instruments the simulation core with Prometheus
// counters and histograms, grounded on
// subculture-collective-reddit-cluster-map/backend/internal/metrics:
// package-level promauto collectors, registered on import and
// observed from the hot path without any error-return plumbing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TicksTotal counts completed Simulation.Update calls.
	TicksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barneshut_ticks_total",
		Help: "Total number of simulation ticks completed.",
	})

	// TickDuration observes the wall-clock time of one Update call.
	TickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "barneshut_tick_duration_seconds",
		Help:    "Duration of a single simulation tick (cull+rebuild+query+integrate).",
		Buckets: prometheus.DefBuckets,
	})

	// BodiesCulledTotal counts bodies removed for drifting outside the
	// simulation extent.
	BodiesCulledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barneshut_bodies_culled_total",
		Help: "Total number of bodies culled for leaving the simulation extent.",
	})

	// TreeLeaves observes the number of External quadtree leaves built
	// on the most recent tick.
	TreeLeaves = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "barneshut_tree_leaves",
		Help: "Number of External quadtree leaves in the most recently built tree.",
	})

	// BodiesActive observes the number of bodies still in the
	// simulation after culling.
	BodiesActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "barneshut_bodies_active",
		Help: "Number of bodies remaining in the simulation after culling.",
	})
)
