// SPDX-License-Identifier: MIT
package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/fourcolor/coloring"
	"github.com/katalvlaran/fourcolor/planarity"
)

// Namespace prefixes every metric name.
const Namespace = "fourcolor"

// Collector holds the Prometheus metrics of this process. Each Collector
// owns its registry, so tests can create as many as they like.
type Collector struct {
	registry *prometheus.Registry

	// Search metrics
	Searches         *prometheus.CounterVec
	SearchNodes      prometheus.Counter
	SearchBacktracks prometheus.Counter
	SearchDuration   prometheus.Histogram
	GraphVertices    prometheus.Histogram

	// Planarity metrics
	PlanarityRejections prometheus.Counter
	PlanarityChecks     *prometheus.CounterVec

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// NewCollector creates and registers all metrics on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "searches_total",
				Help:      "Coloring searches by strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		SearchNodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "search_nodes_total",
			Help:      "Candidate (vertex, color) pairs examined",
		}),
		SearchBacktracks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "search_backtracks_total",
			Help:      "Assignments reverted after a failed subtree",
		}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of coloring searches",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		GraphVertices: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "graph_vertices",
			Help:      "Vertex count of searched graphs",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		PlanarityRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "planarity_rejections_total",
			Help:      "Graphs refused by the planarity gate",
		}),
		PlanarityChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "planarity_checks_total",
				Help:      "Standalone planarity checks by verdict",
			},
			[]string{"verdict"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	c.registry.MustRegister(
		c.Searches,
		c.SearchNodes,
		c.SearchBacktracks,
		c.SearchDuration,
		c.GraphVertices,
		c.PlanarityRejections,
		c.PlanarityChecks,
		c.HTTPRequests,
		c.HTTPDuration,
	)

	return c
}

// ObserveSearch implements coloring.Observer.
func (c *Collector) ObserveSearch(r coloring.SearchReport) {
	c.Searches.WithLabelValues(r.Strategy.String(), string(r.Outcome)).Inc()
	c.SearchNodes.Add(float64(r.Stats.Nodes))
	c.SearchBacktracks.Add(float64(r.Stats.Backtracks))
	c.SearchDuration.Observe(r.Elapsed.Seconds())
	c.GraphVertices.Observe(float64(r.Vertices))
}

// ObservePlanarity counts a gate rejection; MaybePlanar reports are ignored.
func (c *Collector) ObservePlanarity(r planarity.Report) {
	if r.Verdict == planarity.NonPlanar {
		c.PlanarityRejections.Inc()
	}
}

// ObservePlanarityCheck counts a planarity query made outside the gate.
func (c *Collector) ObservePlanarityCheck(r planarity.Report) {
	c.PlanarityChecks.WithLabelValues(r.Verdict.String()).Inc()
}

// ObserveHTTP records one finished request.
func (c *Collector) ObserveHTTP(method, route string, status int, d time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Registry exposes the underlying registry, e.g. for testutil.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// WriteTextfile writes the current values to path in the node-exporter
// textfile format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("WriteTextfile: %w", err)
	}

	return nil
}

var _ coloring.Observer = (*Collector)(nil)
