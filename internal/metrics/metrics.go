// Package metrics exposes traversal activity as Prometheus metrics. A
// Collector is an explore.Observer, so wiring it into an Explorer is enough
// to record every visit.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vk/mazewalk/internal/explore"
)

// Collector holds the traversal metrics on its own registry, so several
// collectors can coexist in one process (and in parallel tests).
type Collector struct {
	VisitsTotal     *prometheus.CounterVec
	StepsTotal      *prometheus.CounterVec
	TraversalsTotal *prometheus.CounterVec
	QueueDepth      prometheus.Gauge
	TraceLength     *prometheus.HistogramVec

	registry *prometheus.Registry
}

var _ explore.Observer = (*Collector)(nil)

// New creates a collector with every metric registered.
func New() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		VisitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mazewalk_visits_total",
				Help: "Total number of node visits, by node kind and visit outcome",
			},
			[]string{"kind", "outcome"},
		),
		StepsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mazewalk_steps_total",
				Help: "Total number of work-queue steps, by strategy",
			},
			[]string{"strategy"},
		),
		TraversalsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mazewalk_traversals_total",
				Help: "Total number of finished traversals, by strategy and status",
			},
			[]string{"strategy", "status"},
		),
		QueueDepth: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "mazewalk_queue_depth",
				Help: "Pending-list length after the most recent work-queue step",
			},
		),
		TraceLength: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mazewalk_trace_length",
				Help:    "Number of labels emitted per traversal",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 500, 1000},
			},
			[]string{"strategy"},
		),
		registry: reg,
	}
}

func (c *Collector) Visit(_ context.Context, ev explore.Event) {
	c.VisitsTotal.WithLabelValues(ev.Kind.String(), ev.Outcome.String()).Inc()
	if ev.Strategy.Queued() {
		c.StepsTotal.WithLabelValues(string(ev.Strategy)).Inc()
		c.QueueDepth.Set(float64(ev.Pending))
	}
}

func (c *Collector) Done(_ context.Context, s explore.Summary) {
	status := "ok"
	if s.Err != nil {
		status = "error"
	}
	c.TraversalsTotal.WithLabelValues(string(s.Strategy), status).Inc()
	c.TraceLength.WithLabelValues(string(s.Strategy)).Observe(float64(s.Visits))
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
