// Package metrics exports range cache events as Prometheus metrics.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Observer implements rangecache.Observer on top of Prometheus collectors.
type Observer struct {
	Queries       *prometheus.CounterVec
	QueryLatency  *prometheus.HistogramVec
	Updates       prometheus.Counter
	UpdateLatency prometheus.Histogram
	Invalidations prometheus.Counter
	Evictions     prometheus.Counter
}

// NewObserver creates the collectors and registers them with reg.
// It panics if a collector with the same name is already registered.
func NewObserver(reg prometheus.Registerer, namespace string) *Observer {
	factory := promauto.With(reg)
	return &Observer{
		Queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "range_queries_total",
			Help:      "Range sum queries by cache result",
		}, []string{"result"}),
		QueryLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "range_query_duration_seconds",
			Help:      "Range sum query latency by cache result",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12),
		}, []string{"result"}),
		Updates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_total",
			Help:      "Element updates applied through the cache",
		}),
		UpdateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "update_duration_seconds",
			Help:      "Update latency including the invalidation scan",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12),
		}),
		Invalidations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalidations_total",
			Help:      "Cached ranges dropped because an update touched them",
		}),
		Evictions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evictions_total",
			Help:      "Cached ranges dropped to stay within capacity",
		}),
	}
}

// RecordQuery implements rangecache.Observer.
func (o *Observer) RecordQuery(hit bool, duration time.Duration) {
	result := "miss"
	if hit {
		result = "hit"
	}
	o.Queries.WithLabelValues(result).Inc()
	o.QueryLatency.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordUpdate implements rangecache.Observer.
func (o *Observer) RecordUpdate(invalidated int, duration time.Duration) {
	o.Updates.Inc()
	o.Invalidations.Add(float64(invalidated))
	o.UpdateLatency.Observe(duration.Seconds())
}

// RecordEviction implements rangecache.Observer.
func (o *Observer) RecordEviction() {
	o.Evictions.Inc()
}

// WriteText gathers g and writes every metric family in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
