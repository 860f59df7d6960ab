// Package metrics exposes counters for the transaction pipeline on a
// dedicated prometheus registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Recorder struct {
	registry *prometheus.Registry

	submissions       *prometheus.CounterVec
	polls             prometheus.Histogram
	readModelFailures *prometheus.CounterVec
}

func NewRecorder(namespace string) *Recorder {
	if namespace == "" {
		namespace = "crowdbridge"
	}

	r := &Recorder{
		registry: prometheus.NewRegistry(),
	}

	r.submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Broadcast transactions by contract method and final observed status",
		},
		[]string{"method", "status"},
	)

	r.polls = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "confirmation_polls",
			Help:      "Status polls needed before a submission settled or timed out",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 20},
		},
	)

	r.readModelFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "read_model_failures_total",
			Help:      "Read-only contract queries that degraded to zero",
		},
		[]string{"query"},
	)

	r.registry.MustRegister(
		r.submissions,
		r.polls,
		r.readModelFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

func (r *Recorder) ObserveSubmission(method string, status string, polls int) {
	r.submissions.WithLabelValues(method, status).Inc()
	r.polls.Observe(float64(polls))
}

func (r *Recorder) ReadModelFailure(query string) {
	r.readModelFailures.WithLabelValues(query).Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
