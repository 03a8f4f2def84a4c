package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	prepareDuration prom.Histogram
	runOutcome      *prom.CounterVec
	pages           prom.Counter
	images          prom.Counter
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		prepareDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "wikibuilder",
			Name:      "prepare_duration_seconds",
			Help:      "Total duration of wiki preparation runs",
			Buckets:   prom.DefBuckets,
		}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "wikibuilder",
			Name:      "run_outcomes_total",
			Help:      "Preparation run outcomes by final status",
		}, []string{"outcome"}),
		pages: prom.NewCounter(prom.CounterOpts{
			Namespace: "wikibuilder",
			Name:      "pages_written_total",
			Help:      "Wiki pages written across all runs",
		}),
		images: prom.NewCounter(prom.CounterOpts{
			Namespace: "wikibuilder",
			Name:      "images_copied_total",
			Help:      "Wiki images copied across all runs",
		}),
	}
	reg.MustRegister(pr.prepareDuration, pr.runOutcome, pr.pages, pr.images)
	return pr
}

func (pr *PrometheusRecorder) ObservePrepareDuration(d time.Duration) {
	pr.prepareDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncRunOutcome(outcome string) {
	pr.runOutcome.WithLabelValues(outcome).Inc()
}

func (pr *PrometheusRecorder) AddPages(n int) {
	pr.pages.Add(float64(n))
}

func (pr *PrometheusRecorder) AddImages(n int) {
	pr.images.Add(float64(n))
}

// HTTPHandler returns an http.Handler serving Prometheus metrics for reg.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
