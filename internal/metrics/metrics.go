package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "motorseed_"

// Entity outcomes recorded by the pipeline.
const (
	OutcomeCreated    = "created"
	OutcomeDuplicate  = "duplicate"
	OutcomeFailed     = "failed"
	OutcomeDiscovered = "discovered"
	OutcomeSkipped    = "skipped"
)

// Recorder holds the seeder's collectors on a private registry.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	entities    *prometheus.CounterVec
	stage       prometheus.Gauge
}

// New registers the seeder collectors.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		apiRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "api_requests_total",
				Help: "Remote API requests by method and status code",
			},
			[]string{"method", "status"},
		),
		apiLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "api_request_duration_seconds",
				Help:    "Remote API request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		entities: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "entities_total",
				Help: "Pipeline entities by kind and outcome",
			},
			[]string{"entity", "outcome"},
		),
		stage: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "pipeline_stage",
				Help: "Ordinal of the last pipeline state reached",
			},
		),
	}
	r.registry.MustRegister(r.apiRequests, r.apiLatency, r.entities, r.stage)
	return r
}

// ObserveRequest records one remote call. status 0 means a transport failure.
func (r *Recorder) ObserveRequest(method string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	code := strconv.Itoa(status)
	if status == 0 {
		code = "error"
	}
	r.apiRequests.WithLabelValues(method, code).Inc()
	r.apiLatency.WithLabelValues(method).Observe(elapsed.Seconds())
}

// AddEntities adds n entities of the given kind with the given outcome.
func (r *Recorder) AddEntities(entity, outcome string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.entities.WithLabelValues(entity, outcome).Add(float64(n))
}

// SetStage records the ordinal of the pipeline state reached.
func (r *Recorder) SetStage(ordinal int) {
	if r == nil {
		return
	}
	r.stage.Set(float64(ordinal))
}

// Gatherer exposes the registry, e.g. for tests or promhttp.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.registry
}

// WriteTextfile writes the collected metrics in the text exposition format,
// suitable for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
