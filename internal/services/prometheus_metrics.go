package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	templatesMaterialized *prometheus.CounterVec
	templatesDeactivated  prometheus.Counter
	schedulerPassDuration prometheus.Histogram
	dueTemplatesGauge     prometheus.Gauge
	suggestionRuns        *prometheus.CounterVec
	suggestionDuration    prometheus.Histogram
	suggestionsFound      prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		templatesMaterialized: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "template_materializations_total",
				Help: "Total number of template materializations by outcome",
			},
			[]string{"status"},
		),
		templatesDeactivated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "templates_deactivated_total",
				Help: "Total number of templates deactivated after reaching their end date",
			},
		),
		schedulerPassDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "scheduler_pass_duration_milliseconds",
				Help:    "Duration of a full scheduler pass in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		dueTemplatesGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "scheduler_due_templates",
				Help: "Number of due templates seen by the last scheduler pass",
			},
		),
		suggestionRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "suggestion_runs_total",
				Help: "Total number of recurrence detector runs by outcome",
			},
			[]string{"status"},
		),
		suggestionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "suggestion_run_duration_milliseconds",
				Help:    "Duration of a recurrence detector run in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		suggestionsFound: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "suggestions_found",
				Help:    "Number of suggestions produced per detector run",
				Buckets: prometheus.LinearBuckets(0, 5, 10),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "scheduler.template.materialized":
		m.templatesMaterialized.WithLabelValues("success").Inc()
	case "scheduler.template.failed":
		m.templatesMaterialized.WithLabelValues("failed_" + tags["reason"]).Inc()
	case "scheduler.template.deactivated":
		m.templatesDeactivated.Inc()
	case "detector.run.success":
		m.suggestionRuns.WithLabelValues("success").Inc()
	case "detector.run.failed":
		m.suggestionRuns.WithLabelValues("failed").Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "scheduler.pass":
		m.schedulerPassDuration.Observe(float64(duration.Milliseconds()))
	case "detector.run":
		m.suggestionDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "scheduler.due_templates":
		m.dueTemplatesGauge.Set(value)
	case "detector.suggestions":
		m.suggestionsFound.Observe(value)
	}
}

// NoopMetrics is a metrics recorder that discards everything; used in tests
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (m *NoopMetrics) IncrementCounter(name string, tags map[string]string) {}

func (m *NoopMetrics) RecordProcessingTime(name string, duration time.Duration) {}

func (m *NoopMetrics) RecordGauge(name string, value float64, tags map[string]string) {}
