// Package metrics provides Prometheus metrics for the hoopscout calculators.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeEmpty   = "empty"
	OutcomeFailed  = "failed"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Calculator metrics
	calculations        *prometheus.CounterVec
	calculationLatency  *prometheus.HistogramVec
	reportFieldsDropped prometheus.Counter
	reportParseFailures prometheus.Counter

	// Batch metrics
	batchQueueSize prometheus.Gauge
	batchJobs      *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "hoopscout",
		subsystem:        "",
		histogramBuckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
		Buckets:     buckets,
	}
}

// initializeMetrics creates all the Prometheus metrics on the configured registry.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.calculations = auto.NewCounterVec(
		m.counterOpts("calculations_total", "Total number of calculations by calculator and outcome"),
		[]string{"calculator", "outcome"},
	)

	m.calculationLatency = auto.NewHistogramVec(
		m.histogramOpts("calculation_latency_milliseconds", "Calculation latency in milliseconds", m.histogramBuckets),
		[]string{"calculator"},
	)

	m.reportFieldsDropped = auto.NewCounter(
		m.counterOpts("report_fields_dropped_total", "Recognized report fields whose value was not a valid number"),
	)

	m.reportParseFailures = auto.NewCounter(
		m.counterOpts("report_parse_failures_total", "Reports rejected for having too few lines"),
	)

	m.batchQueueSize = auto.NewGauge(m.gaugeOpts("batch_queue_size", "Reports waiting in the batch queue"))

	m.batchJobs = auto.NewCounterVec(
		m.counterOpts("batch_jobs_total", "Batch report jobs by outcome"),
		[]string{"outcome"},
	)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint"),
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))

	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))

	m.systemGCPauseTime = auto.NewHistogram(
		m.histogramOpts("system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
			[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}),
	)
}

// RecordCalculation counts one calculation with its outcome and latency.
func (m *Manager) RecordCalculation(calculator, outcome string, latencyMs float64) {
	m.calculations.WithLabelValues(calculator, outcome).Inc()
	m.calculationLatency.WithLabelValues(calculator).Observe(latencyMs)
}

// RecordReportFieldsDropped adds n dropped report fields.
func (m *Manager) RecordReportFieldsDropped(n int) {
	if n > 0 {
		m.reportFieldsDropped.Add(float64(n))
	}
}

// RecordReportParseFailure counts a report that could not be parsed.
func (m *Manager) RecordReportParseFailure() {
	m.reportParseFailures.Inc()
}

// RecordCalculation counts one calculation on the global manager.
func RecordCalculation(calculator, outcome string, latencyMs float64) {
	globalManager.RecordCalculation(calculator, outcome, latencyMs)
}

// RecordReportFieldsDropped adds n dropped report fields on the global manager.
func RecordReportFieldsDropped(n int) {
	globalManager.RecordReportFieldsDropped(n)
}

// RecordReportParseFailure counts a report parse failure on the global manager.
func RecordReportParseFailure() {
	globalManager.RecordReportParseFailure()
}

// UpdateBatchQueueSize sets the number of queued batch reports.
func UpdateBatchQueueSize(n int) {
	globalManager.batchQueueSize.Set(float64(n))
}

// RecordBatchJob counts one finished batch job.
func RecordBatchJob(outcome string) {
	globalManager.batchJobs.WithLabelValues(outcome).Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
