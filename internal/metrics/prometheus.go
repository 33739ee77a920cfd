package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds all Prometheus metrics
type Collector struct {
	registry *prometheus.Registry

	// Run metrics
	FilesTotal  *prometheus.CounterVec
	LinesTotal  *prometheus.CounterVec
	RunsActive  prometheus.Gauge
	RunDuration prometheus.Histogram

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewCollector creates a new metrics collector on its own registry
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		// Run metrics
		FilesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "delimfmt_files_total",
				Help: "Total number of input files by outcome",
			},
			[]string{"format", "status"},
		),
		LinesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "delimfmt_lines_total",
				Help: "Total number of input lines by result",
			},
			[]string{"format", "result"},
		),
		RunsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "delimfmt_runs_active",
				Help: "Number of runs currently in progress",
			},
		),
		RunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "delimfmt_run_duration_seconds",
				Help:    "Duration of runs in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms to ~16s
			},
		),

		// HTTP metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
			},
			[]string{"method", "path"},
		),
	}
}

// Registry returns the registry the collector's metrics live in
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordRunStarted records when a run starts
func (c *Collector) RecordRunStarted() {
	c.RunsActive.Inc()
}

// RecordRunCompleted records when a run completes
func (c *Collector) RecordRunCompleted(duration float64) {
	c.RunsActive.Dec()
	c.RunDuration.Observe(duration)
}

// RecordFile records the outcome of one input file
func (c *Collector) RecordFile(format, status string) {
	if format == "" {
		format = "none"
	}
	c.FilesTotal.WithLabelValues(format, status).Inc()
}

// RecordLines adds written and invalid line counts for a format
func (c *Collector) RecordLines(format string, written, invalid int) {
	if written > 0 {
		c.LinesTotal.WithLabelValues(format, "written").Add(float64(written))
	}
	if invalid > 0 {
		c.LinesTotal.WithLabelValues(format, "invalid").Add(float64(invalid))
	}
}

// RecordHTTPRequest records an HTTP request
func (c *Collector) RecordHTTPRequest(method, path, status string, duration float64) {
	c.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	c.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// WriteTextfile writes all metrics in the Prometheus text format to path,
// for pickup by node_exporter's textfile collector
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
