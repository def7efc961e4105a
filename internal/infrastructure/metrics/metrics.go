package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector provides application metrics collection. A nil *Collector is
// valid; every record helper is a no-op on it, which keeps metrics optional
// in tests and in the CLI commands.
type Collector struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Calendar metrics
	ConversionsTotal      *prometheus.CounterVec
	RangeResolutionsTotal *prometheus.CounterVec

	// Pricing metrics
	QuotesTotal prometheus.Counter
	QuoteTotals prometheus.Histogram

	// Cache metrics
	CacheOpsTotal *prometheus.CounterVec

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec

	// Auth metrics
	AuthAttemptsTotal *prometheus.CounterVec
}

// NewCollector creates a new metrics collector registered on reg. Passing a
// nil registerer uses the default Prometheus registry.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by path, method, and status",
			},
			[]string{"path", "method", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
			},
			[]string{"path"},
		),

		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calendar_conversions_total",
				Help:      "Total number of calendar conversions by direction",
			},
			[]string{"direction"},
		),

		RangeResolutionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calendar_range_resolutions_total",
				Help:      "Total number of range preset resolutions by preset",
			},
			[]string{"preset"},
		),

		QuotesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pricing_quotes_total",
				Help:      "Total number of sale price quotes",
			},
		),

		QuoteTotals: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "pricing_quote_total_toman",
				Help:      "Quoted sale totals in toman",
				Buckets:   []float64{1e6, 5e6, 1e7, 5e7, 1e8, 5e8, 1e9},
			},
		),

		CacheOpsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_operations_total",
				Help:      "Total number of cache operations by kind and result",
			},
			[]string{"kind", "result"},
		),

		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "db_query_duration_seconds",
				Help:      "Database query duration in seconds by query type",
				Buckets:   []float64{0.001, 0.002, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5},
			},
			[]string{"query_type"},
		),

		AuthAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_attempts_total",
				Help:      "Total number of terminal authentication attempts by result",
			},
			[]string{"result"},
		),
	}
}

// Timer provides timing functionality for operations
type Timer struct {
	start    time.Time
	observer prometheus.Observer
}

// NewTimer creates a new timer. A nil observer turns it into a plain
// stopwatch; ObserveDuration still returns the elapsed time.
func NewTimer(observer prometheus.Observer) *Timer {
	return &Timer{
		start:    time.Now(),
		observer: observer,
	}
}

// ObserveDuration records the elapsed time since timer creation
func (t *Timer) ObserveDuration() time.Duration {
	duration := time.Since(t.start)
	if t.observer != nil {
		t.observer.Observe(duration.Seconds())
	}
	return duration
}

// RecordHTTPRequest increments the HTTP request counter
func (c *Collector) RecordHTTPRequest(path, method, status string) {
	if c == nil {
		return
	}
	c.HTTPRequestsTotal.WithLabelValues(path, method, status).Inc()
}

// ObserveHTTPDuration records the duration of one HTTP request
func (c *Collector) ObserveHTTPDuration(path string, seconds float64) {
	if c == nil {
		return
	}
	c.HTTPRequestDuration.WithLabelValues(path).Observe(seconds)
}

// RecordConversion increments the conversion counter
func (c *Collector) RecordConversion(direction string) {
	if c == nil {
		return
	}
	c.ConversionsTotal.WithLabelValues(direction).Inc()
}

// RecordRangeResolution increments the preset resolution counter
func (c *Collector) RecordRangeResolution(preset string) {
	if c == nil {
		return
	}
	c.RangeResolutionsTotal.WithLabelValues(preset).Inc()
}

// RecordQuote records one priced quote and its total
func (c *Collector) RecordQuote(totalToman int64) {
	if c == nil {
		return
	}
	c.QuotesTotal.Inc()
	c.QuoteTotals.Observe(float64(totalToman))
}

// RecordCacheHit increments the cache hit counter for a key kind
func (c *Collector) RecordCacheHit(kind string) {
	if c == nil {
		return
	}
	c.CacheOpsTotal.WithLabelValues(kind, "hit").Inc()
}

// RecordCacheMiss increments the cache miss counter for a key kind
func (c *Collector) RecordCacheMiss(kind string) {
	if c == nil {
		return
	}
	c.CacheOpsTotal.WithLabelValues(kind, "miss").Inc()
}

// ObserveDBQuery records the duration of one database query
func (c *Collector) ObserveDBQuery(queryType string, seconds float64) {
	if c == nil {
		return
	}
	c.DBQueryDuration.WithLabelValues(queryType).Observe(seconds)
}

// RecordAuthAttempt increments the auth attempt counter
func (c *Collector) RecordAuthAttempt(result string) {
	if c == nil {
		return
	}
	c.AuthAttemptsTotal.WithLabelValues(result).Inc()
}
