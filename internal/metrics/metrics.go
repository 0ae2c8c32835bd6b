package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics represents the collection of search and benchmark metrics.
type Metrics struct {
	SearchesTotal *prometheus.CounterVec
	SearchErrors  *prometheus.CounterVec
	BenchmarkMean *prometheus.HistogramVec
	BrandListSize prometheus.Gauge
	LogRecords    prometheus.Gauge
	FetchDuration prometheus.Histogram
}

// NewMetrics creates all metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SearchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seqbench_searches_total",
				Help: "Total number of completed searches by outcome",
			},
			[]string{"outcome"}, // found, not_found
		),
		SearchErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seqbench_search_errors_total",
				Help: "Total number of rejected searches by error kind",
			},
			[]string{"kind"},
		),
		BenchmarkMean: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "seqbench_benchmark_mean_seconds",
				Help:    "Mean per-call duration measured for each strategy",
				Buckets: prometheus.ExponentialBuckets(1e-8, 4, 14),
			},
			[]string{"strategy"},
		),
		BrandListSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "seqbench_brand_list_size",
				Help: "Number of brands in the most recently fetched list",
			},
		),
		LogRecords: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "seqbench_log_records",
				Help: "Number of records in the session result log",
			},
		),
		FetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "seqbench_fetch_duration_seconds",
				Help:    "Duration of brand list fetches",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// ObserveSearch records a successful search.
func (m *Metrics) ObserveSearch(found bool, recursive, iterative float64, records int) {
	outcome := "not_found"
	if found {
		outcome = "found"
	}
	m.SearchesTotal.WithLabelValues(outcome).Inc()
	m.BenchmarkMean.WithLabelValues("recursive").Observe(recursive)
	m.BenchmarkMean.WithLabelValues("iterative").Observe(iterative)
	m.LogRecords.Set(float64(records))
}

// ObserveError records a rejected search.
func (m *Metrics) ObserveError(kind string) {
	if kind == "" {
		kind = "internal"
	}
	m.SearchErrors.WithLabelValues(kind).Inc()
}

// ObserveFetch records the size and duration of a fetch.
func (m *Metrics) ObserveFetch(size int, seconds float64) {
	m.BrandListSize.Set(float64(size))
	m.FetchDuration.Observe(seconds)
}
