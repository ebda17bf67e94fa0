package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// series ETL.
type Metrics struct {
	RowsParsed      prometheus.Counter
	RowsSkipped     prometheus.Counter
	YearsProcessed  prometheus.Counter
	PipelineRunning prometheus.Gauge

	// SyntheticFallbacks counts completeness-check failures by series.
	// labels: series={temperature,precipitation}
	SyntheticFallbacks *prometheus.CounterVec

	// Fetch metrics.
	FetchAttempts *prometheus.CounterVec // labels: source={primary,mirror}, outcome={success,error}

	RunDuration prometheus.Histogram
}

// NewMetrics creates and registers all ETL metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RowsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_etl",
			Name:      "rows_parsed_total",
			Help:      "Total raw station-day rows parsed from input files.",
		}),
		RowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_etl",
			Name:      "rows_skipped_total",
			Help:      "Total malformed raw rows skipped during parsing.",
		}),
		YearsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_etl",
			Name:      "years_processed_total",
			Help:      "Total station-years fully extracted and written.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_etl",
			Name:      "pipeline_running",
			Help:      "1 while the year loop is active, 0 otherwise.",
		}),
		SyntheticFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_etl",
			Name:      "synthetic_fallbacks_total",
			Help:      "Series replaced wholesale by synthetic data, by series kind.",
		}, []string{"series"}),
		FetchAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_etl",
			Name:      "fetch_attempts_total",
			Help:      "Raw file download attempts by source and outcome.",
		}, []string{"source", "outcome"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_etl",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete single-year extract-and-write run.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}

	prometheus.MustRegister(
		m.RowsParsed,
		m.RowsSkipped,
		m.YearsProcessed,
		m.PipelineRunning,
		m.SyntheticFallbacks,
		m.FetchAttempts,
		m.RunDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, so
// parallel tests don't hit "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RowsParsed:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_etl", Name: "rows_parsed_total"}),
		RowsSkipped:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_etl", Name: "rows_skipped_total"}),
		YearsProcessed:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_etl", Name: "years_processed_total"}),
		PipelineRunning:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "weather_etl", Name: "pipeline_running"}),
		SyntheticFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_etl", Name: "synthetic_fallbacks_total"}, []string{"series"}),
		FetchAttempts:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_etl", Name: "fetch_attempts_total"}, []string{"source", "outcome"}),
		RunDuration:        prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_etl", Name: "run_duration_seconds"}),
	}
}
