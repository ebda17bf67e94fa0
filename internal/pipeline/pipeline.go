package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/jonboulle/clockwork"

	"github.com/nycwx/weather-series-etl/internal/domain"
	"github.com/nycwx/weather-series-etl/internal/observability"
)

// RawSource loads the raw observations for one station-year.
// A missing raw file surfaces as domain.ErrInputNotFound.
type RawSource interface {
	Load(ctx context.Context, stationID string, year int) ([]domain.Observation, error)
}

// SeriesWriter persists the three built series for a year. Writers must
// replace any prior output wholesale; the pipeline never appends.
type SeriesWriter interface {
	WriteSeries(ctx context.Context, series domain.YearSeries) error
}

// Pipeline runs the sequential extract-fallback-write flow for a fixed
// station. One run per year at a time: concurrent runs for the same
// year would race on the output files, and nothing here locks them.
type Pipeline struct {
	source    RawSource
	writer    SeriesWriter
	logger    *slog.Logger
	metrics   *observability.Metrics
	clock     clockwork.Clock
	stationID string
	ready     atomic.Bool
}

// New creates a Pipeline for the given station.
func New(source RawSource, writer SeriesWriter, logger *slog.Logger, metrics *observability.Metrics, stationID string) *Pipeline {
	return &Pipeline{
		source:    source,
		writer:    writer,
		logger:    logger,
		metrics:   metrics,
		clock:     clockwork.NewRealClock(),
		stationID: stationID,
	}
}

// SetClock swaps the time source used for run-duration measurement.
// Tests inject a fake clock; pass nil to reset to real time.
func (p *Pipeline) SetClock(c clockwork.Clock) {
	if c == nil {
		p.clock = clockwork.NewRealClock()
		return
	}
	p.clock = c
}

// CheckReadiness returns nil once at least one year has been fully
// written, or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no year has been processed yet")
	}
	return nil
}

// Run processes a single year: load raw observations, build the three
// series with per-series synthetic fallback, and write them out. All
// three series are built before anything is written, so a failed run
// leaves no partial output behind.
func (p *Pipeline) Run(ctx context.Context, year int) error {
	start := p.clock.Now()
	p.logger.Info("run started", "station", p.stationID, "year", year)

	obs, err := p.source.Load(ctx, p.stationID, year)
	if err != nil {
		return fmt.Errorf("load raw observations for %d: %w", year, err)
	}
	p.metrics.RowsParsed.Add(float64(len(obs)))

	series, err := domain.BuildYearSeries(obs, p.stationID, year)
	if err != nil {
		return fmt.Errorf("build series for %d: %w", year, err)
	}

	if series.TemperatureSynthetic {
		p.logger.Warn("temperature extraction incomplete, using synthetic series", "year", year)
		p.metrics.SyntheticFallbacks.WithLabelValues("temperature").Inc()
	}
	if series.PrecipitationSynthetic {
		p.logger.Warn("precipitation extraction empty, using synthetic series", "year", year)
		p.metrics.SyntheticFallbacks.WithLabelValues("precipitation").Inc()
	}

	if err := p.writer.WriteSeries(ctx, series); err != nil {
		return fmt.Errorf("write series for %d: %w", year, err)
	}

	p.metrics.YearsProcessed.Inc()
	p.metrics.RunDuration.Observe(p.clock.Since(start).Seconds())
	p.ready.Store(true)

	p.logger.Info("run complete",
		"year", year,
		"temperature_entries", len(series.Temperature),
		"temperature_synthetic", series.TemperatureSynthetic,
		"precipitation_entries", len(series.Precipitation),
		"precipitation_synthetic", series.PrecipitationSynthetic,
		"humidity_entries", len(series.Humidity),
	)
	return nil
}

// RunYears processes years in order, stopping at the first failure or
// on context cancellation between years.
func (p *Pipeline) RunYears(ctx context.Context, years []int) error {
	for _, year := range years {
		select {
		case <-ctx.Done():
			p.logger.Info("year loop stopping", "reason", ctx.Err())
			return ctx.Err()
		default:
		}
		if err := p.Run(ctx, year); err != nil {
			return err
		}
	}
	return nil
}
