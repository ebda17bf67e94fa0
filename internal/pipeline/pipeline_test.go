package pipeline_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nycwx/weather-series-etl/internal/domain"
	"github.com/nycwx/weather-series-etl/internal/observability"
	"github.com/nycwx/weather-series-etl/internal/pipeline"
)

const testStation = "USW00094728"

// --- mocks ---

type mockSource struct {
	obs map[int][]domain.Observation
	err error
}

func (m *mockSource) Load(_ context.Context, _ string, year int) ([]domain.Observation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.obs[year], nil
}

type mockWriter struct {
	written []domain.YearSeries
	err     error
}

func (m *mockWriter) WriteSeries(_ context.Context, series domain.YearSeries) error {
	if m.err != nil {
		return m.err
	}
	m.written = append(m.written, series)
	return nil
}

func intPtr(v int) *int { return &v }

func fullYearObs(year int) []domain.Observation {
	var obs []domain.Observation
	day := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == year {
		obs = append(obs, domain.Observation{
			StationID: testStation,
			Date:      day,
			TMax:      intPtr(100),
			TMin:      intPtr(0),
			Precip:    intPtr(25),
		})
		day = day.AddDate(0, 0, 1)
	}
	return obs
}

func newPipeline(src pipeline.RawSource, w pipeline.SeriesWriter) *pipeline.Pipeline {
	return pipeline.New(src, w, slog.Default(), observability.NewMetricsForTesting(), testStation)
}

// --- tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	src := &mockSource{obs: map[int][]domain.Observation{1980: fullYearObs(1980)}}
	w := &mockWriter{}
	p := newPipeline(src, w)
	p.SetClock(clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	err := p.Run(context.Background(), 1980)

	require.NoError(t, err)
	require.Len(t, w.written, 1)
	series := w.written[0]
	assert.Equal(t, 1980, series.Year)
	assert.False(t, series.TemperatureSynthetic)
	assert.False(t, series.PrecipitationSynthetic)
	assert.Len(t, series.Temperature, 2*366) // 1980 is a leap year
	assert.Len(t, series.Humidity, domain.SimplifiedYearDays)
}

func TestPipeline_Run_SyntheticFallback(t *testing.T) {
	// No raw rows at all: both checked series fall back.
	src := &mockSource{obs: map[int][]domain.Observation{}}
	w := &mockWriter{}
	p := newPipeline(src, w)

	err := p.Run(context.Background(), 2000)

	require.NoError(t, err)
	require.Len(t, w.written, 1)
	assert.True(t, w.written[0].TemperatureSynthetic)
	assert.True(t, w.written[0].PrecipitationSynthetic)
	assert.Len(t, w.written[0].Temperature, 2*domain.SimplifiedYearDays)
}

func TestPipeline_Run_InputNotFound(t *testing.T) {
	src := &mockSource{err: domain.ErrInputNotFound}
	w := &mockWriter{}
	p := newPipeline(src, w)

	err := p.Run(context.Background(), 1980)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInputNotFound)
	assert.Empty(t, w.written)
}

func TestPipeline_Run_WriterError(t *testing.T) {
	src := &mockSource{obs: map[int][]domain.Observation{1980: fullYearObs(1980)}}
	w := &mockWriter{err: errors.New("disk full")}
	p := newPipeline(src, w)

	err := p.Run(context.Background(), 1980)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestPipeline_Readiness(t *testing.T) {
	src := &mockSource{obs: map[int][]domain.Observation{1980: fullYearObs(1980)}}
	w := &mockWriter{}
	p := newPipeline(src, w)

	require.Error(t, p.CheckReadiness(context.Background()))

	require.NoError(t, p.Run(context.Background(), 1980))

	assert.NoError(t, p.CheckReadiness(context.Background()))
}

func TestPipeline_RunYears(t *testing.T) {
	t.Run("processes all years in order", func(t *testing.T) {
		src := &mockSource{obs: map[int][]domain.Observation{
			1979: fullYearObs(1979),
			1980: fullYearObs(1980),
		}}
		w := &mockWriter{}
		p := newPipeline(src, w)

		err := p.RunYears(context.Background(), []int{1979, 1980})

		require.NoError(t, err)
		require.Len(t, w.written, 2)
		assert.Equal(t, 1979, w.written[0].Year)
		assert.Equal(t, 1980, w.written[1].Year)
	})

	t.Run("stops on first failure", func(t *testing.T) {
		src := &mockSource{err: domain.ErrInputNotFound}
		w := &mockWriter{}
		p := newPipeline(src, w)

		err := p.RunYears(context.Background(), []int{1979, 1980})

		require.Error(t, err)
		assert.Empty(t, w.written)
	})

	t.Run("respects cancellation between years", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := newPipeline(&mockSource{}, &mockWriter{})

		err := p.RunYears(ctx, []int{1980})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
