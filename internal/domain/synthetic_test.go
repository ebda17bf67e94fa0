package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticTemperature(t *testing.T) {
	series := SyntheticTemperature(1980)

	t.Run("one max and one min per simplified day", func(t *testing.T) {
		require.Len(t, series, 2*SimplifiedYearDays)
		for i := 0; i < len(series); i += 2 {
			assert.Equal(t, TempMax, series[i].Kind)
			assert.Equal(t, TempMin, series[i+1].Kind)
			assert.Equal(t, series[i].Date, series[i+1].Date)
			assert.LessOrEqual(t, series[i].Date.Day(), SimplifiedDaysPerMonth)
		}
	})

	t.Run("values stay inside seasonal bands", func(t *testing.T) {
		for i := 0; i < len(series); i += 2 {
			band := tempBands[seasonOf(series[i].Date.Month())]
			maxF, minF := series[i].Fahrenheit, series[i+1].Fahrenheit
			assert.GreaterOrEqual(t, maxF, float64(band.maxLo))
			assert.LessOrEqual(t, maxF, float64(band.maxHi))
			assert.GreaterOrEqual(t, minF, float64(band.minLo))
			// Clamping can only pull min downward, so the band's upper
			// bound still holds.
			assert.LessOrEqual(t, minF, float64(band.minHi))
		}
	})

	t.Run("min never exceeds max", func(t *testing.T) {
		for i := 0; i < len(series); i += 2 {
			assert.LessOrEqual(t, series[i+1].Fahrenheit, series[i].Fahrenheit,
				"day %s", series[i].Date.Format("2006-01-02"))
		}
	})

	t.Run("deterministic per year", func(t *testing.T) {
		assert.Empty(t, cmp.Diff(series, SyntheticTemperature(1980)))
	})

	t.Run("different years differ", func(t *testing.T) {
		assert.NotEmpty(t, cmp.Diff(series, SyntheticTemperature(1981)))
	})
}

func TestSyntheticPrecipitation(t *testing.T) {
	series := SyntheticPrecipitation(1980)

	require.Len(t, series, SimplifiedYearDays)
	for _, r := range series {
		assert.GreaterOrEqual(t, r.Inches, 0.0)
		assert.Less(t, r.Inches, 0.5)
		// Two-decimal precision: value is a multiple of 0.01.
		cents := r.Inches * 100
		assert.InDelta(t, float64(int(cents+0.5)), cents, 1e-9)
	}

	assert.Empty(t, cmp.Diff(series, SyntheticPrecipitation(1980)))
}

func TestSyntheticHumidity(t *testing.T) {
	series := SyntheticHumidity(1980)

	require.Len(t, series, SimplifiedYearDays)
	for _, r := range series {
		band := humidityBands[seasonOf(r.Date.Month())]
		assert.GreaterOrEqual(t, r.Percent, band[0])
		assert.LessOrEqual(t, r.Percent, band[1])
		assert.GreaterOrEqual(t, r.Percent, 0)
		assert.LessOrEqual(t, r.Percent, 100)
	}

	assert.Empty(t, cmp.Diff(series, SyntheticHumidity(1980)))
}

func TestSeasonOf(t *testing.T) {
	tests := []struct {
		month time.Month
		want  season
	}{
		{time.January, seasonWinter},
		{time.February, seasonWinter},
		{time.March, seasonShoulder},
		{time.May, seasonShoulder},
		{time.June, seasonSummer},
		{time.August, seasonSummer},
		{time.September, seasonShoulder},
		{time.November, seasonShoulder},
		{time.December, seasonWinter},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, seasonOf(tt.month))
		})
	}
}
