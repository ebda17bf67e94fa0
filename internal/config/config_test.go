package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "USW00094728", cfg.StationID)
		assert.Equal(t, "data", cfg.DataDir)
		assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
		assert.Equal(t, 2*time.Second, cfg.FetchRetryDelay)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Contains(t, cfg.PrimaryURL, "{station}")
		assert.Contains(t, cfg.MirrorURL, "{station}")
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("STATION_ID", "USW00000001")
		t.Setenv("DATA_DIR", "/var/weather")
		t.Setenv("FETCH_TIMEOUT", "5s")
		t.Setenv("LOG_FORMAT", "text")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "USW00000001", cfg.StationID)
		assert.Equal(t, "/var/weather", cfg.DataDir)
		assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("invalid fetch timeout", func(t *testing.T) {
		t.Setenv("FETCH_TIMEOUT", "soon")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "FETCH_TIMEOUT")
	})

	t.Run("url template missing station placeholder", func(t *testing.T) {
		t.Setenv("NOAA_PRIMARY_URL", "https://example.com/fixed.csv")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "{station}")
	})
}

func TestOptionsYears(t *testing.T) {
	t.Run("single year default", func(t *testing.T) {
		opts := Options{Year: 1980}

		years, err := opts.Years()

		require.NoError(t, err)
		assert.Equal(t, []int{1980}, years)
	})

	t.Run("year list overrides", func(t *testing.T) {
		opts := Options{Year: 1980, YearList: "1978, 1979,1980"}

		years, err := opts.Years()

		require.NoError(t, err)
		assert.Equal(t, []int{1978, 1979, 1980}, years)
	})

	t.Run("bad year in list", func(t *testing.T) {
		opts := Options{YearList: "1978,MCMLXXX"}

		_, err := opts.Years()
		require.Error(t, err)
	})
}
