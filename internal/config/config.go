package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	StationID string
	DataDir   string

	// URL templates for the raw download, expanded with {station} and
	// {year}. The mirror is tried once after the primary fails.
	PrimaryURL      string
	MirrorURL       string
	FetchTimeout    time.Duration
	FetchRetryDelay time.Duration

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	fetchTimeout, err := parseDuration("FETCH_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}

	retryDelay, err := parseDuration("FETCH_RETRY_DELAY", "2s")
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		StationID: envOrDefault("STATION_ID", "USW00094728"),
		DataDir:   envOrDefault("DATA_DIR", "data"),

		PrimaryURL: envOrDefault("NOAA_PRIMARY_URL",
			"https://www.ncei.noaa.gov/access/services/data/v1?dataset=daily-summaries&stations={station}&startDate={year}-01-01&endDate={year}-12-31&format=csv"),
		MirrorURL: envOrDefault("NOAA_MIRROR_URL",
			"https://www1.ncdc.noaa.gov/pub/data/ghcn/daily/by_station/{station}_{year}.csv"),
		FetchTimeout:    fetchTimeout,
		FetchRetryDelay: retryDelay,

		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.StationID == "" {
		return nil, errors.New("STATION_ID is required")
	}
	if cfg.DataDir == "" {
		return nil, errors.New("DATA_DIR is required")
	}
	for name, tmpl := range map[string]string{"NOAA_PRIMARY_URL": cfg.PrimaryURL, "NOAA_MIRROR_URL": cfg.MirrorURL} {
		if !strings.Contains(tmpl, "{station}") {
			return nil, fmt.Errorf("%s must contain a {station} placeholder", name)
		}
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	s := envOrDefault(key, fallback)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

// Options is the command-line surface. The year selects which
// station-year to process; everything else is orchestration plumbing.
type Options struct {
	Year           int    `long:"year" default:"1980" description:"Target year to process"`
	YearList       string `long:"years" default:"" description:"Optional comma separated list of years, overrides --year"`
	Offline        bool   `long:"offline" description:"Skip the download step and use existing raw files"`
	Serve          bool   `long:"serve" description:"Expose health and metrics endpoints while running"`
	ParallelRender bool   `long:"parallel-render" description:"Request the external renderer's parallel helper for the rendering step; no effect on extraction"`
}

// ParseArgs parses the command line into Options.
func ParseArgs() (*Options, error) {
	opts := Options{}
	if _, err := flags.Parse(&opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Years expands the options into the ordered list of years to process.
func (o *Options) Years() ([]int, error) {
	if o.YearList == "" {
		return []int{o.Year}, nil
	}
	parts := strings.Split(o.YearList, ",")
	years := make([]int, 0, len(parts))
	for _, p := range parts {
		y, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid year %q in --years", p)
		}
		years = append(years, y)
	}
	return years, nil
}
