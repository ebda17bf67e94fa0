// Command etl extracts the three chart series (temperature,
// precipitation, humidity) for a station-year from a raw GHCN-Daily
// file, downloading the file first when it is missing.
//
// Usage:
//
//	etl --year 1980
//	etl --years 1978,1979,1980 --serve
//	etl --year 1980 --offline --parallel-render
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goflags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/nycwx/weather-series-etl/internal/adapter/file"
	"github.com/nycwx/weather-series-etl/internal/adapter/httpadapter"
	"github.com/nycwx/weather-series-etl/internal/adapter/noaa"
	"github.com/nycwx/weather-series-etl/internal/config"
	"github.com/nycwx/weather-series-etl/internal/observability"
	"github.com/nycwx/weather-series-etl/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	opts, err := config.ParseArgs()
	if err != nil {
		var flagsErr *goflags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == goflags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	years, err := opts.Years()
	if err != nil {
		logger.Error("invalid year selection", "error", err)
		os.Exit(1)
	}

	fetcher := noaa.NewClient(cfg.PrimaryURL, cfg.MirrorURL, cfg.FetchTimeout, cfg.FetchRetryDelay, logger, metrics)
	source := file.NewSource(cfg.DataDir, logger, metrics)
	writer := file.NewWriter(cfg.DataDir, logger)
	p := pipeline.New(source, writer, logger, metrics, cfg.StationID)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var srv *httpadapter.Server
	if opts.Serve {
		srv = httpadapter.NewServer(cfg.HTTPAddr, p, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
	}

	// The flag only travels onward to the render step; extraction is
	// single-threaded either way.
	if opts.ParallelRender {
		logger.Info("parallel render helper requested for downstream renderer")
	}

	metrics.PipelineRunning.Set(1)
	exitCode := 0
	for _, year := range years {
		if ctx.Err() != nil {
			logger.Info("stopping before remaining years", "reason", ctx.Err())
			break
		}
		if err := fetchIfMissing(ctx, fetcher, cfg, opts.Offline, year, logger); err != nil {
			logger.Warn("download failed, proceeding with any existing raw file", "year", year, "error", err)
		}
		if err := p.Run(ctx, year); err != nil {
			logger.Error("run failed", "year", year, "error", err)
			exitCode = 1
			break
		}
	}
	metrics.PipelineRunning.Set(0)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}
	}

	os.Exit(exitCode)
}

// fetchIfMissing downloads the raw file unless it already exists or the
// run is offline. Download failure is not fatal here: the pipeline's
// own input check reports the authoritative error.
func fetchIfMissing(ctx context.Context, fetcher *noaa.Client, cfg *config.Config, offline bool, year int, logger *slog.Logger) error {
	dest := file.RawPath(cfg.DataDir, cfg.StationID, year)
	if _, err := os.Stat(dest); err == nil {
		logger.Debug("raw file already present, skipping download", "file", dest)
		return nil
	}
	if offline {
		logger.Debug("offline mode, skipping download", "file", dest)
		return nil
	}
	return fetcher.Fetch(ctx, cfg.StationID, year, dest)
}
