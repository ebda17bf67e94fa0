// Package noaa downloads raw GHCN-Daily station files. The download is
// best-effort glue in front of the extractor: a primary URL, one mirror,
// and nothing else — if both fail the extractor decides what that means.
package noaa

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/nycwx/weather-series-etl/internal/observability"
)

// Client fetches a station-year CSV, trying the primary URL and then
// the mirror.
type Client struct {
	primaryURL string
	mirrorURL  string
	httpClient *http.Client
	clock      clockwork.Clock
	retryDelay time.Duration
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a fetch client. URL templates use {station} and
// {year} placeholders.
func NewClient(primaryURL, mirrorURL string, timeout, retryDelay time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		primaryURL: primaryURL,
		mirrorURL:  mirrorURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		clock:      clockwork.NewRealClock(),
		retryDelay: retryDelay,
		logger:     logger,
		metrics:    metrics,
	}
}

// SetClock swaps the time source used for the inter-attempt delay.
// Tests inject a fake clock; pass nil to reset to real time.
func (c *Client) SetClock(clk clockwork.Clock) {
	if clk == nil {
		c.clock = clockwork.NewRealClock()
		return
	}
	c.clock = clk
}

// Fetch downloads the raw file for a station-year to destPath, trying
// the primary URL first and the mirror after a short delay. The file is
// written via temp-and-rename only on a successful download, so a
// failed fetch never clobbers an existing raw file.
func (c *Client) Fetch(ctx context.Context, stationID string, year int, destPath string) error {
	sources := []struct {
		name string
		url  string
	}{
		{"primary", expandURL(c.primaryURL, stationID, year)},
		{"mirror", expandURL(c.mirrorURL, stationID, year)},
	}

	var lastErr error
	for i, src := range sources {
		if i > 0 {
			c.clock.Sleep(c.retryDelay)
		}
		if err := c.fetchOne(ctx, src.url, destPath); err != nil {
			c.metrics.FetchAttempts.WithLabelValues(src.name, "error").Inc()
			c.logger.Warn("fetch attempt failed", "source", src.name, "error", err)
			lastErr = err
			continue
		}
		c.metrics.FetchAttempts.WithLabelValues(src.name, "success").Inc()
		c.logger.Info("raw file downloaded", "source", src.name, "dest", destPath)
		return nil
	}
	return fmt.Errorf("all download sources failed: %w", lastErr)
}

func (c *Client) fetchOne(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("download error: status %d: %s", resp.StatusCode, body)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("create raw dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(destPath), filepath.Base(destPath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("write download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), destPath)
}

func expandURL(tmpl, stationID string, year int) string {
	out := strings.ReplaceAll(tmpl, "{station}", stationID)
	return strings.ReplaceAll(out, "{year}", strconv.Itoa(year))
}
