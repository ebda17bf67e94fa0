// Package file reads raw station files and writes the processed series
// files that the external chart renderer consumes.
package file

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nycwx/weather-series-etl/internal/domain"
	"github.com/nycwx/weather-series-etl/internal/observability"
)

// RawPath returns the raw station file location for a station-year.
// Shared with the fetcher so downloads land where the source looks.
func RawPath(dataDir, stationID string, year int) string {
	return filepath.Join(dataDir, "raw", fmt.Sprintf("%s_%d.csv", stationID, year))
}

// Source loads raw observations from per-station-year CSV files on disk.
// It implements pipeline.RawSource.
type Source struct {
	dataDir string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewSource creates a Source rooted at dataDir.
func NewSource(dataDir string, logger *slog.Logger, metrics *observability.Metrics) *Source {
	return &Source{dataDir: dataDir, logger: logger, metrics: metrics}
}

// Load reads and parses the raw file for a station-year. A missing file
// maps to domain.ErrInputNotFound. Malformed rows (including any stray
// header line) are skipped with a counter bump, not treated as fatal:
// the per-series completeness checks decide whether what survived is
// usable.
func (s *Source) Load(_ context.Context, stationID string, year int) ([]domain.Observation, error) {
	path := RawPath(s.dataDir, stationID, year)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrInputNotFound)
		}
		return nil, fmt.Errorf("open raw file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows omit trailing unreported elements

	var obs []domain.Observation
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read raw file %s: %w", path, err)
		}

		o, err := domain.ParseObservationRow(row)
		if err != nil {
			s.logger.Debug("skipping malformed row", "file", path, "error", err)
			s.metrics.RowsSkipped.Inc()
			continue
		}
		obs = append(obs, o)
	}

	s.logger.Debug("raw file loaded", "file", path, "rows", len(obs))
	return obs, nil
}
