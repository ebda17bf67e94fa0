package file

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nycwx/weather-series-etl/internal/domain"
)

// outDateLayout is the date format in the processed series files,
// distinct from the raw input's YYYYMMDD.
const outDateLayout = "2006-01-02"

// Writer persists the three series files for a year under
// <dataDir>/processed/. It implements pipeline.SeriesWriter.
type Writer struct {
	dataDir string
	logger  *slog.Logger
}

// NewWriter creates a Writer rooted at dataDir.
func NewWriter(dataDir string, logger *slog.Logger) *Writer {
	return &Writer{dataDir: dataDir, logger: logger}
}

// WriteSeries writes temperatures_<year>.txt, precipitation_<year>.txt,
// and humidity_<year>.txt. Each file is written to a temp file and
// renamed into place, so a reader never sees a half-written series and
// a failed run cannot leave stale rows appended to old output.
func (w *Writer) WriteSeries(_ context.Context, series domain.YearSeries) error {
	dir := filepath.Join(w.dataDir, "processed")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files := map[string]string{
		fmt.Sprintf("temperatures_%d.txt", series.Year):  formatTemperature(series.Temperature),
		fmt.Sprintf("precipitation_%d.txt", series.Year): formatPrecipitation(series.Precipitation),
		fmt.Sprintf("humidity_%d.txt", series.Year):      formatHumidity(series.Humidity),
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := writeAtomic(path, []byte(content)); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		w.logger.Debug("series file written", "file", path, "bytes", len(content))
	}
	return nil
}

// formatTemperature renders "YYYY-MM-DD,value_fahrenheit,TMAX|TMIN" lines.
// One tenth of °C is 0.18°F, so two decimals render the conversion exactly.
func formatTemperature(series []domain.TempReading) string {
	var b strings.Builder
	for _, r := range series {
		b.WriteString(r.Date.Format(outDateLayout))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(r.Fahrenheit, 'f', 2, 64))
		b.WriteByte(',')
		b.WriteString(string(r.Kind))
		b.WriteByte('\n')
	}
	return b.String()
}

// formatPrecipitation renders "YYYY-MM-DD,value_inches" lines.
func formatPrecipitation(series []domain.PrecipReading) string {
	var b strings.Builder
	for _, r := range series {
		b.WriteString(r.Date.Format(outDateLayout))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(r.Inches, 'f', 2, 64))
		b.WriteByte('\n')
	}
	return b.String()
}

// formatHumidity renders "YYYY-MM-DD,value_percent" lines.
func formatHumidity(series []domain.HumidityReading) string {
	var b strings.Builder
	for _, r := range series {
		b.WriteString(r.Date.Format(outDateLayout))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(r.Percent))
		b.WriteByte('\n')
	}
	return b.String()
}

// writeAtomic writes content to a temp file in the target directory and
// renames it over the destination.
func writeAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
