package domain

import (
	"errors"
	"time"
)

// Sentinel errors for the two fatal pipeline conditions. Incomplete
// extraction is not an error: it is recovered silently by synthetic
// substitution inside BuildYearSeries.
var (
	// ErrInputNotFound means the raw station file for the requested
	// year does not exist. The fetch step's own fallback already ran
	// by the time the extractor looks for the file, so this is fatal.
	ErrInputNotFound = errors.New("raw station file not found")

	// ErrOutputIncomplete means a series was still empty after the
	// synthetic fallback, which the generator guarantees never happens.
	// Treated as an internal contract violation.
	ErrOutputIncomplete = errors.New("series empty after synthetic fallback")
)

// TempKind tags a temperature reading as the daily maximum or minimum.
type TempKind string

const (
	TempMax TempKind = "TMAX"
	TempMin TempKind = "TMIN"
)

// Observation is one raw station-day row. Element fields hold the GHCN
// tenths-encoded integers; nil means the element was not reported that
// day. Absence is never coerced to zero.
type Observation struct {
	StationID string
	Date      time.Time
	TMax      *int // tenths of °C
	TMin      *int // tenths of °C
	Precip    *int // tenths of mm
	Snow      *int // tenths of mm
	SnowDepth *int // tenths of mm
}

// TempReading is one daily temperature value in °F, real or synthetic.
type TempReading struct {
	Date       time.Time
	Fahrenheit float64
	Kind       TempKind
}

// PrecipReading is one daily precipitation total in inches, always >= 0.
type PrecipReading struct {
	Date   time.Time
	Inches float64
}

// HumidityReading is one daily relative humidity percentage in [0,100].
type HumidityReading struct {
	Date    time.Time
	Percent int
}

// YearSeries bundles the three fully built series for one station-year.
// The Synthetic flags record whether the per-series completeness check
// forced a fallback; humidity is synthetic by construction and carries
// no flag.
type YearSeries struct {
	Year          int
	Temperature   []TempReading
	Precipitation []PrecipReading
	Humidity      []HumidityReading

	TemperatureSynthetic   bool
	PrecipitationSynthetic bool
}
