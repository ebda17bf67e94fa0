package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Fixed column positions in a GHCN-Daily station file row.
const (
	colStation = iota
	colDate
	colTMax
	colTMin
	colPrecip
	colSnow
	colSnowDepth

	minColumns = colDate + 1
)

// rawDateLayout matches the 8-digit YYYYMMDD dates in station files.
const rawDateLayout = "20060102"

// nonDigitRe strips trace markers and other noise from numeric fields,
// keeping only digits and a sign, e.g. "0T" -> "0", "-33*" -> "-33".
var nonDigitRe = regexp.MustCompile(`[^0-9-]`)

// ParseObservationRow converts one CSV row (already field-split) into an
// Observation. Element fields that are empty or carry a missing marker
// come back as nil pointers. Rows with an unparseable date or too few
// columns are rejected.
func ParseObservationRow(fields []string) (Observation, error) {
	if len(fields) < minColumns {
		return Observation{}, fmt.Errorf("row has %d columns, want at least %d", len(fields), minColumns)
	}

	dateStr := strings.Trim(strings.TrimSpace(fields[colDate]), `"`)
	date, err := time.Parse(rawDateLayout, dateStr)
	if err != nil {
		return Observation{}, fmt.Errorf("parse date %q: %w", dateStr, err)
	}

	obs := Observation{
		StationID: strings.TrimSpace(fields[colStation]),
		Date:      date,
		TMax:      parseTenths(field(fields, colTMax)),
		TMin:      parseTenths(field(fields, colTMin)),
		Precip:    parseStrippedTenths(field(fields, colPrecip)),
		Snow:      parseStrippedTenths(field(fields, colSnow)),
		SnowDepth: parseStrippedTenths(field(fields, colSnowDepth)),
	}
	return obs, nil
}

// field returns fields[i] or "" when the row is short. Short rows are
// common at the tail of station files where unreported elements are
// simply omitted.
func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}

// parseTenths parses a tenths-encoded element value, returning nil for
// missing values: empty strings, sentinel punctuation, the -9999
// archive marker, or anything non-numeric.
func parseTenths(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v == -9999 {
		return nil
	}
	return &v
}

// parseStrippedTenths is parseTenths after removing non-digit characters,
// which handles trace-value markers in precipitation fields.
func parseStrippedTenths(s string) *int {
	return parseTenths(nonDigitRe.ReplaceAllString(s, ""))
}

// TenthsCelsiusToFahrenheit converts a GHCN tenths-of-°C value to °F.
func TenthsCelsiusToFahrenheit(tenths int) float64 {
	return float64(tenths)/10*9/5 + 32
}

// TenthsMillimetersToInches converts a GHCN tenths-of-mm value to inches.
func TenthsMillimetersToInches(tenths int) float64 {
	return float64(tenths) / 10 / 25.4
}
