// Package domain models GHCN-Daily station observations and the three
// per-day series (temperature, precipitation, humidity) derived from them.
//
// # Data Source
//
// Raw data comes from NOAA's Global Historical Climatology Network Daily
// (GHCN-Daily) archive, one CSV row per station-day. The upstream fetch
// step downloads a per-station-year file; this package never talks to the
// network itself.
//
// # GHCN-Daily Conventions
//
// Row layout (fixed column positions, no header):
//
//	station,date,tmax,tmin,prcp,snow,snwd
//	e.g. USW00094728,"19800101",44,-33,25,,
//
// Dates are 8-digit YYYYMMDD, sometimes quoted. Element values use the
// GHCN tenths encoding:
//
//	TMAX, TMIN: tenths of degrees Celsius (44 = 4.4°C)
//	PRCP, SNOW, SNWD: tenths of millimeters (25 = 2.5mm)
//
// Missing values:
//
//	An element not observed that day is an empty field, sentinel
//	punctuation (".", "-", "NA"), or the archive's -9999 marker. Absence
//	is a first-class state ([Observation] uses nil pointers), never zero:
//	0 tenths is a real observation of 0.0°C or no rainfall.
//
// Trace precipitation:
//
//	Some station files suffix the PRCP value with a trace marker
//	(e.g. "0T"). Non-digit characters are stripped before parsing;
//	a field that is empty after stripping counts as missing.
//
// # Unit Conversions
//
// Downstream output uses US customary units, matching the chart the
// series feed:
//
//	°F     = tenths/10 * 9/5 + 32    (200 tenths °C → exactly 68.0°F)
//	inches = tenths/10 / 25.4        (254 tenths mm → exactly 1.0in)
//
// # Completeness and Synthetic Fallback
//
// A year's temperature extraction is usable only if it produced at least
// one TMAX and one TMIN reading; precipitation only if non-empty. A
// series that fails its check is discarded whole and regenerated
// synthetically for the full year, never a partial merge of real and
// synthetic days. Humidity has no GHCN source element and is always
// synthetic. See [BuildYearSeries].
//
// Synthetic series cover a simplified calendar of 12 months × 28 days
// (336 days). Generation is seeded from (year, kind) with a SHA-256
// derived seed, so reruns for the same year are byte-identical all the
// way down to the output files. See [SyntheticTemperature].
package domain
