package domain

import (
	"sort"
)

// ExtractTemperature pulls TMAX/TMIN readings for one station-year out of
// raw observations, converting to °F. Absent element fields are skipped;
// a day may contribute a max, a min, both, or neither.
func ExtractTemperature(obs []Observation, stationID string, year int) []TempReading {
	var out []TempReading
	for _, o := range obs {
		if o.StationID != stationID || o.Date.Year() != year {
			continue
		}
		if o.TMax != nil {
			out = append(out, TempReading{
				Date:       o.Date,
				Fahrenheit: TenthsCelsiusToFahrenheit(*o.TMax),
				Kind:       TempMax,
			})
		}
		if o.TMin != nil {
			out = append(out, TempReading{
				Date:       o.Date,
				Fahrenheit: TenthsCelsiusToFahrenheit(*o.TMin),
				Kind:       TempMin,
			})
		}
	}
	return out
}

// ExtractPrecipitation pulls daily precipitation totals for one
// station-year, converting tenths of mm to inches.
func ExtractPrecipitation(obs []Observation, stationID string, year int) []PrecipReading {
	var out []PrecipReading
	for _, o := range obs {
		if o.StationID != stationID || o.Date.Year() != year {
			continue
		}
		if o.Precip != nil {
			out = append(out, PrecipReading{
				Date:   o.Date,
				Inches: TenthsMillimetersToInches(*o.Precip),
			})
		}
	}
	return out
}

// temperatureUsable is the completeness check for extracted temperature
// data: the series must be non-empty and contain at least one TMAX and
// one TMIN reading. A max-only or min-only year cannot draw the chart's
// temperature band, so it is replaced wholesale.
func temperatureUsable(series []TempReading) bool {
	var hasMax, hasMin bool
	for _, r := range series {
		switch r.Kind {
		case TempMax:
			hasMax = true
		case TempMin:
			hasMin = true
		}
		if hasMax && hasMin {
			return true
		}
	}
	return false
}

// BuildYearSeries runs extraction with per-series completeness checks
// and synthetic fallback, producing the three date-sorted series for a
// station-year. Temperature and precipitation that fail their checks
// are discarded entirely and regenerated for the full simplified year;
// humidity is always generated. Returns ErrOutputIncomplete if any
// series ends up empty, which the generator contract rules out.
func BuildYearSeries(obs []Observation, stationID string, year int) (YearSeries, error) {
	series := YearSeries{Year: year}

	series.Temperature = ExtractTemperature(obs, stationID, year)
	if !temperatureUsable(series.Temperature) {
		series.Temperature = SyntheticTemperature(year)
		series.TemperatureSynthetic = true
	}

	series.Precipitation = ExtractPrecipitation(obs, stationID, year)
	if len(series.Precipitation) == 0 {
		series.Precipitation = SyntheticPrecipitation(year)
		series.PrecipitationSynthetic = true
	}

	series.Humidity = SyntheticHumidity(year)

	// Stable sort keeps the TMAX-before-TMIN emission order within a day.
	sort.SliceStable(series.Temperature, func(i, j int) bool {
		return series.Temperature[i].Date.Before(series.Temperature[j].Date)
	})
	sort.SliceStable(series.Precipitation, func(i, j int) bool {
		return series.Precipitation[i].Date.Before(series.Precipitation[j].Date)
	})
	sort.SliceStable(series.Humidity, func(i, j int) bool {
		return series.Humidity[i].Date.Before(series.Humidity[j].Date)
	})

	if len(series.Temperature) == 0 || len(series.Precipitation) == 0 || len(series.Humidity) == 0 {
		return YearSeries{}, ErrOutputIncomplete
	}
	return series, nil
}
