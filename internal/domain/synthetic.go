package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// SimplifiedDaysPerMonth is the flat month length of the simplified
// calendar used for synthetic generation: 12 months × 28 days = 336
// entries per year. Real month lengths are deliberately not modeled
// here; the raw extraction path uses real dates as reported.
const SimplifiedDaysPerMonth = 28

// SimplifiedYearDays is the number of days in the simplified calendar.
const SimplifiedYearDays = 12 * SimplifiedDaysPerMonth

type season int

const (
	seasonShoulder season = iota // spring and fall
	seasonSummer                 // Jun-Aug
	seasonWinter                 // Dec-Feb
)

func seasonOf(month time.Month) season {
	switch month {
	case time.June, time.July, time.August:
		return seasonSummer
	case time.December, time.January, time.February:
		return seasonWinter
	default:
		return seasonShoulder
	}
}

// tempBand holds inclusive °F ranges for a season's daily max and min.
// Max bands sit above min bands by choice of constants; winter is the
// one overlap (min hi 34 > max lo 30), repaired after drawing.
type tempBand struct {
	maxLo, maxHi int
	minLo, minHi int
}

var tempBands = map[season]tempBand{
	seasonSummer:   {maxLo: 75, maxHi: 94, minLo: 55, minHi: 69},
	seasonWinter:   {maxLo: 30, maxHi: 49, minLo: 10, minHi: 34},
	seasonShoulder: {maxLo: 55, maxHi: 79, minLo: 35, minHi: 54},
}

// humidityBand holds the inclusive seasonal percent range.
var humidityBands = map[season][2]int{
	seasonSummer:   {60, 89},
	seasonWinter:   {40, 69},
	seasonShoulder: {50, 79},
}

// newRand builds the PRNG for one (year, kind) generation run. The seed
// is derived from a SHA-256 hash so reruns for the same year produce
// byte-identical series, which the output contract requires.
func newRand(year int, kind string) *rand.Rand {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%s", year, kind)))
	seed := int64(binary.BigEndian.Uint64(sum[:8]))
	return rand.New(rand.NewSource(seed))
}

// intIn returns a uniform integer in [lo, hi].
func intIn(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// simplifiedDays yields every date of the simplified calendar in order.
func simplifiedDays(year int) []time.Time {
	days := make([]time.Time, 0, SimplifiedYearDays)
	for month := time.January; month <= time.December; month++ {
		for day := 1; day <= SimplifiedDaysPerMonth; day++ {
			days = append(days, time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		}
	}
	return days
}

// SyntheticTemperature generates a plausible full-year temperature
// series over the simplified calendar: one TMAX and one TMIN reading
// per day, drawn from the seasonal bands. A drawn min exceeding its max
// (possible in winter, where the bands overlap) is clamped to the max.
func SyntheticTemperature(year int) []TempReading {
	rng := newRand(year, "temperature")
	out := make([]TempReading, 0, 2*SimplifiedYearDays)
	for _, date := range simplifiedDays(year) {
		band := tempBands[seasonOf(date.Month())]
		maxF := intIn(rng, band.maxLo, band.maxHi)
		minF := intIn(rng, band.minLo, band.minHi)
		if minF > maxF {
			minF = maxF
		}
		out = append(out,
			TempReading{Date: date, Fahrenheit: float64(maxF), Kind: TempMax},
			TempReading{Date: date, Fahrenheit: float64(minF), Kind: TempMin},
		)
	}
	return out
}

// SyntheticPrecipitation generates one daily total per simplified day,
// uniform in [0, 0.5) inches at two-decimal precision.
func SyntheticPrecipitation(year int) []PrecipReading {
	rng := newRand(year, "precipitation")
	out := make([]PrecipReading, 0, SimplifiedYearDays)
	for _, date := range simplifiedDays(year) {
		out = append(out, PrecipReading{
			Date:   date,
			Inches: float64(rng.Intn(50)) / 100,
		})
	}
	return out
}

// SyntheticHumidity generates one relative-humidity percentage per
// simplified day from the seasonal band. Humidity is independent of the
// temperature and precipitation series.
func SyntheticHumidity(year int) []HumidityReading {
	rng := newRand(year, "humidity")
	out := make([]HumidityReading, 0, SimplifiedYearDays)
	for _, date := range simplifiedDays(year) {
		band := humidityBands[seasonOf(date.Month())]
		out = append(out, HumidityReading{
			Date:    date,
			Percent: intIn(rng, band[0], band[1]),
		})
	}
	return out
}
