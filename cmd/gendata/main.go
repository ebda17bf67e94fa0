// Command gendata writes a mock GHCN-Daily raw station file for a
// station-year, for tests and local runs without a network. Values are
// drawn from the same seasonal bands the synthetic generator uses, then
// encoded back into GHCN tenths so the file exercises the real parser.
//
// Usage:
//
//	go run ./cmd/gendata -station USW00094728 -year 1980 -out data/raw/USW00094728_1980.csv
//	go run ./cmd/gendata -year 2000 -drop tmin,prcp -out /tmp/maxonly.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	station := flag.String("station", "USW00094728", "station id to stamp on every row")
	year := flag.Int("year", 1980, "year to generate")
	out := flag.String("out", "", "output CSV path")
	drop := flag.String("drop", "", "comma separated elements to leave empty (tmax,tmin,prcp)")
	skipEvery := flag.Int("skip-days", 0, "omit every Nth day entirely to simulate gaps (0 = none)")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	dropped := map[string]bool{}
	for _, d := range strings.Split(*drop, ",") {
		if d = strings.TrimSpace(d); d != "" {
			dropped[d] = true
		}
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	rng := rand.New(rand.NewSource(int64(*year)))

	rows := 0
	day := time.Date(*year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for n := 1; day.Year() == *year; day, n = day.AddDate(0, 0, 1), n+1 {
		if *skipEvery > 0 && n%*skipEvery == 0 {
			continue
		}

		maxF, minF, prcpTenths := drawDay(rng, day.Month())
		row := []string{
			*station,
			day.Format("20060102"),
			tenthsCelsiusField(maxF, dropped["tmax"]),
			tenthsCelsiusField(minF, dropped["tmin"]),
			prcpField(prcpTenths, dropped["prcp"]),
			"",
			"",
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
		rows++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	log.Printf("wrote %d rows to %s", rows, *out)
	return nil
}

// drawDay picks a plausible max/min °F pair and a precipitation value
// (tenths of mm) for the day's season.
func drawDay(rng *rand.Rand, month time.Month) (maxF, minF, prcpTenths int) {
	switch month {
	case time.June, time.July, time.August:
		maxF, minF = 75+rng.Intn(20), 55+rng.Intn(15)
	case time.December, time.January, time.February:
		maxF, minF = 30+rng.Intn(20), 10+rng.Intn(25)
	default:
		maxF, minF = 55+rng.Intn(25), 35+rng.Intn(20)
	}
	if minF > maxF {
		minF = maxF
	}
	// Roughly a quarter of days are dry.
	if rng.Intn(4) > 0 {
		prcpTenths = rng.Intn(300)
	}
	return maxF, minF, prcpTenths
}

// tenthsCelsiusField encodes a °F value as GHCN tenths of °C, or an
// empty (missing) field when the element is dropped.
func tenthsCelsiusField(f int, dropped bool) string {
	if dropped {
		return ""
	}
	tenths := int(math.Round((float64(f) - 32) * 5 / 9 * 10))
	return strconv.Itoa(tenths)
}

func prcpField(tenths int, dropped bool) string {
	if dropped {
		return ""
	}
	return strconv.Itoa(tenths)
}
