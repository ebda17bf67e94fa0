// Command validate checks the integrity of a year's processed series
// files: line formats, date ordering, value ranges, TMAX/TMIN pairing,
// and the 336-entry shape of synthetic series. The surrounding
// orchestration treats a missing or empty series file as a failed run;
// this command makes that check explicit and adds the range checks.
//
// Usage:
//
//	go run ./cmd/validate -data-dir data -year 1980
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

// simplifiedEntries is the per-day entry count of a fully synthetic
// series (12 months x 28 days).
const simplifiedEntries = 12 * 28

type line struct {
	date   time.Time
	fields []string
}

func main() {
	dataDir := flag.String("data-dir", "data", "data directory containing processed/ series files")
	year := flag.Int("year", 1980, "year whose output files to validate")
	flag.Parse()

	if code := run(*dataDir, *year); code != 0 {
		os.Exit(code)
	}
}

func run(dataDir string, year int) int {
	dir := filepath.Join(dataDir, "processed")
	fmt.Printf("=== Series Output Validation: %d ===\n\n", year)

	temps, err := loadLines(filepath.Join(dir, fmt.Sprintf("temperatures_%d.txt", year)), 3)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load temperature series: %v\n", err)
		return 1
	}
	precip, err := loadLines(filepath.Join(dir, fmt.Sprintf("precipitation_%d.txt", year)), 2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load precipitation series: %v\n", err)
		return 1
	}
	humidity, err := loadLines(filepath.Join(dir, fmt.Sprintf("humidity_%d.txt", year)), 2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load humidity series: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateTemperature(temps, year),
		validatePrecipitation(precip, year),
		validateHumidity(humidity, year),
	}

	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = "FAIL"
			allPassed = false
		}
		fmt.Printf("[%s] %s\n", status, p.name)
		for _, e := range p.errors {
			fmt.Printf("       - %s\n", e)
		}
	}

	fmt.Println()
	if !allPassed {
		fmt.Println("validation FAILED")
		return 1
	}
	fmt.Println("validation passed")
	return 0
}

// loadLines reads a series file into parsed lines, enforcing the column
// count, the YYYY-MM-DD date format, and file non-emptiness.
func loadLines(path string, wantFields int) ([]line, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	var lines []line
	for i, l := range strings.Split(strings.TrimRight(string(raw), "\n"), "\n") {
		fields := strings.Split(l, ",")
		if len(fields) != wantFields {
			return nil, fmt.Errorf("line %d: %d fields, want %d", i+1, len(fields), wantFields)
		}
		d, err := time.Parse("2006-01-02", fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad date %q", i+1, fields[0])
		}
		lines = append(lines, line{date: d, fields: fields})
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}
	return lines, nil
}

func validateTemperature(lines []line, year int) *phase {
	p := &phase{name: "temperature series"}

	perDay := map[time.Time]map[string]int{}
	for i, l := range lines {
		if l.date.Year() != year {
			p.errorf("line %d: date %s outside year %d", i+1, l.fields[0], year)
		}
		if i > 0 && l.date.Before(lines[i-1].date) {
			p.errorf("line %d: dates not ascending", i+1)
		}
		if _, err := strconv.ParseFloat(l.fields[1], 64); err != nil {
			p.errorf("line %d: bad value %q", i+1, l.fields[1])
		}
		kind := l.fields[2]
		if kind != "TMAX" && kind != "TMIN" {
			p.errorf("line %d: bad kind %q", i+1, kind)
			continue
		}
		if perDay[l.date] == nil {
			perDay[l.date] = map[string]int{}
		}
		perDay[l.date][kind]++
	}

	for date, kinds := range perDay {
		if kinds["TMAX"] > 1 || kinds["TMIN"] > 1 {
			p.errorf("%s: duplicate readings (TMAX=%d TMIN=%d)", date.Format("2006-01-02"), kinds["TMAX"], kinds["TMIN"])
		}
	}

	// A synthetic temperature series has exactly one TMAX/TMIN pair for
	// each of the 336 simplified days.
	if len(lines) == 2*simplifiedEntries {
		for date, kinds := range perDay {
			if kinds["TMAX"] != 1 || kinds["TMIN"] != 1 {
				p.errorf("%s: synthetic day missing a TMAX/TMIN pair", date.Format("2006-01-02"))
			}
			if date.Day() > 28 {
				p.errorf("%s: synthetic day outside simplified calendar", date.Format("2006-01-02"))
			}
		}
		if len(perDay) != simplifiedEntries {
			p.errorf("synthetic series covers %d days, want %d", len(perDay), simplifiedEntries)
		}
	}

	return p
}

func validatePrecipitation(lines []line, year int) *phase {
	p := &phase{name: "precipitation series"}

	for i, l := range lines {
		if l.date.Year() != year {
			p.errorf("line %d: date %s outside year %d", i+1, l.fields[0], year)
		}
		if i > 0 && l.date.Before(lines[i-1].date) {
			p.errorf("line %d: dates not ascending", i+1)
		}
		v, err := strconv.ParseFloat(l.fields[1], 64)
		if err != nil {
			p.errorf("line %d: bad value %q", i+1, l.fields[1])
			continue
		}
		if v < 0 {
			p.errorf("line %d: negative precipitation %v", i+1, v)
		}
	}

	if len(lines) == simplifiedEntries {
		checkSimplifiedDays(p, lines)
	}

	return p
}

func validateHumidity(lines []line, year int) *phase {
	p := &phase{name: "humidity series"}

	if len(lines) != simplifiedEntries {
		p.errorf("humidity is always synthetic: %d entries, want %d", len(lines), simplifiedEntries)
	}

	for i, l := range lines {
		if l.date.Year() != year {
			p.errorf("line %d: date %s outside year %d", i+1, l.fields[0], year)
		}
		if i > 0 && l.date.Before(lines[i-1].date) {
			p.errorf("line %d: dates not ascending", i+1)
		}
		v, err := strconv.Atoi(l.fields[1])
		if err != nil {
			p.errorf("line %d: bad value %q", i+1, l.fields[1])
			continue
		}
		if v < 0 || v > 100 {
			p.errorf("line %d: humidity %d outside [0,100]", i+1, v)
			continue
		}
		lo, hi := humidityBand(l.date.Month())
		if v < lo || v > hi {
			p.errorf("line %d: humidity %d outside %s band [%d,%d]", i+1, v, l.date.Month(), lo, hi)
		}
	}

	checkSimplifiedDays(p, lines)
	return p
}

// checkSimplifiedDays verifies a synthetic-shaped series has exactly one
// entry per simplified day and no day beyond the 28th.
func checkSimplifiedDays(p *phase, lines []line) {
	seen := map[time.Time]int{}
	for _, l := range lines {
		seen[l.date]++
		if l.date.Day() > 28 {
			p.errorf("%s: day outside simplified calendar", l.date.Format("2006-01-02"))
		}
	}
	for date, n := range seen {
		if n != 1 {
			p.errorf("%s: %d entries, want 1", date.Format("2006-01-02"), n)
		}
	}
	if len(seen) != simplifiedEntries {
		p.errorf("series covers %d days, want %d", len(seen), simplifiedEntries)
	}
}

func humidityBand(m time.Month) (lo, hi int) {
	switch m {
	case time.June, time.July, time.August:
		return 60, 89
	case time.December, time.January, time.February:
		return 40, 69
	default:
		return 50, 79
	}
}
