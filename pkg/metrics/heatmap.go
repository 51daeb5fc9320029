package metrics

import (
	"sort"

	"github.com/gridlens/gridlens/pkg/seds"
)

// HeatmapCell is one (state, year) observation. A nil Value means "no data"
// for that pair, which renders differently from an observed zero.
type HeatmapCell struct {
	Year  int      `json:"year"`
	Value *float64 `json:"value"`
}

// HeatmapRow is one state's cells across the selected years.
type HeatmapRow struct {
	State  string        `json:"state"`
	Values []HeatmapCell `json:"values"`
}

// Heatmap is the dense state-by-year grid of the patterns panel plus the
// color-scale maximum over the present cells.
type Heatmap struct {
	Years    []int        `json:"years"`
	Rows     []HeatmapRow `json:"rows"`
	MaxValue float64      `json:"maxValue"`
}

const (
	heatmapStates = 8
	heatmapYears  = 10
)

// BuildHeatmap selects the states with the largest all-time summed value and
// the most recent distinct years, then fills the grid. Empty input yields an
// empty grid, not nil fields.
func BuildHeatmap(records []seds.Record) Heatmap {
	if len(records) == 0 {
		return Heatmap{Years: []int{}, Rows: []HeatmapRow{}}
	}

	yearSet := make(map[int]struct{})
	totals := make(map[string]float64)
	cells := make(map[string]map[int]float64)
	for _, r := range records {
		yearSet[r.Year] = struct{}{}
		totals[r.State] += r.Value
		row, ok := cells[r.State]
		if !ok {
			row = make(map[int]float64)
			cells[r.State] = row
		}
		row[r.Year] += r.Value
	}

	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Ints(years)
	if len(years) > heatmapYears {
		years = years[len(years)-heatmapYears:]
	}

	top := topStates(totals, heatmapStates)

	rows := make([]HeatmapRow, 0, len(top))
	var maxValue float64
	for _, s := range top {
		values := make([]HeatmapCell, 0, len(years))
		for _, year := range years {
			cell := HeatmapCell{Year: year}
			if v, ok := cells[s.State][year]; ok {
				value := v
				cell.Value = &value
				if value > maxValue {
					maxValue = value
				}
			}
			values = append(values, cell)
		}
		rows = append(rows, HeatmapRow{State: s.State, Values: values})
	}

	return Heatmap{Years: years, Rows: rows, MaxValue: maxValue}
}
