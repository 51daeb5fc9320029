package metrics

import (
	"sort"

	"github.com/gridlens/gridlens/pkg/mer"
	"github.com/gridlens/gridlens/pkg/seds"
)

// StateShare is one state's slice of a year's all-state total.
type StateShare struct {
	State string  `json:"state"`
	Value float64 `json:"value"`
	Share float64 `json:"share"`
}

// YearShare is the stacked-bar row for one year: the top states and their
// shares of that year's all-state total. The all-state total may legitimately
// differ from the national series total for the same year; the two originate
// from different source tables.
type YearShare struct {
	Year     int          `json:"year"`
	Total    float64      `json:"total"`
	Segments []StateShare `json:"segments"`
}

const topShareYears = 5
const topShareStates = 5

// TopStateShare picks the national years with the largest totals and, for
// each, ranks the states by their summed value that year and computes the
// top states' share of the year's all-state total. Years with no state data
// or a zero total are skipped.
func TopStateShare(records []seds.Record, national []mer.Point) []YearShare {
	if len(national) == 0 || len(records) == 0 {
		return []YearShare{}
	}

	byYear := stateTotalsByYear(records)

	pool := make([]mer.Point, 0, len(national))
	for _, p := range national {
		if p.Consumption != 0 {
			pool = append(pool, p)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Consumption > pool[j].Consumption
	})
	if len(pool) > topShareYears {
		pool = pool[:topShareYears]
	}

	out := make([]YearShare, 0, len(pool))
	for _, p := range pool {
		states := byYear[p.Year]
		if len(states) == 0 {
			continue
		}

		ranked := topStates(states, len(states))
		var total float64
		for _, s := range ranked {
			total += s.Consumption
		}
		if total == 0 {
			continue
		}

		selected := ranked
		if len(selected) > topShareStates {
			selected = selected[:topShareStates]
		}
		segments := make([]StateShare, 0, len(selected))
		for _, s := range selected {
			segments = append(segments, StateShare{
				State: s.State,
				Value: s.Consumption,
				Share: s.Consumption / total,
			})
		}

		out = append(out, YearShare{Year: p.Year, Total: total, Segments: segments})
	}
	return out
}
