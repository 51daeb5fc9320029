package metrics

import (
	"sort"

	"github.com/gridlens/gridlens/pkg/aggregate"
	"github.com/gridlens/gridlens/pkg/seds"
)

// The charts consume state totals of the all-fuels series only; the national
// aggregate row and the pre-1990 tail are excluded to match the MER window.
const (
	totalConsumptionMSN = "TETCB"
	nationalStateCode   = "US"
	stateUniverseFrom   = 1990
)

// StateValue is a state paired with its summed consumption in TWh.
type StateValue struct {
	State       string  `json:"state"`
	Consumption float64 `json:"consumption"`
}

// StateUniverse filters a raw record set down to the state-level total
// consumption rows the derived views are built on.
func StateUniverse(records []seds.Record) []seds.Record {
	out := make([]seds.Record, 0, len(records))
	for _, r := range records {
		if r.MSN != totalConsumptionMSN || r.State == nationalStateCode || r.Year < stateUniverseFrom {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SinceYear keeps records with Year >= year; zero returns the input.
func SinceYear(records []seds.Record, year int) []seds.Record {
	if year == 0 {
		return records
	}
	out := make([]seds.Record, 0, len(records))
	for _, r := range records {
		if r.Year >= year {
			out = append(out, r)
		}
	}
	return out
}

// StateSeries sums the universe per state, sorted descending by consumption.
func StateSeries(records []seds.Record) []StateValue {
	results := aggregate.Aggregate(records, aggregate.Options{GroupBy: aggregate.GroupByState})
	out := make([]StateValue, 0, len(results))
	for _, r := range results {
		out = append(out, StateValue{State: r.Key, Consumption: r.Value})
	}
	return out
}

// stateTotalsByYear builds year -> state -> summed value.
func stateTotalsByYear(records []seds.Record) map[int]map[string]float64 {
	byYear := make(map[int]map[string]float64)
	for _, r := range records {
		states, ok := byYear[r.Year]
		if !ok {
			states = make(map[string]float64)
			byYear[r.Year] = states
		}
		states[r.State] += r.Value
	}
	return byYear
}

// sortedYears returns the map's years ascending.
func sortedYears(byYear map[int]map[string]float64) []int {
	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// topStates ranks a state->value map descending and returns up to n entries.
// Ties keep lexicographic state order so the ranking is deterministic.
func topStates(states map[string]float64, n int) []StateValue {
	out := make([]StateValue, 0, len(states))
	for state, value := range states {
		out = append(out, StateValue{State: state, Consumption: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Consumption != out[j].Consumption {
			return out[i].Consumption > out[j].Consumption
		}
		return out[i].State < out[j].State
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
