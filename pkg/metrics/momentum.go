package metrics

import "github.com/gridlens/gridlens/pkg/seds"

// Trend classifies the sign of a year-over-year delta.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// MomentumEntry is one gauge of the momentum panel. PrevValue is 0 when the
// state had no prior-year record (a new entrant, not an error) and DeltaPct
// is nil in that case because the division is meaningless. Fill is the value
// relative to the panel's maximum, clamped to [0,1] for gauge rendering.
type MomentumEntry struct {
	State      string   `json:"state"`
	Value      float64  `json:"value"`
	PrevValue  float64  `json:"prevValue"`
	Delta      float64  `json:"delta"`
	DeltaPct   *float64 `json:"deltaPct"`
	LatestYear int      `json:"latestYear"`
	PrevYear   int      `json:"prevYear"`
	Fill       float64  `json:"fill"`
	Trend      Trend    `json:"trend"`
}

const momentumStates = 5

// StateMomentum compares the two most recent years present in the state-year
// totals for the top states of the latest year. Fewer than two distinct
// years yields an empty result.
func StateMomentum(records []seds.Record) []MomentumEntry {
	byYear := stateTotalsByYear(records)
	years := sortedYears(byYear)
	if len(years) < 2 {
		return []MomentumEntry{}
	}

	latestYear := years[len(years)-1]
	prevYear := years[len(years)-2]
	latest := byYear[latestYear]
	prev := byYear[prevYear]

	top := topStates(latest, momentumStates)
	if len(top) == 0 {
		return []MomentumEntry{}
	}

	maxValue := top[0].Consumption
	if maxValue == 0 {
		maxValue = 1
	}

	out := make([]MomentumEntry, 0, len(top))
	for _, s := range top {
		prevValue := prev[s.State]
		delta := s.Consumption - prevValue

		var deltaPct *float64
		if prevValue != 0 {
			pct := delta / prevValue * 100
			deltaPct = &pct
		}

		trend := TrendFlat
		switch {
		case delta > 0:
			trend = TrendUp
		case delta < 0:
			trend = TrendDown
		}

		fill := s.Consumption / maxValue
		if fill < 0 {
			fill = 0
		} else if fill > 1 {
			fill = 1
		}

		out = append(out, MomentumEntry{
			State:      s.State,
			Value:      s.Consumption,
			PrevValue:  prevValue,
			Delta:      delta,
			DeltaPct:   deltaPct,
			LatestYear: latestYear,
			PrevYear:   prevYear,
			Fill:       fill,
			Trend:      trend,
		})
	}
	return out
}
