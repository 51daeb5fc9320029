package metrics

import (
	"math"

	"github.com/gridlens/gridlens/pkg/mer"
)

// FuelMixEntry is one fuel category's slice of a year's national total.
// Shares across a year's entries sum to 1 after renormalization.
type FuelMixEntry struct {
	Name  string  `json:"name"`
	Share float64 `json:"share"`
	Value float64 `json:"value"`
}

// FuelTrendPoint carries per-fuel absolute values for one year.
type FuelTrendPoint struct {
	Year   int                `json:"year"`
	Values map[string]float64 `json:"values"`
}

// yearShares models the mix for a single year: each base share drifts
// linearly from the center year, floors at minFuelShare, then the set is
// renormalized to sum to 1.
func yearShares(year int) []FuelShare {
	raw := make([]FuelShare, len(fuelMix))
	var total float64
	for i, fuel := range fuelMix {
		slope := fuelTrends[fuel.Name]
		share := math.Max(minFuelShare, fuel.Share+slope*float64(year-trendCenterYear))
		raw[i] = FuelShare{Name: fuel.Name, Share: share}
		total += share
	}
	for i := range raw {
		raw[i].Share /= total
	}
	return raw
}

// FuelTrend decomposes every national point into per-fuel absolute values.
func FuelTrend(national []mer.Point) []FuelTrendPoint {
	if len(national) == 0 {
		return []FuelTrendPoint{}
	}
	out := make([]FuelTrendPoint, 0, len(national))
	for _, p := range national {
		values := make(map[string]float64, len(fuelMix))
		for _, share := range yearShares(p.Year) {
			values[share.Name] = p.Consumption * share.Share
		}
		out = append(out, FuelTrendPoint{Year: p.Year, Values: values})
	}
	return out
}

// FuelMixForYear returns the normalized mix entries for one modeled year.
func FuelMixForYear(national []mer.Point, year int) []FuelMixEntry {
	var point *mer.Point
	for i := range national {
		if national[i].Year == year {
			point = &national[i]
			break
		}
	}
	if point == nil {
		return []FuelMixEntry{}
	}
	shares := yearShares(year)
	out := make([]FuelMixEntry, 0, len(shares))
	for _, s := range shares {
		out = append(out, FuelMixEntry{
			Name:  s.Name,
			Share: s.Share,
			Value: point.Consumption * s.Share,
		})
	}
	return out
}

// LatestFuelMix applies the base shares to the most recent national total,
// the default view before a year is picked.
func LatestFuelMix(national []mer.Point) []FuelMixEntry {
	latest := mer.Latest(national)
	if latest == nil {
		return []FuelMixEntry{}
	}
	out := make([]FuelMixEntry, 0, len(fuelMix))
	for _, fuel := range fuelMix {
		out = append(out, FuelMixEntry{
			Name:  fuel.Name,
			Share: fuel.Share,
			Value: latest.Consumption * fuel.Share,
		})
	}
	return out
}
