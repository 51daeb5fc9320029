package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlens/gridlens/pkg/mer"
)

func TestYearShares(t *testing.T) {
	for _, year := range []int{1973, 1990, 2000, 2010, 2025} {
		shares := yearShares(year)
		require.Len(t, shares, 5)

		var total float64
		for _, s := range shares {
			assert.GreaterOrEqual(t, s.Share, 0.02, "year %d fuel %s", year, s.Name)
			total += s.Share
		}
		assert.InDelta(t, 1.0, total, 1e-9, "year %d", year)
	}
}

func TestYearSharesCenterYearMatchesBase(t *testing.T) {
	shares := yearShares(trendCenterYear)
	for i, s := range shares {
		assert.InDelta(t, fuelMix[i].Share, s.Share, 1e-9, s.Name)
	}
}

func TestYearSharesDrift(t *testing.T) {
	past := yearShares(1990)
	future := yearShares(2020)

	byName := func(shares []FuelShare, name string) float64 {
		for _, s := range shares {
			if s.Name == name {
				return s.Share
			}
		}
		t.Fatalf("fuel %q not found", name)
		return 0
	}

	assert.Greater(t, byName(past, "Petroleum & liquids"), byName(future, "Petroleum & liquids"))
	assert.Less(t, byName(past, "Renewables"), byName(future, "Renewables"))
}

func TestFuelTrend(t *testing.T) {
	national := []mer.Point{{Year: 2019, Consumption: 50}, {Year: 2020, Consumption: 52}}
	trend := FuelTrend(national)
	require.Len(t, trend, 2)

	for i, point := range trend {
		assert.Equal(t, national[i].Year, point.Year)
		var total float64
		for _, v := range point.Values {
			total += v
		}
		assert.InDelta(t, national[i].Consumption, total, 1e-9)
	}
}

func TestFuelTrendEmpty(t *testing.T) {
	trend := FuelTrend(nil)
	assert.NotNil(t, trend)
	assert.Empty(t, trend)
}

func TestFuelMixForYear(t *testing.T) {
	national := []mer.Point{{Year: 2019, Consumption: 50}, {Year: 2020, Consumption: 52}}

	mix := FuelMixForYear(national, 2020)
	require.Len(t, mix, 5)

	var shareTotal, valueTotal float64
	for _, entry := range mix {
		shareTotal += entry.Share
		valueTotal += entry.Value
	}
	assert.InDelta(t, 1.0, shareTotal, 1e-9)
	assert.InDelta(t, 52.0, valueTotal, 1e-9)
}

func TestFuelMixForMissingYear(t *testing.T) {
	national := []mer.Point{{Year: 2020, Consumption: 52}}
	mix := FuelMixForYear(national, 1999)
	assert.NotNil(t, mix)
	assert.Empty(t, mix)
}

func TestLatestFuelMix(t *testing.T) {
	national := []mer.Point{{Year: 2019, Consumption: 50}, {Year: 2020, Consumption: 52}}
	mix := LatestFuelMix(national)
	require.Len(t, mix, 5)

	// The default view applies the base shares, not the drifted ones.
	assert.Equal(t, "Petroleum & liquids", mix[0].Name)
	assert.InDelta(t, 0.36, mix[0].Share, 1e-9)
	assert.InDelta(t, 52*0.36, mix[0].Value, 1e-9)
}

func TestLatestFuelMixEmpty(t *testing.T) {
	assert.Empty(t, LatestFuelMix(nil))
}

func TestFuelNames(t *testing.T) {
	assert.Equal(t, []string{"Petroleum & liquids", "Natural gas", "Coal", "Nuclear", "Renewables"}, FuelNames())
}
