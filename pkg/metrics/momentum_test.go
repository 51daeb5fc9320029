package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlens/gridlens/pkg/seds"
)

func TestStateMomentumNeedsTwoYears(t *testing.T) {
	assert.Empty(t, StateMomentum(nil))
	assert.Empty(t, StateMomentum([]seds.Record{
		{Year: 2020, State: "TX", MSN: "TETCB", Value: 100},
		{Year: 2020, State: "CA", MSN: "TETCB", Value: 80},
	}))
}

func TestStateMomentum(t *testing.T) {
	records := []seds.Record{
		{Year: 2019, State: "TX", MSN: "TETCB", Value: 100},
		{Year: 2020, State: "TX", MSN: "TETCB", Value: 110},
		{Year: 2019, State: "CA", MSN: "TETCB", Value: 90},
		{Year: 2020, State: "CA", MSN: "TETCB", Value: 81},
		{Year: 2019, State: "FL", MSN: "TETCB", Value: 50},
		{Year: 2020, State: "FL", MSN: "TETCB", Value: 50},
	}

	entries := StateMomentum(records)
	require.Len(t, entries, 3)

	tx := entries[0]
	assert.Equal(t, "TX", tx.State)
	assert.Equal(t, 2020, tx.LatestYear)
	assert.Equal(t, 2019, tx.PrevYear)
	assert.InDelta(t, 10.0, tx.Delta, 1e-9)
	require.NotNil(t, tx.DeltaPct)
	assert.InDelta(t, 10.0, *tx.DeltaPct, 1e-9)
	assert.Equal(t, TrendUp, tx.Trend)
	assert.InDelta(t, 1.0, tx.Fill, 1e-9)

	ca := entries[1]
	assert.Equal(t, TrendDown, ca.Trend)
	require.NotNil(t, ca.DeltaPct)
	assert.InDelta(t, -10.0, *ca.DeltaPct, 1e-9)
	assert.InDelta(t, 81.0/110.0, ca.Fill, 1e-9)

	fl := entries[2]
	assert.Equal(t, TrendFlat, fl.Trend)
}

func TestStateMomentumNewEntrant(t *testing.T) {
	records := []seds.Record{
		{Year: 2019, State: "TX", MSN: "TETCB", Value: 100},
		{Year: 2020, State: "TX", MSN: "TETCB", Value: 110},
		{Year: 2020, State: "NM", MSN: "TETCB", Value: 40},
	}

	entries := StateMomentum(records)
	require.Len(t, entries, 2)

	nm := entries[1]
	assert.Equal(t, "NM", nm.State)
	// No prior-year record: previous defaults to zero and the percent change
	// is undefined rather than infinite.
	assert.Zero(t, nm.PrevValue)
	assert.Nil(t, nm.DeltaPct)
	assert.InDelta(t, 40.0, nm.Delta, 1e-9)
	assert.Equal(t, TrendUp, nm.Trend)
}

func TestStateMomentumLimitsToTopFive(t *testing.T) {
	records := make([]seds.Record, 0, 14)
	states := []string{"TX", "CA", "FL", "NY", "PA", "OH", "GA"}
	for i, state := range states {
		value := float64(100 - i*10)
		records = append(records,
			seds.Record{Year: 2019, State: state, MSN: "TETCB", Value: value},
			seds.Record{Year: 2020, State: state, MSN: "TETCB", Value: value + 1},
		)
	}

	entries := StateMomentum(records)
	require.Len(t, entries, 5)
	assert.Equal(t, "TX", entries[0].State)
	assert.Equal(t, "PA", entries[4].State)
}
