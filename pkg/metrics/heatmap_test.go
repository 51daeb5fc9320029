package metrics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlens/gridlens/pkg/seds"
)

func TestBuildHeatmapEmpty(t *testing.T) {
	hm := BuildHeatmap(nil)
	assert.NotNil(t, hm.Years)
	assert.NotNil(t, hm.Rows)
	assert.Empty(t, hm.Years)
	assert.Empty(t, hm.Rows)
	assert.Zero(t, hm.MaxValue)
}

func TestBuildHeatmapMissingCellIsNullNotZero(t *testing.T) {
	records := []seds.Record{
		{Year: 2019, State: "TX", MSN: "TETCB", Value: 100},
		{Year: 2020, State: "TX", MSN: "TETCB", Value: 110},
		{Year: 2020, State: "CA", MSN: "TETCB", Value: 0},
	}

	hm := BuildHeatmap(records)
	require.Equal(t, []int{2019, 2020}, hm.Years)
	require.Len(t, hm.Rows, 2)

	tx := hm.Rows[0]
	assert.Equal(t, "TX", tx.State)
	require.NotNil(t, tx.Values[0].Value)
	assert.InDelta(t, 100.0, *tx.Values[0].Value, 1e-9)

	ca := hm.Rows[1]
	assert.Equal(t, "CA", ca.State)
	// CA has no 2019 record at all, but an observed zero for 2020.
	assert.Nil(t, ca.Values[0].Value)
	require.NotNil(t, ca.Values[1].Value)
	assert.Zero(t, *ca.Values[1].Value)

	assert.InDelta(t, 110.0, hm.MaxValue, 1e-9)
}

func TestBuildHeatmapWindows(t *testing.T) {
	records := make([]seds.Record, 0, 120)
	for year := 2005; year <= 2020; year++ {
		for i := 0; i < 10; i++ {
			records = append(records, seds.Record{
				Year:  year,
				State: fmt.Sprintf("S%02d", i),
				MSN:   "TETCB",
				Value: float64(100 - i),
			})
		}
	}

	hm := BuildHeatmap(records)
	// Last ten distinct years, top eight states.
	require.Len(t, hm.Years, 10)
	assert.Equal(t, 2011, hm.Years[0])
	assert.Equal(t, 2020, hm.Years[9])
	require.Len(t, hm.Rows, 8)
	assert.Equal(t, "S00", hm.Rows[0].State)
	for _, row := range hm.Rows {
		assert.Len(t, row.Values, 10)
	}
}
