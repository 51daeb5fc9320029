package metrics

import (
	"github.com/alitto/pond/v2"

	"github.com/gridlens/gridlens/pkg/mer"
	"github.com/gridlens/gridlens/pkg/seds"
)

// SnapshotOptions narrows the snapshot. StartYear keeps only records and
// national points from that year on; FuelMixYear pins the donut to one
// modeled year. Zero values mean "all years" / "latest".
type SnapshotOptions struct {
	StartYear   int
	FuelMixYear int
}

// Snapshot bundles every derived panel of the dashboard for one request.
// Panels are independent: an empty input leaves its panel in the empty shape
// while the rest are populated.
type Snapshot struct {
	KPI            *KPISummary      `json:"kpi"`
	NationalTrend  []mer.Point      `json:"nationalTrend"`
	FuelTrend      []FuelTrendPoint `json:"fuelTrend"`
	FuelMix        []FuelMixEntry   `json:"fuelMix"`
	StateSeries    []StateValue     `json:"stateSeries"`
	Flows          *FlowGraph       `json:"flows"`
	Heatmap        Heatmap          `json:"heatmap"`
	TopStateShare  []YearShare      `json:"topStateShare"`
	Momentum       []MomentumEntry  `json:"momentum"`
	PetroleumMap   []PetroleumValue `json:"petroleumMap"`
	ContextSummary string           `json:"contextSummary"`
}

const snapshotWorkers = 4

// BuildSnapshot recomputes every panel from scratch over the raw record set
// and the national series. The panels fan out on a bounded worker pool; each
// writes only its own fields, and a failing panel surfaces through the
// returned error without blocking the others.
func BuildSnapshot(records []seds.Record, national []mer.Point, opts SnapshotOptions) (*Snapshot, error) {
	universe := StateUniverse(records)
	filtered := SinceYear(universe, opts.StartYear)
	nationalFiltered := mer.Since(national, opts.StartYear)

	stateSeries := StateSeries(filtered)

	snap := &Snapshot{
		NationalTrend: nationalFiltered,
		FuelTrend:     []FuelTrendPoint{},
		FuelMix:       []FuelMixEntry{},
		StateSeries:   stateSeries,
		Heatmap:       Heatmap{Years: []int{}, Rows: []HeatmapRow{}},
		TopStateShare: []YearShare{},
		Momentum:      []MomentumEntry{},
		PetroleumMap:  []PetroleumValue{},
	}

	pool := pond.NewPool(snapshotWorkers)
	defer pool.StopAndWait()
	group := pool.NewGroup()

	group.Submit(func() {
		snap.KPI = BuildKPI(stateSeries, national)
	})
	group.Submit(func() {
		snap.FuelTrend = FuelTrend(nationalFiltered)
	})
	group.Submit(func() {
		snap.FuelMix = fuelMixPanel(national, nationalFiltered, opts.FuelMixYear)
	})
	group.Submit(func() {
		var total float64
		for _, s := range stateSeries {
			total += s.Consumption
		}
		snap.Flows = BuildFlows(total)
	})
	group.Submit(func() {
		snap.Heatmap = BuildHeatmap(filtered)
	})
	group.Submit(func() {
		// Ranking panels read the unfiltered universe so a year filter does
		// not hide the historical baseline they compare against.
		snap.TopStateShare = TopStateShare(universe, national)
	})
	group.Submit(func() {
		snap.Momentum = StateMomentum(universe)
	})
	group.Submit(func() {
		snap.PetroleumMap = PetroleumMap(stateSeries)
	})

	err := group.Wait()

	top := stateSeries
	if len(top) > 5 {
		top = top[:5]
	}
	snap.ContextSummary = ContextSummary(snap.KPI, top, mer.Latest(nationalFiltered))

	return snap, err
}

func fuelMixPanel(national, nationalFiltered []mer.Point, year int) []FuelMixEntry {
	if year != 0 {
		if mix := FuelMixForYear(nationalFiltered, year); len(mix) > 0 {
			return mix
		}
	}
	return LatestFuelMix(national)
}
