package metrics

import "github.com/gridlens/gridlens/pkg/mer"

// KPISummary is the headline row of the dashboard. ConsumptionDeltaPct and
// HighestState are nil when the underlying series cannot support them.
type KPISummary struct {
	TotalConsumption    float64     `json:"totalConsumption"`
	StateCount          int         `json:"stateCount"`
	ConsumptionDeltaPct *float64    `json:"consumptionDeltaPct"`
	HighestState        *StateValue `json:"highestState"`
	TopFiveShare        float64     `json:"topFiveShare"`
}

// BuildKPI computes the summary from the sorted state series and the
// national trend. Either input being empty yields nil; the caller renders a
// "no data" affordance instead.
func BuildKPI(stateSeries []StateValue, national []mer.Point) *KPISummary {
	if len(stateSeries) == 0 || len(national) == 0 {
		return nil
	}

	var total float64
	for _, s := range stateSeries {
		total += s.Consumption
	}

	top := stateSeries[0]

	topFive := stateSeries
	if len(topFive) > 5 {
		topFive = topFive[:5]
	}
	var topFiveTotal float64
	for _, s := range topFive {
		topFiveTotal += s.Consumption
	}
	topFiveShare := 0.0
	if total != 0 {
		topFiveShare = topFiveTotal / total
	}

	return &KPISummary{
		TotalConsumption:    total,
		StateCount:          len(stateSeries),
		ConsumptionDeltaPct: mer.YoYDeltaPct(national),
		HighestState:        &top,
		TopFiveShare:        topFiveShare,
	}
}
