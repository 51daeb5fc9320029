package metrics

// PetroleumValue is a state's estimated petroleum slice of its total
// consumption, for the petroleum map overlay.
type PetroleumValue struct {
	State       string  `json:"state"`
	Consumption float64 `json:"consumption"`
	Share       float64 `json:"share"`
}

// PetroleumMap applies the curated per-state petroleum shares to the state
// series, falling back to the default share for uncurated states.
func PetroleumMap(stateSeries []StateValue) []PetroleumValue {
	out := make([]PetroleumValue, 0, len(stateSeries))
	for _, s := range stateSeries {
		share, ok := petroleumShareByState[s.State]
		if !ok {
			share = defaultPetroleumShare
		}
		out = append(out, PetroleumValue{
			State:       s.State,
			Consumption: s.Consumption * share,
			Share:       share,
		})
	}
	return out
}
