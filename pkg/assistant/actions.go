package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

// Action is one UI-state change directive emitted by the intent detector.
// Directives are independently applicable; a response may carry several and
// consumers apply each on its own.
type Action struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Directive types understood by the dashboard client.
const (
	ActionSetTheme              = "setTheme"
	ActionSetYear               = "setYear"
	ActionSetMapMetric          = "setMapMetric"
	ActionSetMapRange           = "setMapRange"
	ActionSetDistributionMetric = "setDistributionMetric"
	ActionSetDistributionYear   = "setDistributionYear"
	ActionSetFuelMixYear        = "setFuelMixYear"
)

// YearRange is the setMapRange payload; nil bounds mean "open".
type YearRange struct {
	Start *int `json:"start"`
	End   *int `json:"end"`
}

var yearPattern = regexp.MustCompile(`(19|20)\d{2}`)

// DetectActions scans a raw query for keyword triggers and returns the UI
// directives it implies. This is a best-effort, order-sensitive classifier:
// "fuel mix" wording suppresses the plain fuel-name match on the
// distribution panel, and a fuel-specific distribution request is mirrored
// onto the map for clarity. It runs independently of the chat path.
func DetectActions(query string) []Action {
	actions := make([]Action, 0, 4)
	normalized := strings.ToLower(query)

	contains := func(subs ...string) bool {
		for _, sub := range subs {
			if strings.Contains(normalized, sub) {
				return true
			}
		}
		return false
	}

	mentionsMap := contains("map", "choropleth")
	mentionsDistribution := contains("distribution", "stacked")
	mentionsDonut := contains("donut", "doughnut", "ring chart")
	mentionsFuelMix := contains("fuel mix", "mix chart") || mentionsDonut
	mentionsPetroleum := contains("petroleum", "oil")
	mentionsGas := contains("natural gas", "gas")
	mentionsNuclear := contains("nuclear")
	mentionsTotal := contains("total", "all fuels")

	if contains("dark mode", "dark theme") {
		actions = append(actions, Action{Type: ActionSetTheme, Value: "dark"})
	} else if contains("light mode", "light theme") {
		actions = append(actions, Action{Type: ActionSetTheme, Value: "light"})
	}

	if contains("all years") {
		actions = append(actions,
			Action{Type: ActionSetYear, Value: nil},
			Action{Type: ActionSetDistributionYear, Value: nil},
			Action{Type: ActionSetMapRange, Value: YearRange{}},
		)
	}

	var year *int
	if match := yearPattern.FindString(normalized); match != "" {
		if n, err := strconv.Atoi(match); err == nil {
			year = &n
		}
	}
	if year != nil {
		actions = append(actions,
			Action{Type: ActionSetYear, Value: *year},
			Action{Type: ActionSetDistributionYear, Value: *year},
			Action{Type: ActionSetMapRange, Value: YearRange{Start: year, End: year}},
		)
	}

	if mentionsMap {
		switch {
		case mentionsPetroleum:
			actions = append(actions, Action{Type: ActionSetMapMetric, Value: "petroleum"})
		case mentionsGas:
			actions = append(actions, Action{Type: ActionSetMapMetric, Value: "gas"})
		case mentionsNuclear:
			actions = append(actions, Action{Type: ActionSetMapMetric, Value: "nuclear"})
		case mentionsTotal:
			actions = append(actions, Action{Type: ActionSetMapMetric, Value: "total"})
		}
	} else if (mentionsPetroleum || mentionsGas || mentionsNuclear) && !mentionsFuelMix && mentionsDistribution {
		// A fuel-specific distribution request is mirrored on the map.
		metric := "nuclear"
		if mentionsPetroleum {
			metric = "petroleum"
		} else if mentionsGas {
			metric = "gas"
		}
		actions = append(actions, Action{Type: ActionSetMapMetric, Value: metric})
	}

	if mentionsDistribution {
		switch {
		case mentionsPetroleum && !mentionsFuelMix:
			actions = append(actions, Action{Type: ActionSetDistributionMetric, Value: "petroleum"})
		case mentionsGas && !mentionsFuelMix:
			actions = append(actions, Action{Type: ActionSetDistributionMetric, Value: "gas"})
		case mentionsTotal:
			actions = append(actions, Action{Type: ActionSetDistributionMetric, Value: "total"})
		}
	}

	if mentionsFuelMix {
		if year != nil {
			actions = append(actions, Action{Type: ActionSetFuelMixYear, Value: *year})
		} else if contains("latest", "current") {
			actions = append(actions, Action{Type: ActionSetFuelMixYear, Value: nil})
		}
	}

	return actions
}
