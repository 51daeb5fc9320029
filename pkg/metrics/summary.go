package metrics

import (
	"fmt"
	"strings"

	"github.com/gridlens/gridlens/pkg/mer"
)

// ContextSummary renders the KPI and top-state figures as prose for the
// assistant. Every number in the text comes from the inputs; the assistant's
// local fallback answer is built from this string alone and therefore never
// invents a figure.
func ContextSummary(kpi *KPISummary, topStatesList []StateValue, latest *mer.Point) string {
	if kpi == nil {
		return ""
	}

	twh := func(v float64) string { return fmt.Sprintf("%.1f TWh", v) }

	parts := make([]string, 0, 8)
	parts = append(parts, fmt.Sprintf("Total consumption: %s.", twh(kpi.TotalConsumption)))
	if latest != nil {
		parts = append(parts, fmt.Sprintf("Latest MER year %d total: %s.", latest.Year, twh(latest.Consumption)))
	}
	if kpi.ConsumptionDeltaPct != nil {
		parts = append(parts, fmt.Sprintf("YoY change: %.1f%%.", *kpi.ConsumptionDeltaPct))
	}
	if kpi.HighestState != nil {
		parts = append(parts, fmt.Sprintf("Top state: %s at %s.", kpi.HighestState.State, twh(kpi.HighestState.Consumption)))
	}
	parts = append(parts, fmt.Sprintf("Top five share: %.1f%%.", kpi.TopFiveShare*100))
	if len(topStatesList) > 0 {
		items := make([]string, 0, len(topStatesList))
		for _, s := range topStatesList {
			items = append(items, fmt.Sprintf("%s (%s)", s.State, twh(s.Consumption)))
		}
		parts = append(parts, fmt.Sprintf("Top states detail: %s.", strings.Join(items, ", ")))
	}
	parts = append(parts, "Dashboard controls: choropleth/state stacked bar can switch between total, petroleum (PATCB), and natural gas (NNTCB) with custom year ranges; fuel mix donut can jump to any MER year. Assume these visual states can be updated as requested.")

	return strings.Join(parts, " ")
}
