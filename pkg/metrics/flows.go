package metrics

// FlowLink is one edge of the fuel -> sector -> end-use cascade.
type FlowLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// FlowGraph feeds the Sankey panel. Node names are unique across all three
// levels; for every intermediate node the incoming and outgoing link values
// balance because the cascade is a pure proportional split of Total.
type FlowGraph struct {
	Nodes []string   `json:"nodes"`
	Links []FlowLink `json:"links"`
	Total float64    `json:"total"`
}

// BuildFlows allocates a total across the fixed proportional tables. This is
// a deterministic three-level split, not a flow solver; downstream values
// derive purely from upstream totals and fixed ratios. A zero or negative
// total yields nil.
func BuildFlows(total float64) *FlowGraph {
	if total <= 0 {
		return nil
	}

	nodeSet := make(map[string]struct{})
	nodes := make([]string, 0, 16)
	addNode := func(name string) {
		if _, ok := nodeSet[name]; ok {
			return
		}
		nodeSet[name] = struct{}{}
		nodes = append(nodes, name)
	}

	links := make([]FlowLink, 0, 32)
	sectorTotals := make(map[string]float64)
	sectorOrder := make([]string, 0, 8)

	for _, fuel := range fuelMix {
		addNode(fuel.Name)
		fuelValue := total * fuel.Share
		for _, sector := range fuelToSector[fuel.Name] {
			addNode(sector.Name)
			sectorValue := fuelValue * sector.Share
			links = append(links, FlowLink{Source: fuel.Name, Target: sector.Name, Value: sectorValue})
			if _, seen := sectorTotals[sector.Name]; !seen {
				sectorOrder = append(sectorOrder, sector.Name)
			}
			sectorTotals[sector.Name] += sectorValue
		}
	}

	for _, sector := range sectorOrder {
		sectorTotal := sectorTotals[sector]
		if sectorTotal == 0 {
			continue
		}
		for _, use := range sectorToUse[sector] {
			addNode(use.Name)
			links = append(links, FlowLink{Source: sector, Target: use.Name, Value: sectorTotal * use.Share})
		}
	}

	return &FlowGraph{Nodes: nodes, Links: links, Total: total}
}
