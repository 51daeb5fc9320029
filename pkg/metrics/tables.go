package metrics

// The tables below are illustrative planning figures, not measured EIA data.
// They drive the fuel-mix decomposition and the flow cascade; keep the
// constants stable so derived charts stay comparable across releases.

// FuelShare pairs a fuel category with a proportional share.
type FuelShare struct {
	Name  string  `json:"name"`
	Share float64 `json:"share"`
}

// Base national fuel mix.
var fuelMix = []FuelShare{
	{Name: "Petroleum & liquids", Share: 0.36},
	{Name: "Natural gas", Share: 0.32},
	{Name: "Coal", Share: 0.11},
	{Name: "Nuclear", Share: 0.08},
	{Name: "Renewables", Share: 0.13},
}

// Per-fuel linear share drift per year, centered on trendCenterYear.
var fuelTrends = map[string]float64{
	"Petroleum & liquids": -0.001,
	"Natural gas":         0.0008,
	"Coal":                -0.0009,
	"Nuclear":             -0.0002,
	"Renewables":          0.0013,
}

const (
	trendCenterYear = 2000
	// minFuelShare keeps a category's modeled share from extrapolating to
	// zero or negative at chart time horizons.
	minFuelShare = 0.02
)

// fuelToSector splits each fuel across consuming sectors.
var fuelToSector = map[string][]FuelShare{
	"Petroleum & liquids": {
		{Name: "Transportation", Share: 0.65},
		{Name: "Industrial", Share: 0.25},
		{Name: "Commercial", Share: 0.1},
	},
	"Natural gas": {
		{Name: "Electric power", Share: 0.45},
		{Name: "Industrial", Share: 0.3},
		{Name: "Residential", Share: 0.15},
		{Name: "Commercial", Share: 0.1},
	},
	"Coal": {
		{Name: "Electric power", Share: 0.88},
		{Name: "Industrial", Share: 0.12},
	},
	"Nuclear": {
		{Name: "Electric power", Share: 1},
	},
	"Renewables": {
		{Name: "Electric power", Share: 0.55},
		{Name: "Industrial", Share: 0.15},
		{Name: "Commercial", Share: 0.1},
		{Name: "Residential", Share: 0.2},
	},
}

// sectorToUse splits each sector across end uses.
var sectorToUse = map[string][]FuelShare{
	"Transportation": {
		{Name: "Passenger travel", Share: 0.7},
		{Name: "Freight & logistics", Share: 0.3},
	},
	"Industrial": {
		{Name: "Manufacturing", Share: 0.6},
		{Name: "Resource extraction", Share: 0.4},
	},
	"Commercial": {
		{Name: "Services", Share: 0.7},
		{Name: "Buildings", Share: 0.3},
	},
	"Residential": {
		{Name: "Heating & cooling", Share: 0.6},
		{Name: "Appliances", Share: 0.4},
	},
	"Electric power": {
		{Name: "Grid supply", Share: 0.8},
		{Name: "Distributed", Share: 0.2},
	},
}

// Curated petroleum share of each state's total consumption, used for the
// petroleum choropleth overlay.
var petroleumShareByState = map[string]float64{
	"TX": 0.48,
	"CA": 0.38,
	"LA": 0.52,
	"FL": 0.35,
	"NY": 0.32,
	"PA": 0.31,
	"IL": 0.34,
	"OH": 0.33,
	"GA": 0.36,
	"MI": 0.29,
	"WA": 0.27,
	"NC": 0.32,
	"NJ": 0.33,
	"AZ": 0.31,
	"VA": 0.28,
	"TN": 0.34,
	"MA": 0.26,
	"AL": 0.36,
	"IN": 0.35,
	"MO": 0.33,
}

const defaultPetroleumShare = 0.3

// FuelNames returns the fuel categories in table order.
func FuelNames() []string {
	names := make([]string, len(fuelMix))
	for i, f := range fuelMix {
		names[i] = f.Name
	}
	return names
}
