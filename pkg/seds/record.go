package seds

import (
	"math"
	"strconv"
	"strings"
)

// Record is one normalized SEDS observation: a yearly value for a single
// state and MSN series code. Description and Unit are informational and may
// be empty; Year, State, MSN and Value are always populated.
type Record struct {
	Year        int     `json:"year"`
	State       string  `json:"state"`
	MSN         string  `json:"msn"`
	Description string  `json:"description,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Value       float64 `json:"value"`
}

// Column aliases accepted across SEDS file revisions. The first header
// present wins.
var (
	yearColumns  = []string{"Year"}
	stateColumns = []string{"State", "StateCode"}
	msnColumns   = []string{"MSN", "Code"}
	descColumns  = []string{"Description"}
	unitColumns  = []string{"Unit", "Units"}
	valueColumns = []string{"Data", "Value", "Amount"}
)

// columnIndex maps the logical record fields onto positions in a concrete
// CSV header.
type columnIndex struct {
	year  int
	state int
	msn   int
	desc  int
	unit  int
	value int
}

func resolveColumns(header []string) columnIndex {
	find := func(aliases []string) int {
		for _, alias := range aliases {
			for i, name := range header {
				if strings.TrimSpace(name) == alias {
					return i
				}
			}
		}
		return -1
	}
	return columnIndex{
		year:  find(yearColumns),
		state: find(stateColumns),
		msn:   find(msnColumns),
		desc:  find(descColumns),
		unit:  find(unitColumns),
		value: find(valueColumns),
	}
}

// usable reports whether the header carries every required field.
func (c columnIndex) usable() bool {
	return c.year >= 0 && c.state >= 0 && c.msn >= 0 && c.value >= 0
}

func (c columnIndex) field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// normalize turns one raw CSV row into a Record. Rows missing the year,
// state, series code or a parseable finite value are rejected; parsing fails
// closed rather than coercing bad values to zero.
func (c columnIndex) normalize(row []string) (Record, bool) {
	yearText := c.field(row, c.year)
	state := c.field(row, c.state)
	msn := c.field(row, c.msn)
	valueText := c.field(row, c.value)

	if yearText == "" || state == "" || msn == "" || valueText == "" {
		return Record{}, false
	}

	year, err := strconv.Atoi(yearText)
	if err != nil || year == 0 {
		return Record{}, false
	}

	value, err := strconv.ParseFloat(valueText, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return Record{}, false
	}

	return Record{
		Year:        year,
		State:       state,
		MSN:         msn,
		Description: c.field(row, c.desc),
		Unit:        c.field(row, c.unit),
		Value:       value,
	}, true
}
