package aggregate

import (
	"sort"
	"strconv"

	"github.com/gridlens/gridlens/pkg/seds"
)

// GroupBy selects the aggregation key.
type GroupBy string

const (
	GroupByState GroupBy = "state"
	GroupByYear  GroupBy = "year"
)

// Valid reports whether g is a known grouping; the empty string defaults to
// state at the call sites.
func (g GroupBy) Valid() bool {
	return g == GroupByState || g == GroupByYear
}

// Options filters and groups a record set. Zero values mean "no filter":
// empty MSN/State match everything, a zero year bound is open-ended.
type Options struct {
	MSN       string
	State     string
	YearStart int
	YearEnd   int
	GroupBy   GroupBy
}

// Result is one aggregation bucket: the summed value for a state code or a
// year rendered as a string key.
type Result struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Matches applies the filter half of Options to a single record.
func Matches(r seds.Record, opts Options) bool {
	if opts.MSN != "" && r.MSN != opts.MSN {
		return false
	}
	if opts.State != "" && r.State != opts.State {
		return false
	}
	if opts.YearStart != 0 && r.Year < opts.YearStart {
		return false
	}
	if opts.YearEnd != 0 && r.Year > opts.YearEnd {
		return false
	}
	return true
}

// Aggregate sums the values of matching records per key and returns the
// buckets sorted descending by value. Ties keep the key order in which the
// records were first seen; downstream top-N consumers rely on this ordering,
// so it is applied here rather than left to the caller. An empty filtered
// set yields an empty, non-nil slice.
func Aggregate(records []seds.Record, opts Options) []Result {
	groupBy := opts.GroupBy
	if !groupBy.Valid() {
		groupBy = GroupByState
	}

	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, r := range records {
		if !Matches(r, opts) {
			continue
		}
		key := r.State
		if groupBy == GroupByYear {
			key = strconv.Itoa(r.Year)
		}
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += r.Value
	}

	results := make([]Result, 0, len(order))
	for _, key := range order {
		results = append(results, Result{Key: key, Value: totals[key]})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Value > results[j].Value
	})
	return results
}

// Count returns the number of records matching the filter, which the query
// API reports alongside the buckets.
func Count(records []seds.Record, opts Options) int {
	n := 0
	for _, r := range records {
		if Matches(r, opts) {
			n++
		}
	}
	return n
}

// Sum adds up the bucket values.
func Sum(results []Result) float64 {
	var total float64
	for _, r := range results {
		total += r.Value
	}
	return total
}
