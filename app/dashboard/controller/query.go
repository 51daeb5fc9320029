package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-jose/go-jose/v4/json"

	"github.com/gridlens/gridlens/pkg/aggregate"
	"github.com/gridlens/gridlens/pkg/seds"
)

// QueryRequest is the aggregate-query body. Zero values mean "no filter";
// msn is required.
type QueryRequest struct {
	MSN       string `json:"msn"`
	State     string `json:"state"`
	YearStart int    `json:"yearStart"`
	YearEnd   int    `json:"yearEnd"`
	GroupBy   string `json:"groupBy"`
}

// QueryResponse echoes the effective filter alongside the sorted buckets.
// Unset filters come back as null, matching what clients sent.
type QueryResponse struct {
	Count     int                `json:"count"`
	Grouping  string             `json:"grouping"`
	MSN       string             `json:"msn"`
	State     *string            `json:"state"`
	YearStart *int               `json:"yearStart"`
	YearEnd   *int               `json:"yearEnd"`
	Results   []aggregate.Result `json:"results"`
}

// HandleQuery filters and groups the SEDS dataset.
// Endpoint: POST /api/query
func (c *Controller) HandleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.MSN == "" {
		writeError(w, http.StatusBadRequest, "Parameter 'msn' is required.")
		return
	}

	groupBy := aggregate.GroupBy(req.GroupBy)
	if req.GroupBy == "" {
		groupBy = aggregate.GroupByState
	}
	if !groupBy.Valid() {
		writeError(w, http.StatusBadRequest, "Parameter 'groupBy' must be \"state\" or \"year\".")
		return
	}

	records, err := c.App.Seds.Records()
	if errors.Is(err, seds.ErrLoading) {
		writeError(w, http.StatusServiceUnavailable, "SEDS dataset is still loading.")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "SEDS dataset failed to load.")
		return
	}

	key := fmt.Sprintf("query:v%d:%s:%s:%d:%d:%s",
		c.App.Seds.Version(), req.MSN, req.State, req.YearStart, req.YearEnd, groupBy)
	if payload, ok := c.cachedQuery(r, key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
		return
	}

	opts := aggregate.Options{
		MSN:       req.MSN,
		State:     req.State,
		YearStart: req.YearStart,
		YearEnd:   req.YearEnd,
		GroupBy:   groupBy,
	}

	resp := QueryResponse{
		Count:    aggregate.Count(records, opts),
		Grouping: string(groupBy),
		MSN:      req.MSN,
		Results:  aggregate.Aggregate(records, opts),
	}
	if req.State != "" {
		resp.State = &req.State
	}
	if req.YearStart != 0 {
		resp.YearStart = &req.YearStart
	}
	if req.YearEnd != 0 {
		resp.YearEnd = &req.YearEnd
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Query processing failed.")
		return
	}

	c.storeQuery(r, key, payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// cachedQuery checks the in-process tier first, then Redis.
func (c *Controller) cachedQuery(r *http.Request, key string) ([]byte, bool) {
	if payload, ok := c.App.QueryCache.Load(key); ok {
		return payload, true
	}
	if c.App.Redis != nil {
		if payload, ok := c.App.Redis.Get(r.Context(), key); ok {
			c.App.QueryCache.Store(key, payload)
			return payload, true
		}
	}
	return nil, false
}

func (c *Controller) storeQuery(r *http.Request, key string, payload []byte) {
	c.App.QueryCache.Store(key, payload)
	if c.App.Redis != nil {
		c.App.Redis.Set(r.Context(), key, payload, 0)
	}
}
