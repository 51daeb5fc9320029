package controller

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/gridlens/gridlens/pkg/metrics"
	"github.com/gridlens/gridlens/pkg/seds"
)

// HandleSnapshot recomputes every derived panel over the current dataset.
// Endpoint: GET /api/snapshot?year=<startYear>&fuelMixYear=<year>
func (c *Controller) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	opts := metrics.SnapshotOptions{}
	qs := r.URL.Query()
	if v := qs.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year value")
			return
		}
		opts.StartYear = year
	}
	if v := qs.Get("fuelMixYear"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid fuelMixYear value")
			return
		}
		opts.FuelMixYear = year
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

	snap, err := metrics.BuildSnapshot(records, c.App.National, opts)
	if err != nil {
		// A failed panel keeps its empty shape; the rest still render.
		c.App.Logger.Warn("Snapshot panel failed", zap.Error(err))
	}

	writeJSON(w, http.StatusOK, snap)
}
