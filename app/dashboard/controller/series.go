package controller

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gridlens/gridlens/pkg/seds"
)

// SeriesInfo describes one MSN series present in the dataset.
type SeriesInfo struct {
	MSN         string `json:"msn"`
	Description string `json:"description,omitempty"`
	Unit        string `json:"unit,omitempty"`
	Count       int    `json:"count"`
}

// HandleSeries lists the distinct MSN codes in the loaded dataset, for
// clients building metric pickers.
// Endpoint: GET /api/series
func (c *Controller) HandleSeries(w http.ResponseWriter, r *http.Request) {
	records, err := c.App.Seds.Records()
	if errors.Is(err, seds.ErrLoading) {
		writeError(w, http.StatusServiceUnavailable, "SEDS dataset is still loading.")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "SEDS dataset failed to load.")
		return
	}

	byMSN := make(map[string]*SeriesInfo)
	for _, rec := range records {
		info, ok := byMSN[rec.MSN]
		if !ok {
			info = &SeriesInfo{MSN: rec.MSN, Description: rec.Description, Unit: rec.Unit}
			byMSN[rec.MSN] = info
		}
		info.Count++
		if info.Description == "" {
			info.Description = rec.Description
		}
		if info.Unit == "" {
			info.Unit = rec.Unit
		}
	}

	out := make([]SeriesInfo, 0, len(byMSN))
	for _, info := range byMSN {
		out = append(out, *info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MSN < out[j].MSN })

	writeJSON(w, http.StatusOK, map[string]any{"series": out})
}
