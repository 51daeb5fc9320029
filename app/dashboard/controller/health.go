package controller

import (
	"errors"
	"net/http"

	"github.com/gridlens/gridlens/pkg/seds"
)

// HandleHealth reports liveness plus the dataset's load state so probes can
// tell "warming up" from "broken".
func (c *Controller) HandleHealth(w http.ResponseWriter, r *http.Request) {
	records, err := c.App.Seds.Records()

	dataset := "ready"
	status := http.StatusOK
	switch {
	case errors.Is(err, seds.ErrLoading):
		dataset = "loading"
	case errors.Is(err, seds.ErrUnavailable):
		dataset = "failed"
		status = http.StatusInternalServerError
	}

	payload := map[string]any{
		"status":  "ok",
		"dataset": dataset,
	}
	if err == nil {
		payload["records"] = len(records)
		payload["version"] = c.App.Seds.Version()
	}
	if status != http.StatusOK {
		payload["status"] = "errored"
	}

	if c.App.Redis != nil {
		if redisErr := c.App.Redis.Health(r.Context()); redisErr != nil {
			payload["cache"] = "unreachable"
		} else {
			payload["cache"] = "ok"
		}
	}

	writeJSON(w, status, payload)
}
