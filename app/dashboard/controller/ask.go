package controller

import (
	"net/http"
	"strings"

	"github.com/go-jose/go-jose/v4/json"
	"go.uber.org/zap"

	"github.com/gridlens/gridlens/pkg/assistant"
	"github.com/gridlens/gridlens/pkg/metrics"
)

// AskRequest carries the free-text question and, optionally, the client's
// pre-computed context summary.
type AskRequest struct {
	Query          string `json:"query"`
	ContextSummary string `json:"contextSummary"`
}

// AskResponse pairs the answer with the detected UI directives. The two are
// independent: the directives come from keyword scanning of the raw query
// and are emitted whether the chat provider succeeded or not.
type AskResponse struct {
	Answer   string             `json:"answer"`
	Fallback bool               `json:"fallback"`
	Actions  []assistant.Action `json:"actions"`
}

// HandleAsk proxies a natural-language question to the chat provider.
// Endpoint: POST /api/ask
func (c *Controller) HandleAsk(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeError(w, http.StatusBadRequest, "Query text is required.")
		return
	}

	summary := strings.TrimSpace(req.ContextSummary)
	if summary == "" {
		summary = c.serverSummary()
	}

	answer := c.Bridge.Ask(r.Context(), query, summary)

	writeJSON(w, http.StatusOK, AskResponse{
		Answer:   answer.Text,
		Fallback: answer.Fallback,
		Actions:  assistant.DetectActions(query),
	})
}

// serverSummary builds the context summary from the server's own dataset
// when the client did not send one. Best effort: any dataset condition just
// yields an empty summary.
func (c *Controller) serverSummary() string {
	records, err := c.App.Seds.Records()
	if err != nil {
		return ""
	}
	snap, err := metrics.BuildSnapshot(records, c.App.National, metrics.SnapshotOptions{})
	if err != nil {
		c.App.Logger.Warn("Snapshot panel failed while building ask context", zap.Error(err))
	}
	if snap == nil {
		return ""
	}
	return snap.ContextSummary
}
