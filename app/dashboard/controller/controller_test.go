package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-jose/go-jose/v4/json"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/gridlens/gridlens/app/dashboard/types"
	"github.com/gridlens/gridlens/pkg/assistant"
	"github.com/gridlens/gridlens/pkg/mer"
	"github.com/gridlens/gridlens/pkg/seds"
)

// stubProvider is a canned chat backend for handler tests.
type stubProvider struct {
	text string
	err  error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Chat(context.Context, string, string) (string, error) {
	return s.text, s.err
}

func newTestController(t *testing.T, provider assistant.Provider) *Controller {
	t.Helper()
	logger := zaptest.NewLogger(t)
	app := &types.App{
		Seds:       seds.NewStore(logger),
		QueryCache: xsync.NewMap[string, []byte](),
		Logger:     logger,
	}
	if provider == nil {
		provider = &stubProvider{text: "stub answer"}
	}
	return &Controller{
		App:    app,
		Bridge: assistant.NewBridge(provider, logger),
		Hub:    NewHub(logger),
	}
}

func loadTestDataset(c *Controller) {
	c.App.Seds.Replace([]seds.Record{
		{Year: 2019, State: "TX", MSN: "TETCB", Value: 100},
		{Year: 2020, State: "TX", MSN: "TETCB", Value: 120},
		{Year: 2020, State: "CA", MSN: "TETCB", Value: 80},
	})
	c.App.National = []mer.Point{
		{Year: 2019, Consumption: 50},
		{Year: 2020, Consumption: 52},
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}

func TestRouterRoutes(t *testing.T) {
	c := newTestController(t, nil)
	loadTestDataset(c)
	router, err := c.NewRouter()
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/series", http.StatusOK},
		{http.MethodGet, "/api/snapshot", http.StatusOK},
		{http.MethodGet, "/api/query", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/ask", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.status, rec.Code, "%s %s", tt.method, tt.path)
	}
}

func TestWithCORS(t *testing.T) {
	handler := WithCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("echoes origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("wildcard without origin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/query", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
