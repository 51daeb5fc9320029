package controller

import (
	"net/http"

	"github.com/go-jose/go-jose/v4/json"
	"github.com/gorilla/mux"

	"github.com/gridlens/gridlens/app/dashboard/types"
	"github.com/gridlens/gridlens/pkg/assistant"
	"github.com/gridlens/gridlens/pkg/utils"
)

type Controller struct {
	App    *types.App
	Bridge *assistant.Bridge
	Hub    *Hub
}

// NewController returns a new controller.
func NewController(app *types.App) *Controller {
	return &Controller{
		App:    app,
		Bridge: assistant.NewBridgeFromEnv(app.Logger),
		Hub:    NewHub(app.Logger),
	}
}

// NewRouter returns a new router with all the routes defined in this file.
func (c *Controller) NewRouter() (*mux.Router, error) {
	r := mux.NewRouter()

	r.Handle("/health", http.HandlerFunc(c.HandleHealth)).Methods(http.MethodGet)

	r.HandleFunc("/api/query", c.HandleQuery).Methods(http.MethodPost)
	r.HandleFunc("/api/ask", c.HandleAsk).Methods(http.MethodPost)
	r.HandleFunc("/api/snapshot", c.HandleSnapshot).Methods(http.MethodGet)
	r.HandleFunc("/api/series", c.HandleSeries).Methods(http.MethodGet)
	r.HandleFunc("/api/ws", c.HandleWebSocket).Methods(http.MethodGet)

	// Optionally serve the built dashboard assets.
	if dir := utils.Env("STATIC_DIR", ""); dir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(dir)))
	}

	return r, nil
}

// WithCORS is a middleware that adds CORS headers to the response.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", http.MethodGet+", "+http.MethodPost+", "+http.MethodOptions)

		// Fast-path the preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
