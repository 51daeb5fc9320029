package dashboard

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/gridlens/gridlens/app/dashboard/controller"
	"github.com/gridlens/gridlens/app/dashboard/types"
	"github.com/gridlens/gridlens/pkg/utils"
)

// NewServer builds the router and attaches the HTTP server to the app.
func NewServer(app *types.App) error {
	ctler := controller.NewController(app)
	router, err := ctler.NewRouter()
	if err != nil {
		return err
	}

	// Dataset refreshes are pushed out to connected dashboard clients.
	app.OnReload(func(version uint64) {
		ctler.Hub.Broadcast(controller.ServerEvent{
			Type:    "dataset.reloaded",
			Payload: map[string]uint64{"version": version},
		})
	})

	// use <ip>:<port> to bind to a specific interface or :<port> to bind to all interfaces
	addr := utils.Env("ADDR", ":3001")

	app.Server = &http.Server{Addr: addr, Handler: controller.WithCORS(router)}
	app.Logger.Info("Starting server", zap.String("addr", addr))

	return nil
}
