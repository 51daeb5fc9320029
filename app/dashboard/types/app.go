package types

import (
	"context"
	"net/http"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/gridlens/gridlens/pkg/mer"
	redisx "github.com/gridlens/gridlens/pkg/redis"
	"github.com/gridlens/gridlens/pkg/seds"
)

// App carries the dashboard service's shared state.
type App struct {
	// Seds is the process-lifetime SEDS dataset store.
	Seds *seds.Store
	// SedsPath is re-read on every scheduled refresh.
	SedsPath string
	// National is the MER annual series, loaded once at startup.
	National []mer.Point

	// QueryCache holds encoded aggregate responses keyed by dataset version
	// and filter signature.
	QueryCache *xsync.Map[string, []byte]
	// Redis is the optional shared cache tier; nil when disabled.
	Redis *redisx.Client

	// Cron drives the optional dataset refresh. Nil when no schedule is set.
	Cron     *cron.Cron
	CronSpec string

	// Zap Logger
	Logger *zap.Logger
	// Server is the HTTP server instance handling incoming client requests.
	Server *http.Server

	// reloadHooks run after every successful dataset refresh.
	reloadHooks []func(version uint64)
}

// OnReload registers a hook invoked after each successful refresh. Register
// before Start; hooks run on the cron goroutine.
func (a *App) OnReload(hook func(version uint64)) {
	a.reloadHooks = append(a.reloadHooks, hook)
}

// Refresh re-parses the dataset file and, on success, clears the response
// cache and notifies the hooks. A failed refresh keeps the previous dataset.
func (a *App) Refresh() {
	if err := a.Seds.LoadFile(a.SedsPath); err != nil {
		return
	}
	a.QueryCache.Clear()
	version := a.Seds.Version()
	for _, hook := range a.reloadHooks {
		hook(version)
	}
}

// SetupScheduler wires the refresh schedule. An empty spec disables it.
func (a *App) SetupScheduler(spec string) error {
	if spec == "" {
		return nil
	}
	a.CronSpec = spec
	a.Cron = cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cron.DefaultLogger)))
	if _, err := a.Cron.AddFunc(spec, a.Refresh); err != nil {
		return err
	}
	return nil
}

// Start runs the server until ctx is cancelled, then shuts everything down.
func (a *App) Start(ctx context.Context) {
	if a.Cron != nil {
		a.Cron.Start()
		a.Logger.Info("Dataset refresh scheduled", zap.String("cronSpec", a.CronSpec))
	}

	go func() { _ = a.Server.ListenAndServe() }()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if a.Cron != nil {
		a.Cron.Stop()
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}

	_ = a.Server.Shutdown(shutdownCtx)
	a.Logger.Info("Dashboard stopped")
}
