package dashboard

import (
	"context"

	"github.com/puzpuzpuz/xsync/v4"
	"go.uber.org/zap"

	"github.com/gridlens/gridlens/app/dashboard/types"
	"github.com/gridlens/gridlens/pkg/logging"
	"github.com/gridlens/gridlens/pkg/mer"
	redisx "github.com/gridlens/gridlens/pkg/redis"
	"github.com/gridlens/gridlens/pkg/seds"
	"github.com/gridlens/gridlens/pkg/utils"
)

// Initialize initializes the application.
func Initialize(ctx context.Context) *types.App {
	logger, err := logging.New()
	if err != nil {
		// nothing else to do here, we'll just log to stderr
		panic(err)
	}

	sedsPath := utils.Env("SEDS_PATH", "data/Complete_SEDS.csv")
	merPath := utils.Env("MER_PATH", "data/mer_annual.csv")

	// The MER series is small; load it synchronously. A missing file leaves
	// the national panels empty without taking the service down.
	national, natErr := mer.LoadFile(merPath)
	if natErr != nil {
		logger.Warn("National series unavailable, MER panels will be empty",
			zap.String("path", merPath), zap.Error(natErr))
		national = []mer.Point{}
	} else {
		logger.Info("National series loaded",
			zap.String("path", merPath), zap.Int("years", len(national)))
	}

	store := seds.NewStore(logger)
	// The SEDS file is large; parse it in the background so the server comes
	// up immediately and reports the loading state until the parse lands.
	go func() { _ = store.LoadFile(sedsPath) }()

	// Optional shared cache tier for aggregate responses.
	var redisClient *redisx.Client
	if utils.Env("REDIS_ENABLED", "false") == "true" {
		redisClient, err = redisx.NewClient(ctx, logger)
		if err != nil {
			logger.Warn("Failed to initialize Redis client - falling back to in-process cache only",
				zap.Error(err))
			redisClient = nil
		}
	}

	app := &types.App{
		Seds:       store,
		SedsPath:   sedsPath,
		National:   national,
		QueryCache: xsync.NewMap[string, []byte](),
		Redis:      redisClient,
		Logger:     logger,
	}

	if err := app.SetupScheduler(utils.Env("REFRESH_CRON", "")); err != nil {
		logger.Warn("Invalid refresh schedule, refresh disabled", zap.Error(err))
	}

	return app
}
