package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/gridlens/gridlens/pkg/seds"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	logger := zaptest.NewLogger(t)
	return &App{
		Seds:       seds.NewStore(logger),
		QueryCache: xsync.NewMap[string, []byte](),
		Logger:     logger,
	}
}

func TestRefresh(t *testing.T) {
	app := newTestApp(t)
	path := filepath.Join(t.TempDir(), "seds.csv")
	require.NoError(t, os.WriteFile(path, []byte("Year,State,MSN,Data\n2020,TX,TETCB,120\n"), 0o644))
	app.SedsPath = path

	app.QueryCache.Store("stale", []byte("{}"))

	var notified []uint64
	app.OnReload(func(version uint64) { notified = append(notified, version) })

	app.Refresh()

	records, err := app.Seds.Records()
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Zero(t, app.QueryCache.Size())
	assert.Equal(t, []uint64{1}, notified)
}

func TestRefreshFailureKeepsCacheAndSkipsHooks(t *testing.T) {
	app := newTestApp(t)
	app.Seds.Replace([]seds.Record{{Year: 2020, State: "TX", MSN: "TETCB", Value: 1}})
	app.SedsPath = filepath.Join(t.TempDir(), "missing.csv")

	app.QueryCache.Store("live", []byte("{}"))
	hookRan := false
	app.OnReload(func(uint64) { hookRan = true })

	app.Refresh()

	assert.Equal(t, 1, app.QueryCache.Size())
	assert.False(t, hookRan)

	records, err := app.Seds.Records()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSetupScheduler(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, app.SetupScheduler(""))
	assert.Nil(t, app.Cron)

	require.NoError(t, app.SetupScheduler("0 0 * * * *"))
	assert.NotNil(t, app.Cron)
	assert.Equal(t, "0 0 * * * *", app.CronSpec)
}

func TestSetupSchedulerInvalidSpec(t *testing.T) {
	app := newTestApp(t)
	assert.Error(t, app.SetupScheduler("not-a-cron-spec"))
}
