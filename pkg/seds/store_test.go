package seds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seds.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestStoreLoading(t *testing.T) {
	store := NewStore(zaptest.NewLogger(t))

	_, err := store.Records()
	assert.ErrorIs(t, err, ErrLoading)
	assert.Equal(t, uint64(0), store.Version())
}

func TestStoreLoadFile(t *testing.T) {
	store := NewStore(zaptest.NewLogger(t))
	path := writeCSV(t, "Year,State,MSN,Data\n2020,TX,TETCB,120\n")

	require.NoError(t, store.LoadFile(path))

	records, err := store.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "TX", records[0].State)
	assert.Equal(t, uint64(1), store.Version())
}

func TestStoreFirstLoadFailure(t *testing.T) {
	store := NewStore(zaptest.NewLogger(t))

	err := store.LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = store.Records()
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, uint64(0), store.Version())
}

func TestStoreReloadFailureKeepsPreviousDataset(t *testing.T) {
	store := NewStore(zaptest.NewLogger(t))
	path := writeCSV(t, "Year,State,MSN,Data\n2020,TX,TETCB,120\n")
	require.NoError(t, store.LoadFile(path))

	err := store.LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, ErrUnavailable)

	records, recErr := store.Records()
	require.NoError(t, recErr)
	assert.Len(t, records, 1)
	assert.Equal(t, uint64(1), store.Version())
}

func TestStoreReloadBumpsVersion(t *testing.T) {
	store := NewStore(zaptest.NewLogger(t))
	path := writeCSV(t, "Year,State,MSN,Data\n2020,TX,TETCB,120\n")

	require.NoError(t, store.LoadFile(path))
	require.NoError(t, store.LoadFile(path))
	assert.Equal(t, uint64(2), store.Version())
}

func TestStoreReplace(t *testing.T) {
	store := NewStore(zaptest.NewLogger(t))
	store.Replace([]Record{{Year: 2020, State: "CA", MSN: "TETCB", Value: 80}})

	records, err := store.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "CA", records[0].State)
	assert.Equal(t, uint64(1), store.Version())
}
