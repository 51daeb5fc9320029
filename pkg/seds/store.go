package seds

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	// ErrLoading means the dataset file is still being parsed; callers should
	// report "try again shortly" rather than an empty result.
	ErrLoading = errors.New("seds: dataset is still loading")
	// ErrUnavailable means the last load failed irrecoverably.
	ErrUnavailable = errors.New("seds: dataset failed to load")
)

// snapshot is the immutable unit the store swaps in on each successful load.
type snapshot struct {
	records []Record
	version uint64
	err     error
}

// Store holds the process-lifetime SEDS dataset. It is written by one loader
// at a time and read by any number of request handlers; readers always see
// either the previous complete snapshot or the loading/failed state, never a
// partial dataset.
type Store struct {
	logger  *zap.Logger
	current atomic.Pointer[snapshot]
	loads   atomic.Uint64
}

// NewStore returns a Store in the loading state.
func NewStore(logger *zap.Logger) *Store {
	return &Store{logger: logger}
}

// Records returns the cached dataset, ErrLoading before the first load
// completes, or ErrUnavailable if the first load failed. The returned slice
// is shared and must be treated as read-only.
func (s *Store) Records() ([]Record, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrLoading
	}
	if snap.err != nil {
		return nil, snap.err
	}
	return snap.records, nil
}

// Version is a monotonic counter bumped on every successful load, usable as
// a cache-key component. Zero means no load has succeeded yet.
func (s *Store) Version() uint64 {
	snap := s.current.Load()
	if snap == nil || snap.err != nil {
		return 0
	}
	return snap.version
}

// LoadFile parses path and swaps the result in. On failure the previous good
// snapshot (if any) is kept; a failed first load moves the store to the
// unavailable state.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return s.fail(fmt.Errorf("%w: %v", ErrUnavailable, err))
	}
	defer func() { _ = f.Close() }()

	records, err := ParseCSV(f)
	if err != nil {
		return s.fail(fmt.Errorf("%w: %v", ErrUnavailable, err))
	}

	version := s.loads.Add(1)
	s.current.Store(&snapshot{records: records, version: version})
	s.logger.Info("SEDS dataset loaded",
		zap.String("path", path),
		zap.Int("records", len(records)),
		zap.Uint64("version", version))
	return nil
}

// Replace installs records directly, bypassing the file load. Used by tests
// and by callers that source rows elsewhere.
func (s *Store) Replace(records []Record) {
	version := s.loads.Add(1)
	s.current.Store(&snapshot{records: records, version: version})
}

func (s *Store) fail(err error) error {
	if prev := s.current.Load(); prev != nil && prev.err == nil {
		// Keep serving the last good dataset; a broken reload should not
		// take the dashboard down.
		s.logger.Error("SEDS reload failed, keeping previous dataset", zap.Error(err))
		return err
	}
	s.current.Store(&snapshot{err: ErrUnavailable})
	s.logger.Error("SEDS dataset unavailable", zap.Error(err))
	return err
}
