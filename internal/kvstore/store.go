package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/rpggio/selflab/internal/kvstore"

// Store encodes collections as JSON documents on top of a Backend.
type Store struct {
	backend Backend
	logger  *slog.Logger

	writes        metric.Int64Counter
	writeFailures metric.Int64Counter

	mu        sync.Mutex
	lastWrite error
}

// New wraps a backend. A nil logger falls back to slog.Default.
func New(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	meter := otel.Meter(meterName)
	// Instrument creation only fails on invalid names; the API hands back a
	// usable no-op instrument alongside the error.
	writes, _ := meter.Int64Counter("selflab.store.writes",
		metric.WithDescription("Collection documents written to the store"))
	failures, _ := meter.Int64Counter("selflab.store.write_failures",
		metric.WithDescription("Collection writes rejected by the backend"))

	return &Store{
		backend:       backend,
		logger:        logger,
		writes:        writes,
		writeFailures: failures,
	}
}

// Read decodes the document under key into dst and reports whether it did.
// On any failure dst is left untouched.
func (s *Store) Read(ctx context.Context, key string, dst any) bool {
	data, err := s.backend.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return false
	}
	if err != nil {
		s.logger.Warn("store read failed, using default", "key", key, "error", err)
		return false
	}
	if len(data) == 0 {
		return false
	}

	// Snapshot dst so a partially decoded document can be rolled back.
	snapshot, err := json.Marshal(dst)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warn("stored document is corrupt, using default", "key", key, "error", err)
		_ = json.Unmarshal(snapshot, dst)
		return false
	}
	return true
}

// Write encodes value and stores it under key. Failures are logged, counted
// and retained for Health before being returned.
func (s *Store) Write(ctx context.Context, key string, value any) error {
	attrs := metric.WithAttributes(attribute.String("key", key))
	s.writes.Add(ctx, 1, attrs)

	data, err := json.Marshal(value)
	if err == nil {
		err = s.backend.Put(ctx, key, data)
	}
	if err != nil {
		s.writeFailures.Add(ctx, 1, attrs)
		s.logger.Error("store write failed", "key", key, "error", err)
		err = fmt.Errorf("%w: %s: %w", ErrWriteFailure, key, err)
		s.setLastWrite(err)
		return err
	}

	s.setLastWrite(nil)
	return nil
}

// Health returns the error of the most recent write, or nil if it succeeded.
func (s *Store) Health() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastWrite
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) setLastWrite(err error) {
	s.mu.Lock()
	s.lastWrite = err
	s.mu.Unlock()
}
