// Package kvstore persists whole JSON collections under fixed keys.
//
// Reads fail soft: a missing key, an unavailable backend or a document that
// does not decode leaves the caller's default in place. Writes report their
// error but callers in this module treat persistence as best effort.
package kvstore

import (
	"context"
	"errors"
)

// Collection keys.
const (
	KeyExperiments = "selflab_experiments"
	KeyDailyLogs   = "selflab_daily_logs"
	KeyTemplates   = "selflab_templates"
	KeyWikiEntries = "selflab_wiki_entries"
)

var (
	// ErrKeyNotFound is returned by a Backend when no value is stored under a key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrWriteFailure wraps backend or encoding errors raised by Store.Write.
	ErrWriteFailure = errors.New("store write failed")
)

// Backend is a byte-level key-value medium.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
