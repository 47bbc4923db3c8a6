// Package idgen produces record identifiers.
package idgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Scheme names an identifier format.
type Scheme string

const (
	SchemeUUID Scheme = "uuid"
	SchemeULID Scheme = "ulid"
)

// Generator produces unique string identifiers.
type Generator interface {
	Generate() string
}

// New returns the generator for the named scheme. An empty scheme selects UUID.
func New(scheme Scheme) (Generator, error) {
	switch scheme {
	case "", SchemeUUID:
		return UUID{}, nil
	case SchemeULID:
		return NewULID(), nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q", scheme)
	}
}

// UUID generates random version 4 UUIDs.
type UUID struct{}

func (UUID) Generate() string { return uuid.NewString() }

// ULID generates lexically time-ordered ULIDs. Safe for concurrent use.
type ULID struct {
	mu      sync.Mutex
	entropy io.Reader
	now     func() time.Time
}

// NewULID creates a ULID generator with monotonic entropy.
func NewULID() *ULID {
	return &ULID{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

func (g *ULID) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}
