// Package repository provides the collection primitive the entity
// repositories are built on, plus their shared errors.
package repository

import (
	"context"
	"sync"

	"github.com/rpggio/selflab/internal/kvstore"
)

// Collection is a JSON array of T persisted under one store key.
// Every mutation is a read-modify-write of the whole document, serialized by
// the collection's mutex so concurrent callers never lose updates.
type Collection[T any] struct {
	store     *kvstore.Store
	key       string
	normalize func(*T)
	mu        sync.Mutex
}

// NewCollection binds a collection to a store key.
func NewCollection[T any](store *kvstore.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// WithNormalize installs fn to repair every item as it is loaded, before
// callers see it or mutate it.
func (c *Collection[T]) WithNormalize(fn func(*T)) *Collection[T] {
	c.normalize = fn
	return c
}

// Load returns the stored items in store order. A missing or unreadable
// document yields an empty slice.
func (c *Collection[T]) Load(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Mutate applies fn to the current items and persists the result when fn
// reports a change. An error from fn aborts without writing.
//
// Write failures are not returned: the store logs and records them, and the
// caller proceeds with the value it computed.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, changed, err := fn(c.load(ctx))
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if items == nil {
		items = []T{}
	}
	_ = c.store.Write(ctx, c.key, items)
	return nil
}

// SeedIfEmpty stores items only when the collection holds nothing yet.
func (c *Collection[T]) SeedIfEmpty(ctx context.Context, items []T) (bool, error) {
	seeded := false
	err := c.Mutate(ctx, func(current []T) ([]T, bool, error) {
		if len(current) > 0 {
			return current, false, nil
		}
		seeded = true
		return append([]T(nil), items...), true, nil
	})
	return seeded, err
}

func (c *Collection[T]) load(ctx context.Context) []T {
	items := []T{}
	c.store.Read(ctx, c.key, &items)
	if items == nil {
		items = []T{}
	}
	if c.normalize != nil {
		for i := range items {
			c.normalize(&items[i])
		}
	}
	return items
}
