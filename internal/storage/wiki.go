package storage

import (
	"context"

	"github.com/rpggio/selflab/internal/domain/wiki"
	"github.com/rpggio/selflab/internal/kvstore"
	"github.com/rpggio/selflab/internal/repository"
)

// WikiRepository implements wiki.Repository.
type WikiRepository struct {
	col *repository.Collection[wiki.Entry]
}

// NewWikiRepository creates a wiki repository.
func NewWikiRepository(store *kvstore.Store) *WikiRepository {
	col := repository.NewCollection[wiki.Entry](store, kvstore.KeyWikiEntries).
		WithNormalize((*wiki.Entry).Normalize)
	return &WikiRepository{col: col}
}

func (r *WikiRepository) List(ctx context.Context) ([]wiki.Entry, error) {
	return r.col.Load(ctx), nil
}

func (r *WikiRepository) Create(ctx context.Context, entry *wiki.Entry) error {
	return r.col.Mutate(ctx, func(items []wiki.Entry) ([]wiki.Entry, bool, error) {
		return append(items, *entry), true, nil
	})
}

func (r *WikiRepository) Update(ctx context.Context, id string, fn func(*wiki.Entry) error) (*wiki.Entry, error) {
	var updated wiki.Entry
	err := r.col.Mutate(ctx, func(items []wiki.Entry) ([]wiki.Entry, bool, error) {
		idx := indexOf(items, func(e wiki.Entry) bool { return e.ID == id })
		if idx < 0 {
			return nil, false, repository.ErrNotFound
		}
		candidate := items[idx]
		if err := fn(&candidate); err != nil {
			return nil, false, err
		}
		candidate.ID = id
		candidate.CreatedAt = items[idx].CreatedAt
		items[idx] = candidate
		updated = candidate
		return items, true, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *WikiRepository) Delete(ctx context.Context, id string) error {
	return r.col.Mutate(ctx, func(items []wiki.Entry) ([]wiki.Entry, bool, error) {
		idx := indexOf(items, func(e wiki.Entry) bool { return e.ID == id })
		if idx < 0 {
			return nil, false, repository.ErrNotFound
		}
		return append(items[:idx], items[idx+1:]...), true, nil
	})
}

func (r *WikiRepository) SeedIfEmpty(ctx context.Context, entries []wiki.Entry) (bool, error) {
	return r.col.SeedIfEmpty(ctx, entries)
}
