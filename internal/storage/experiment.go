package storage

import (
	"context"

	"github.com/rpggio/selflab/internal/domain/experiment"
	"github.com/rpggio/selflab/internal/kvstore"
	"github.com/rpggio/selflab/internal/repository"
)

// ExperimentRepository implements experiment.Repository.
type ExperimentRepository struct {
	col *repository.Collection[experiment.Experiment]
}

// NewExperimentRepository creates an experiment repository.
func NewExperimentRepository(store *kvstore.Store) *ExperimentRepository {
	col := repository.NewCollection[experiment.Experiment](store, kvstore.KeyExperiments).
		WithNormalize((*experiment.Experiment).Normalize)
	return &ExperimentRepository{col: col}
}

func (r *ExperimentRepository) List(ctx context.Context) ([]experiment.Experiment, error) {
	return r.col.Load(ctx), nil
}

func (r *ExperimentRepository) Create(ctx context.Context, exp *experiment.Experiment) error {
	return r.col.Mutate(ctx, func(items []experiment.Experiment) ([]experiment.Experiment, bool, error) {
		return append(items, *exp), true, nil
	})
}

func (r *ExperimentRepository) Update(ctx context.Context, id string, fn func(*experiment.Experiment) error) (*experiment.Experiment, error) {
	var updated experiment.Experiment
	err := r.col.Mutate(ctx, func(items []experiment.Experiment) ([]experiment.Experiment, bool, error) {
		idx := indexOf(items, func(e experiment.Experiment) bool { return e.ID == id })
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

func (r *ExperimentRepository) Delete(ctx context.Context, id string) error {
	return r.col.Mutate(ctx, func(items []experiment.Experiment) ([]experiment.Experiment, bool, error) {
		idx := indexOf(items, func(e experiment.Experiment) bool { return e.ID == id })
		if idx < 0 {
			return nil, false, repository.ErrNotFound
		}
		return append(items[:idx], items[idx+1:]...), true, nil
	})
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}
