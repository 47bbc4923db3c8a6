package experiment

import "context"

// Repository provides persistence for experiments.
type Repository interface {
	List(ctx context.Context) ([]Experiment, error)
	Create(ctx context.Context, exp *Experiment) error
	// Update loads the experiment, applies fn to it and stores the result
	// atomically. An error from fn leaves the collection unchanged.
	Update(ctx context.Context, id string, fn func(*Experiment) error) (*Experiment, error)
	Delete(ctx context.Context, id string) error
}
