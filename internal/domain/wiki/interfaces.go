package wiki

import "context"

// Repository provides persistence for wiki entries.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	Create(ctx context.Context, entry *Entry) error
	Update(ctx context.Context, id string, fn func(*Entry) error) (*Entry, error)
	Delete(ctx context.Context, id string) error
	SeedIfEmpty(ctx context.Context, entries []Entry) (bool, error)
}
