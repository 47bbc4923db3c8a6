package template

import "context"

// Repository provides persistence for templates.
type Repository interface {
	List(ctx context.Context) ([]Template, error)
	// SeedIfEmpty stores templates only when the collection holds none and
	// reports whether it did.
	SeedIfEmpty(ctx context.Context, templates []Template) (bool, error)
}
