package template

import (
	"context"
	"fmt"
	"log/slog"
)

// Service exposes the template catalog.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new template service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// List returns the stored templates.
func (s *Service) List(ctx context.Context) ([]Template, error) {
	return s.repo.List(ctx)
}

// Get returns the template with the given ID.
func (s *Service) Get(ctx context.Context, id string) (*Template, error) {
	templates, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	for i := range templates {
		if templates[i].ID == id {
			return &templates[i], nil
		}
	}
	return nil, ErrTemplateNotFound
}

// Seed installs the built-in catalog when no templates are stored yet.
// Existing templates are never touched.
func (s *Service) Seed(ctx context.Context) error {
	seeded, err := s.repo.SeedIfEmpty(ctx, Builtin())
	if err != nil {
		return fmt.Errorf("seeding templates: %w", err)
	}
	if seeded {
		s.logger.Info("seeded experiment templates", "count", len(Builtin()))
	}
	return nil
}
