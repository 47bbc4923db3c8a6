package experiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rpggio/selflab/internal/domain/calendar"
	"github.com/rpggio/selflab/internal/idgen"
	"github.com/rpggio/selflab/internal/repository"
)

// Service handles experiment operations.
type Service struct {
	repo   Repository
	ids    idgen.Generator
	clock  calendar.Clock
	logger *slog.Logger
}

// NewService creates a new experiment service.
func NewService(repo Repository, ids idgen.Generator, clock calendar.Clock, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, ids: ids, clock: clock, logger: logger}
}

// List returns all experiments in insertion order.
func (s *Service) List(ctx context.Context) ([]Experiment, error) {
	return s.repo.List(ctx)
}

// Get fetches an experiment by ID.
func (s *Service) Get(ctx context.Context, id string) (*Experiment, error) {
	experiments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing experiments: %w", err)
	}
	for i := range experiments {
		if experiments[i].ID == id {
			return &experiments[i], nil
		}
	}
	return nil, ErrExperimentNotFound
}

// FilterByStatus returns the experiments in the given state.
func (s *Service) FilterByStatus(ctx context.Context, status Status) ([]Experiment, error) {
	experiments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing experiments: %w", err)
	}
	filtered := []Experiment{}
	for _, exp := range experiments {
		if exp.Status == status {
			filtered = append(filtered, exp)
		}
	}
	return filtered, nil
}

// Create validates and stores a new experiment.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Experiment, error) {
	status := req.Status
	if status == "" {
		status = StatusActive
	}

	now := s.clock.Now()
	exp := &Experiment{
		ID:         s.ids.Generate(),
		Name:       req.Name,
		Hypothesis: req.Hypothesis,
		Duration:   req.Duration,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Variables:  nonNil(req.Variables),
		Metrics:    nonNil(req.Metrics),
		Notes:      req.Notes,
		Status:     status,
		Progress:   req.Progress,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := Validate(exp); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, exp); err != nil {
		return nil, fmt.Errorf("creating experiment: %w", err)
	}

	s.logger.Debug("experiment created", "id", exp.ID, "name", exp.Name)
	return exp, nil
}

// Update merges patch into the experiment and refreshes UpdatedAt.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Experiment, error) {
	now := s.clock.Now()
	updated, err := s.repo.Update(ctx, id, func(exp *Experiment) error {
		patch.Apply(exp)
		exp.UpdatedAt = now
		return Validate(exp)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExperimentNotFound
		}
		if errors.Is(err, ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("updating experiment: %w", err)
	}

	s.logger.Debug("experiment updated", "id", id)
	return updated, nil
}

// Delete removes an experiment. It reports false when the ID is unknown.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("deleting experiment: %w", err)
	}

	s.logger.Debug("experiment deleted", "id", id)
	return true, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
