package dailylog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sort"

	"github.com/rpggio/selflab/internal/domain/calendar"
	"github.com/rpggio/selflab/internal/idgen"
	"github.com/rpggio/selflab/internal/repository"
)

// DefaultRecent is the window used by Recent when n is not positive.
const DefaultRecent = 7

// Service handles daily log operations.
type Service struct {
	repo   Repository
	ids    idgen.Generator
	clock  calendar.Clock
	logger *slog.Logger
}

// NewService creates a new daily log service.
func NewService(repo Repository, ids idgen.Generator, clock calendar.Clock, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, ids: ids, clock: clock, logger: logger}
}

// List returns all logs in store order.
func (s *Service) List(ctx context.Context) ([]DailyLog, error) {
	return s.repo.List(ctx)
}

// GetByDate returns the log for date, or nil when none was recorded.
func (s *Service) GetByDate(ctx context.Context, date string) (*DailyLog, error) {
	log, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting daily log: %w", err)
	}
	return log, nil
}

// Today returns the log for the current calendar date, or nil.
func (s *Service) Today(ctx context.Context) (*DailyLog, error) {
	return s.GetByDate(ctx, s.clock.Today())
}

// Recent returns up to n logs, most recent date first.
func (s *Service) Recent(ctx context.Context, n int) ([]DailyLog, error) {
	if n <= 0 {
		n = DefaultRecent
	}
	logs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing daily logs: %w", err)
	}
	SortByDateDesc(logs)
	if len(logs) > n {
		logs = logs[:n]
	}
	return logs, nil
}

// Upsert saves the log for req.Date, replacing any log already stored for
// that date while keeping its ID and CreatedAt. An empty Date means today.
func (s *Service) Upsert(ctx context.Context, req UpsertRequest) (*DailyLog, error) {
	if req.Date == "" {
		req.Date = s.clock.Today()
	}
	if err := ValidateUpsert(req); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	candidate := &DailyLog{
		ID:            s.ids.Generate(),
		Date:          req.Date,
		SleepHours:    req.SleepHours,
		Mood:          req.Mood,
		Energy:        req.Energy,
		Notes:         req.Notes,
		Protocols:     maps.Clone(req.Protocols),
		CustomMetrics: maps.Clone(req.CustomMetrics),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if candidate.Protocols == nil {
		candidate.Protocols = map[string]bool{}
	}

	saved, created, err := s.repo.Upsert(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("saving daily log: %w", err)
	}

	s.logger.Debug("daily log saved", "date", saved.Date, "id", saved.ID, "created", created)
	return saved, nil
}

// SortByDateDesc orders logs newest first. Dates sort lexically.
func SortByDateDesc(logs []DailyLog) {
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].Date > logs[j].Date })
}

// SortByDateAsc orders logs oldest first.
func SortByDateAsc(logs []DailyLog) {
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].Date < logs[j].Date })
}
