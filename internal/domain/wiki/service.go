package wiki

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/rpggio/selflab/internal/domain/calendar"
	"github.com/rpggio/selflab/internal/idgen"
	"github.com/rpggio/selflab/internal/repository"
)

// Service handles wiki operations.
type Service struct {
	repo   Repository
	ids    idgen.Generator
	clock  calendar.Clock
	logger *slog.Logger
}

// NewService creates a new wiki service.
func NewService(repo Repository, ids idgen.Generator, clock calendar.Clock, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, ids: ids, clock: clock, logger: logger}
}

// List returns all entries in insertion order.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

// Get fetches an entry by ID.
func (s *Service) Get(ctx context.Context, id string) (*Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing wiki entries: %w", err)
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, ErrEntryNotFound
}

// Create validates and stores a new entry.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Entry, error) {
	entry := s.build(req)
	if err := Validate(entry); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("creating wiki entry: %w", err)
	}

	s.logger.Debug("wiki entry created", "id", entry.ID, "title", entry.Title)
	return entry, nil
}

// Update merges patch into the entry. UpdatedAt and LastEditedAt are
// refreshed even when only metadata changes.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Entry, error) {
	now := s.clock.Now()
	updated, err := s.repo.Update(ctx, id, func(entry *Entry) error {
		previous := entry.Attachments
		patch.Apply(entry)
		s.fillLinkIDs(entry.RelatedLinks)
		s.fillAttachments(entry.Attachments, previous, now)
		entry.UpdatedAt = now
		entry.LastEditedAt = now
		return Validate(entry)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		if errors.Is(err, ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("updating wiki entry: %w", err)
	}

	s.logger.Debug("wiki entry updated", "id", id)
	return updated, nil
}

// Delete removes an entry. It reports false when the ID is unknown.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("deleting wiki entry: %w", err)
	}

	s.logger.Debug("wiki entry deleted", "id", id)
	return true, nil
}

// Categories returns the distinct non-empty categories, sorted.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing wiki entries: %w", err)
	}
	values := make([]string, 0, len(entries))
	for _, entry := range entries {
		values = append(values, entry.Category)
	}
	return distinct(values), nil
}

// Tags returns the distinct non-empty tags across all entries, sorted.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing wiki entries: %w", err)
	}
	var values []string
	for _, entry := range entries {
		values = append(values, entry.Tags...)
	}
	return distinct(values), nil
}

// Seed inserts the sample entries when the wiki is empty.
func (s *Service) Seed(ctx context.Context) error {
	samples := sampleEntries()
	entries := make([]Entry, 0, len(samples))
	for _, req := range samples {
		entries = append(entries, *s.build(req))
	}

	seeded, err := s.repo.SeedIfEmpty(ctx, entries)
	if err != nil {
		return fmt.Errorf("seeding wiki: %w", err)
	}
	if seeded {
		s.logger.Info("seeded wiki entries", "count", len(entries))
	}
	return nil
}

func (s *Service) build(req CreateRequest) *Entry {
	now := s.clock.Now()
	entry := &Entry{
		ID:           s.ids.Generate(),
		Title:        req.Title,
		Summary:      req.Summary,
		Content:      req.Content,
		Tags:         append([]string{}, req.Tags...),
		Category:     req.Category,
		Status:       req.Status,
		Priority:     req.Priority,
		IsPublic:     req.IsPublic,
		Rating:       req.Rating,
		Attachments:  append([]Attachment{}, req.Attachments...),
		RelatedLinks: append([]Link{}, req.RelatedLinks...),
		CreatedAt:    now,
		UpdatedAt:    now,
		LastEditedAt: now,
	}
	if entry.Status == "" {
		entry.Status = StatusDraft
	}
	if entry.Priority == "" {
		entry.Priority = PriorityMedium
	}
	s.fillLinkIDs(entry.RelatedLinks)
	s.fillAttachments(entry.Attachments, nil, now)
	return entry
}

// fillAttachments assigns ids to new attachments and stamps their upload
// time. An attachment sent back with a known id keeps its original time.
func (s *Service) fillAttachments(attachments, previous []Attachment, now time.Time) {
	uploaded := make(map[string]time.Time, len(previous))
	for _, a := range previous {
		uploaded[a.ID] = a.UploadedAt
	}
	for i := range attachments {
		a := &attachments[i]
		if a.ID == "" {
			a.ID = s.ids.Generate()
		}
		if !a.UploadedAt.IsZero() {
			continue
		}
		if at, ok := uploaded[a.ID]; ok && !at.IsZero() {
			a.UploadedAt = at
		} else {
			a.UploadedAt = now
		}
	}
}

func (s *Service) fillLinkIDs(links []Link) {
	for i := range links {
		if links[i].ID == "" {
			links[i].ID = s.ids.Generate()
		}
	}
}

func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := []string{}
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
