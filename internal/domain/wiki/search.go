package wiki

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Visibility narrows a search to public or private entries.
type Visibility string

const (
	VisibilityAny     Visibility = ""
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// SearchOptions filters entries. Zero-valued fields match everything.
// Query matches title or summary, case-insensitively.
type SearchOptions struct {
	Query      string
	Category   string
	Status     Status     `validate:"omitempty,oneof=draft published archived"`
	Visibility Visibility `validate:"omitempty,oneof=public private"`
	Tag        string
	Limit      int `validate:"gte=0"`
	Offset     int `validate:"gte=0"`
}

// Search returns the entries matching opts in insertion order.
func (s *Service) Search(ctx context.Context, opts SearchOptions) ([]Entry, error) {
	if err := validateSearch(opts); err != nil {
		return nil, err
	}
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing wiki entries: %w", err)
	}
	return Filter(entries, opts), nil
}

// Filter applies opts to entries without touching storage.
func Filter(entries []Entry, opts SearchOptions) []Entry {
	query := strings.ToLower(strings.TrimSpace(opts.Query))
	matched := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Title), query) &&
			!strings.Contains(strings.ToLower(e.Summary), query) {
			continue
		}
		if opts.Category != "" && e.Category != opts.Category {
			continue
		}
		if opts.Status != "" && e.Status != opts.Status {
			continue
		}
		switch opts.Visibility {
		case VisibilityPublic:
			if !e.IsPublic {
				continue
			}
		case VisibilityPrivate:
			if e.IsPublic {
				continue
			}
		}
		if opts.Tag != "" && !slices.Contains(e.Tags, opts.Tag) {
			continue
		}
		matched = append(matched, e)
	}

	if opts.Offset > 0 {
		if opts.Offset >= len(matched) {
			return []Entry{}
		}
		matched = matched[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(matched) {
		matched = matched[:opts.Limit]
	}
	return matched
}
