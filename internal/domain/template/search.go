package template

import (
	"context"
	"fmt"
	"strings"
)

// SearchOptions narrows the catalog. Query matches name or description,
// case-insensitively; empty fields match everything.
type SearchOptions struct {
	Query      string
	Category   string
	Difficulty Difficulty
}

// Search returns the stored templates matching opts in catalog order.
func (s *Service) Search(ctx context.Context, opts SearchOptions) ([]Template, error) {
	templates, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return Filter(templates, opts), nil
}

// Filter applies opts to templates.
func Filter(templates []Template, opts SearchOptions) []Template {
	query := strings.ToLower(strings.TrimSpace(opts.Query))
	matched := make([]Template, 0, len(templates))
	for _, t := range templates {
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Name), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		if opts.Category != "" && !strings.EqualFold(t.Category, opts.Category) {
			continue
		}
		if opts.Difficulty != "" && !strings.EqualFold(string(t.Difficulty), string(opts.Difficulty)) {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}
