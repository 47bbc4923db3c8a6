package template_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/selflab/internal/domain/template"
	"github.com/rpggio/selflab/internal/repository/mocks"
)

func ids(templates []template.Template) []string {
	out := make([]string, 0, len(templates))
	for _, t := range templates {
		out = append(out, t.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	catalog := template.Builtin()

	tests := []struct {
		name string
		opts template.SearchOptions
		want []string
	}{
		{"empty matches all", template.SearchOptions{}, ids(catalog)},
		{"query matches name", template.SearchOptions{Query: "wim hof"}, []string{"template-4"}},
		{"query matches description", template.SearchOptions{Query: "ALLERGENS"}, []string{"template-6"}},
		{"category", template.SearchOptions{Category: "sleep"}, []string{"template-3", "template-5"}},
		{"difficulty", template.SearchOptions{Difficulty: template.DifficultyIntermediate}, []string{"template-4", "template-6"}},
		{"combined", template.SearchOptions{Category: "Nutrition", Difficulty: template.DifficultyBeginner}, []string{"template-2"}},
		{"no match", template.SearchOptions{Query: "sauna"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ids(template.Filter(catalog, tt.opts)))
		})
	}
}

func TestTemplateService_Search(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TemplateRepository{}
	repo.On("List", ctx).Return(template.Builtin(), nil)

	svc := template.NewService(repo, nil)
	found, err := svc.Search(ctx, template.SearchOptions{Query: "sleep"})
	require.NoError(t, err)
	require.Equal(t, []string{"template-3", "template-5"}, ids(found))
	repo.AssertExpectations(t)
}
