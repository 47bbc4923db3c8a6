package template_test

import (
	"context"
	"testing"

	"github.com/rpggio/selflab/internal/domain/template"
	"github.com/rpggio/selflab/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalog(t *testing.T) {
	catalog := template.Builtin()
	require.Len(t, catalog, 6)
	for i, tmpl := range catalog {
		require.Equal(t, "template-"+string(rune('1'+i)), tmpl.ID)
		require.NotEmpty(t, tmpl.Name)
		require.Positive(t, tmpl.Duration)
		require.Contains(t, []template.Difficulty{
			template.DifficultyBeginner, template.DifficultyIntermediate, template.DifficultyAdvanced,
		}, tmpl.Difficulty)
	}

	// Callers get their own copy.
	catalog[0].Name = "changed"
	require.Equal(t, "Cold Shower Protocol", template.Builtin()[0].Name)
}

func TestTemplateService_Get(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TemplateRepository{}
	repo.On("List", ctx).Return(template.Builtin(), nil)

	svc := template.NewService(repo, nil)
	tmpl, err := svc.Get(ctx, "template-4")
	require.NoError(t, err)
	require.Equal(t, "Wim Hof Breathing", tmpl.Name)

	_, err = svc.Get(ctx, "template-99")
	require.ErrorIs(t, err, template.ErrTemplateNotFound)
}

func TestTemplateService_SeedPassesCatalog(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TemplateRepository{}
	repo.On("SeedIfEmpty", ctx, mock.MatchedBy(func(ts []template.Template) bool {
		return len(ts) == 6 && ts[0].ID == "template-1"
	})).Return(false, nil)

	svc := template.NewService(repo, nil)
	require.NoError(t, svc.Seed(ctx))
	repo.AssertExpectations(t)
}
