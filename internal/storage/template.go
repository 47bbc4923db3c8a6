package storage

import (
	"context"

	"github.com/rpggio/selflab/internal/domain/template"
	"github.com/rpggio/selflab/internal/kvstore"
	"github.com/rpggio/selflab/internal/repository"
)

// TemplateRepository implements template.Repository.
type TemplateRepository struct {
	col *repository.Collection[template.Template]
}

// NewTemplateRepository creates a template repository.
func NewTemplateRepository(store *kvstore.Store) *TemplateRepository {
	col := repository.NewCollection[template.Template](store, kvstore.KeyTemplates).
		WithNormalize((*template.Template).Normalize)
	return &TemplateRepository{col: col}
}

func (r *TemplateRepository) List(ctx context.Context) ([]template.Template, error) {
	return r.col.Load(ctx), nil
}

func (r *TemplateRepository) SeedIfEmpty(ctx context.Context, templates []template.Template) (bool, error) {
	return r.col.SeedIfEmpty(ctx, templates)
}
