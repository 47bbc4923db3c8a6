package experiment_test

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/selflab/internal/domain/calendar"
	"github.com/rpggio/selflab/internal/domain/experiment"
	"github.com/rpggio/selflab/internal/idgen"
	"github.com/rpggio/selflab/internal/repository"
	"github.com/rpggio/selflab/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func newService(repo experiment.Repository) *experiment.Service {
	return experiment.NewService(repo, idgen.UUID{}, calendar.Fixed(fixedNow), nil)
}

func coldShower() experiment.CreateRequest {
	return experiment.CreateRequest{
		Name:      "Cold Shower",
		Duration:  30,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		Variables: []string{"Water Temperature"},
		Metrics:   []string{"Energy Level"},
	}
}

func TestExperimentService_Create(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ExperimentRepository{}
	repo.On("Create", ctx, mock.AnythingOfType("*experiment.Experiment")).Return(nil)

	svc := newService(repo)
	exp, err := svc.Create(ctx, coldShower())
	require.NoError(t, err)
	require.NotEmpty(t, exp.ID)
	require.Equal(t, experiment.StatusActive, exp.Status)
	require.Equal(t, fixedNow, exp.CreatedAt)
	require.Equal(t, exp.CreatedAt, exp.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestExperimentService_CreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ExperimentRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := newService(repo)
	seen := map[string]bool{}
	for range 50 {
		exp, err := svc.Create(ctx, coldShower())
		require.NoError(t, err)
		require.False(t, seen[exp.ID], "duplicate id %s", exp.ID)
		seen[exp.ID] = true
	}
}

func TestExperimentService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ExperimentRepository{}
	svc := newService(repo)

	tests := []struct {
		name   string
		mutate func(*experiment.CreateRequest)
	}{
		{"missing name", func(r *experiment.CreateRequest) { r.Name = "" }},
		{"zero duration", func(r *experiment.CreateRequest) { r.Duration = 0 }},
		{"bad start date", func(r *experiment.CreateRequest) { r.StartDate = "01/01/2024" }},
		{"end before start", func(r *experiment.CreateRequest) { r.EndDate = "2023-12-31" }},
		{"unknown status", func(r *experiment.CreateRequest) { r.Status = "running" }},
		{"progress over 100", func(r *experiment.CreateRequest) { r.Progress = 120 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := coldShower()
			tt.mutate(&req)
			_, err := svc.Create(ctx, req)
			require.ErrorIs(t, err, experiment.ErrInvalidInput)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExperimentService_UpdateChangesOnlyPatchedFields(t *testing.T) {
	ctx := context.Background()
	created := fixedNow.Add(-48 * time.Hour)
	existing := &experiment.Experiment{
		ID:         "exp-1",
		Name:       "Cold Shower",
		Hypothesis: "More energy",
		Duration:   30,
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-31",
		Variables:  []string{},
		Metrics:    []string{},
		Status:     experiment.StatusActive,
		CreatedAt:  created,
		UpdatedAt:  created,
	}

	repo := &mocks.ExperimentRepository{}
	repo.On("Update", ctx, "exp-1", mock.Anything).Return(existing, nil)

	svc := newService(repo)
	name := "X"
	updated, err := svc.Update(ctx, "exp-1", experiment.Patch{Name: &name})
	require.NoError(t, err)

	want := *existing
	want.Name = "X"
	want.UpdatedAt = fixedNow
	require.Equal(t, &want, updated)
}

func TestPatchApply_EmptyListsClear(t *testing.T) {
	exp := &experiment.Experiment{Variables: []string{"water temperature"}, Metrics: []string{"energy"}}
	experiment.Patch{Variables: []string{}, Metrics: []string{}}.Apply(exp)

	require.NotNil(t, exp.Variables)
	require.Empty(t, exp.Variables)
	require.NotNil(t, exp.Metrics)
	require.Empty(t, exp.Metrics)
}

func TestExperiment_Normalize(t *testing.T) {
	exp := &experiment.Experiment{}
	exp.Normalize()
	require.Equal(t, []string{}, exp.Variables)
	require.Equal(t, []string{}, exp.Metrics)
}

func TestExperimentService_UpdateNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ExperimentRepository{}
	repo.On("Update", ctx, "missing", mock.Anything).Return((*experiment.Experiment)(nil), repository.ErrNotFound)

	svc := newService(repo)
	name := "X"
	_, err := svc.Update(ctx, "missing", experiment.Patch{Name: &name})
	require.ErrorIs(t, err, experiment.ErrExperimentNotFound)
}

func TestExperimentService_UpdateRejectsInvalidPatch(t *testing.T) {
	ctx := context.Background()
	existing := &experiment.Experiment{
		ID: "exp-1", Name: "Cold Shower", Duration: 30,
		StartDate: "2024-01-01", EndDate: "2024-01-31", Status: experiment.StatusActive,
	}

	repo := &mocks.ExperimentRepository{}
	repo.On("Update", ctx, "exp-1", mock.Anything).Return(existing, nil)

	svc := newService(repo)
	end := "2023-06-01"
	_, err := svc.Update(ctx, "exp-1", experiment.Patch{EndDate: &end})
	require.ErrorIs(t, err, experiment.ErrInvalidInput)
}

func TestExperimentService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ExperimentRepository{}
	repo.On("Delete", ctx, "exp-1").Return(nil)
	repo.On("Delete", ctx, "missing").Return(repository.ErrNotFound)

	svc := newService(repo)

	ok, err := svc.Delete(ctx, "exp-1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.Delete(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestExperimentService_GetAndFilter(t *testing.T) {
	ctx := context.Background()
	list := []experiment.Experiment{
		{ID: "a", Status: experiment.StatusActive},
		{ID: "b", Status: experiment.StatusCompleted},
		{ID: "c", Status: experiment.StatusActive},
	}

	repo := &mocks.ExperimentRepository{}
	repo.On("List", ctx).Return(list, nil)

	svc := newService(repo)

	active, err := svc.FilterByStatus(ctx, experiment.StatusActive)
	require.NoError(t, err)
	require.Len(t, active, 2)

	paused, err := svc.FilterByStatus(ctx, experiment.StatusPaused)
	require.NoError(t, err)
	require.NotNil(t, paused)
	require.Empty(t, paused)

	exp, err := svc.Get(ctx, "b")
	require.NoError(t, err)
	require.Equal(t, experiment.StatusCompleted, exp.Status)

	_, err = svc.Get(ctx, "zzz")
	require.ErrorIs(t, err, experiment.ErrExperimentNotFound)
}
