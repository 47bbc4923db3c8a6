package mocks

import (
	"context"

	"github.com/rpggio/selflab/internal/domain/dailylog"
	"github.com/rpggio/selflab/internal/domain/experiment"
	"github.com/rpggio/selflab/internal/domain/template"
	"github.com/rpggio/selflab/internal/domain/wiki"
	"github.com/stretchr/testify/mock"
)

// ExperimentRepository is a mock for experiment.Repository.
type ExperimentRepository struct {
	mock.Mock
}

func (m *ExperimentRepository) List(ctx context.Context) ([]experiment.Experiment, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]experiment.Experiment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ExperimentRepository) Create(ctx context.Context, exp *experiment.Experiment) error {
	args := m.Called(ctx, exp)
	return args.Error(0)
}

// Update invokes fn on the experiment returned by the expectation, so tests
// observe the mutation the service applies.
func (m *ExperimentRepository) Update(ctx context.Context, id string, fn func(*experiment.Experiment) error) (*experiment.Experiment, error) {
	args := m.Called(ctx, id, fn)
	exp, ok := args.Get(0).(*experiment.Experiment)
	if !ok || args.Error(1) != nil {
		return nil, args.Error(1)
	}
	updated := *exp
	if err := fn(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (m *ExperimentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// DailyLogRepository is a mock for dailylog.Repository.
type DailyLogRepository struct {
	mock.Mock
}

func (m *DailyLogRepository) List(ctx context.Context) ([]dailylog.DailyLog, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]dailylog.DailyLog); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DailyLogRepository) GetByDate(ctx context.Context, date string) (*dailylog.DailyLog, error) {
	args := m.Called(ctx, date)
	if log, ok := args.Get(0).(*dailylog.DailyLog); ok {
		return log, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DailyLogRepository) Upsert(ctx context.Context, log *dailylog.DailyLog) (*dailylog.DailyLog, bool, error) {
	args := m.Called(ctx, log)
	if saved, ok := args.Get(0).(*dailylog.DailyLog); ok {
		return saved, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

// TemplateRepository is a mock for template.Repository.
type TemplateRepository struct {
	mock.Mock
}

func (m *TemplateRepository) List(ctx context.Context) ([]template.Template, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]template.Template); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TemplateRepository) SeedIfEmpty(ctx context.Context, templates []template.Template) (bool, error) {
	args := m.Called(ctx, templates)
	return args.Bool(0), args.Error(1)
}

// WikiRepository is a mock for wiki.Repository.
type WikiRepository struct {
	mock.Mock
}

func (m *WikiRepository) List(ctx context.Context) ([]wiki.Entry, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]wiki.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WikiRepository) Create(ctx context.Context, entry *wiki.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// Update invokes fn on the entry returned by the expectation.
func (m *WikiRepository) Update(ctx context.Context, id string, fn func(*wiki.Entry) error) (*wiki.Entry, error) {
	args := m.Called(ctx, id, fn)
	entry, ok := args.Get(0).(*wiki.Entry)
	if !ok || args.Error(1) != nil {
		return nil, args.Error(1)
	}
	updated := *entry
	if err := fn(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (m *WikiRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *WikiRepository) SeedIfEmpty(ctx context.Context, entries []wiki.Entry) (bool, error) {
	args := m.Called(ctx, entries)
	return args.Bool(0), args.Error(1)
}
