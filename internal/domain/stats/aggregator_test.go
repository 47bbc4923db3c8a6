package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/selflab/internal/domain/calendar"
	"github.com/rpggio/selflab/internal/domain/dailylog"
	"github.com/rpggio/selflab/internal/domain/experiment"
	"github.com/rpggio/selflab/internal/domain/stats"
	"github.com/rpggio/selflab/internal/idgen"
	"github.com/rpggio/selflab/internal/kvstore"
	"github.com/rpggio/selflab/internal/storage"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	experiments *experiment.Service
	logs        *dailylog.Service
	aggregator  *stats.Aggregator
}

func newFixture(now time.Time) fixture {
	repos := storage.New(kvstore.New(kvstore.NewMemoryBackend(), nil))
	clock := calendar.Fixed(now)
	ids := idgen.UUID{}
	return fixture{
		experiments: experiment.NewService(repos.Experiments, ids, clock, nil),
		logs:        dailylog.NewService(repos.DailyLogs, ids, clock, nil),
		aggregator:  stats.NewAggregator(repos.Experiments, repos.DailyLogs, clock),
	}
}

func TestAggregator_ColdShowerScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC))

	before, err := f.aggregator.Compute(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, before.ActiveExperiments)
	require.Empty(t, before.Experiments)

	exp, err := f.experiments.Create(ctx, experiment.CreateRequest{
		Name:      "Cold Shower",
		Duration:  30,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	require.NoError(t, err)

	during, err := f.aggregator.Compute(ctx)
	require.NoError(t, err)
	require.Equal(t, before.ActiveExperiments+1, during.ActiveExperiments)
	require.Len(t, during.Experiments, 1)
	require.Equal(t, exp.ID, during.Experiments[0].ID)
	require.Equal(t, []stats.ExperimentProgress{
		{ExperimentID: exp.ID, Name: "Cold Shower", Progress: 50, DaysLeft: 15},
	}, during.Progress)

	deleted, err := f.experiments.Delete(ctx, exp.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	after, err := f.aggregator.Compute(ctx)
	require.NoError(t, err)
	require.Equal(t, before.ActiveExperiments, after.ActiveExperiments)
}

func TestAggregator_CountsAndStreak(t *testing.T) {
	ctx := context.Background()
	f := newFixture(time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC))

	for _, status := range []experiment.Status{experiment.StatusActive, experiment.StatusCompleted, experiment.StatusCompleted, experiment.StatusPaused} {
		_, err := f.experiments.Create(ctx, experiment.CreateRequest{
			Name: "e", Duration: 10, StartDate: "2024-03-01", EndDate: "2024-03-11", Status: status,
		})
		require.NoError(t, err)
	}
	for _, date := range []string{"2024-03-15", "2024-03-14", "2024-03-13", "2024-03-10"} {
		_, err := f.logs.Upsert(ctx, dailylog.UpsertRequest{Date: date, Energy: 6, SleepHours: 7})
		require.NoError(t, err)
	}

	snap, err := f.aggregator.Compute(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, snap.ActiveExperiments)
	require.Equal(t, 2, snap.CompletedExperiments)
	require.Equal(t, 4, snap.TotalLogs)
	require.Equal(t, 3, snap.CurrentStreak)
	require.Equal(t, 100.0, snap.Progress[0].Progress)
}

func TestAggregator_Insights(t *testing.T) {
	ctx := context.Background()
	f := newFixture(time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC))

	for i, date := range []string{"2024-03-12", "2024-03-13", "2024-03-14"} {
		_, err := f.logs.Upsert(ctx, dailylog.UpsertRequest{
			Date: date, Energy: float64(i + 5), SleepHours: 7, Mood: dailylog.MoodGood,
		})
		require.NoError(t, err)
	}

	insights, err := f.aggregator.Insights(ctx, 2)
	require.NoError(t, err)
	require.Len(t, insights.Energy, 2)
	require.Equal(t, "2024-03-13", insights.Energy[0].Date)
	require.Equal(t, 7.0, insights.Energy[1].Value)
	require.Len(t, insights.Sleep, 2)
	require.Equal(t, []stats.WeekMood{{Label: "Week 1", Value: 7}}, insights.WeeklyMood)
}
