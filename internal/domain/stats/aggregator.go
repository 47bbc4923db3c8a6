// Package stats derives dashboard figures and chart series from the
// experiment and daily log collections. It only reads.
package stats

import (
	"context"
	"fmt"

	"github.com/rpggio/selflab/internal/domain/calendar"
	"github.com/rpggio/selflab/internal/domain/dailylog"
	"github.com/rpggio/selflab/internal/domain/experiment"
)

// DefaultSeriesLength is the number of logs charted by Insights.
const DefaultSeriesLength = 30

// ExperimentLister reads the experiment collection.
type ExperimentLister interface {
	List(ctx context.Context) ([]experiment.Experiment, error)
}

// LogLister reads the daily log collection.
type LogLister interface {
	List(ctx context.Context) ([]dailylog.DailyLog, error)
}

// Aggregator computes snapshots over the current collections.
type Aggregator struct {
	experiments ExperimentLister
	logs        LogLister
	clock       calendar.Clock
}

// NewAggregator creates an aggregator reading from the given listers.
func NewAggregator(experiments ExperimentLister, logs LogLister, clock calendar.Clock) *Aggregator {
	return &Aggregator{experiments: experiments, logs: logs, clock: clock}
}

// Compute builds a fresh snapshot. Nothing is cached between calls.
func (a *Aggregator) Compute(ctx context.Context) (*Snapshot, error) {
	experiments, err := a.experiments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing experiments: %w", err)
	}
	logs, err := a.logs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing daily logs: %w", err)
	}

	now := a.clock.Now()
	snap := &Snapshot{
		TotalLogs:     len(logs),
		CurrentStreak: Streak(logs, a.clock.Today()),
		Experiments:   []experiment.Experiment{},
		Progress:      []ExperimentProgress{},
	}
	for _, exp := range experiments {
		switch exp.Status {
		case experiment.StatusActive:
			snap.ActiveExperiments++
			snap.Experiments = append(snap.Experiments, exp)
			snap.Progress = append(snap.Progress, ExperimentProgress{
				ExperimentID: exp.ID,
				Name:         exp.Name,
				Progress:     Progress(exp, now),
				DaysLeft:     DaysLeft(exp, now),
			})
		case experiment.StatusCompleted:
			snap.CompletedExperiments++
		}
	}
	return snap, nil
}

// Insights builds the chart series over the last n logs. A non-positive n
// uses DefaultSeriesLength.
func (a *Aggregator) Insights(ctx context.Context, n int) (*Insights, error) {
	if n <= 0 {
		n = DefaultSeriesLength
	}
	logs, err := a.logs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing daily logs: %w", err)
	}
	return &Insights{
		Energy:     EnergySeries(logs, n),
		Sleep:      SleepSeries(logs, n),
		WeeklyMood: WeeklyMood(logs),
	}, nil
}
