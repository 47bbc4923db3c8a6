package stats

import "github.com/rpggio/selflab/internal/domain/experiment"

// Snapshot is the dashboard summary derived from the experiment and daily
// log collections at one instant.
type Snapshot struct {
	ActiveExperiments    int                     `json:"activeExperiments"`
	CompletedExperiments int                     `json:"completedExperiments"`
	TotalLogs            int                     `json:"totalLogs"`
	CurrentStreak        int                     `json:"currentStreak"`
	Experiments          []experiment.Experiment `json:"experiments"`
	Progress             []ExperimentProgress    `json:"progress"`
}

// ExperimentProgress is the date-derived progress of one active experiment.
type ExperimentProgress struct {
	ExperimentID string  `json:"experimentId"`
	Name         string  `json:"name"`
	Progress     float64 `json:"progress"`
	DaysLeft     int     `json:"daysLeft"`
}

// Point is one value of a per-day series.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// SleepPoint pairs hours slept with the day's energy, used as a quality proxy.
type SleepPoint struct {
	Date    string  `json:"date"`
	Hours   float64 `json:"hours"`
	Quality float64 `json:"quality"`
}

// WeekMood is the average mood score of a block of seven logs.
type WeekMood struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Insights holds the chart-ready series derived from daily logs.
type Insights struct {
	Energy     []Point      `json:"energy"`
	Sleep      []SleepPoint `json:"sleep"`
	WeeklyMood []WeekMood   `json:"weeklyMood"`
}
