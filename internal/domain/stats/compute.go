package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/rpggio/selflab/internal/domain/calendar"
	"github.com/rpggio/selflab/internal/domain/dailylog"
	"github.com/rpggio/selflab/internal/domain/experiment"
)

// Streak counts consecutive logged days ending today. The i-th most recent
// distinct date must lie exactly i days before today; the walk stops at the
// first gap, so a missing log for today yields 0.
func Streak(logs []dailylog.DailyLog, today string) int {
	sorted := append([]dailylog.DailyLog(nil), logs...)
	dailylog.SortByDateDesc(sorted)

	streak := 0
	prev := ""
	for _, log := range sorted {
		if log.Date == prev {
			continue
		}
		prev = log.Date

		diff, err := calendar.DaysBetween(log.Date, today)
		if err != nil || diff != streak {
			break
		}
		streak++
	}
	return streak
}

// Progress returns the share of an experiment's date range that has elapsed
// at now, as a percentage in [0, 100]. Whole days are rounded up on both
// sides of the ratio. A single-day range is complete once it has started.
func Progress(exp experiment.Experiment, now time.Time) float64 {
	elapsed, total, err := dayCounts(exp, now)
	if err != nil {
		return 0
	}
	if total <= 0 {
		if elapsed >= 0 {
			return 100
		}
		return 0
	}
	return clamp(elapsed/total*100, 0, 100)
}

// DaysLeft returns the whole days remaining in an experiment's range.
func DaysLeft(exp experiment.Experiment, now time.Time) int {
	elapsed, total, err := dayCounts(exp, now)
	if err != nil {
		return 0
	}
	return int(math.Max(total-elapsed, 0))
}

func dayCounts(exp experiment.Experiment, now time.Time) (elapsed, total float64, err error) {
	start, err := calendar.Parse(exp.StartDate)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing start date: %w", err)
	}
	end, err := calendar.Parse(exp.EndDate)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing end date: %w", err)
	}
	total = math.Ceil(float64(end.Sub(start)) / float64(calendar.Day))
	elapsed = math.Ceil(float64(now.Sub(start)) / float64(calendar.Day))
	return elapsed, total, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// MoodScore maps a mood label onto the 1-9 scale used for weekly averages.
func MoodScore(mood string) float64 {
	switch mood {
	case dailylog.MoodExcellent:
		return 9
	case dailylog.MoodGood:
		return 7
	case dailylog.MoodNeutral:
		return 5
	case dailylog.MoodLow:
		return 3
	default:
		return 1
	}
}

// EnergySeries returns the energy of the last n logs, oldest first.
func EnergySeries(logs []dailylog.DailyLog, n int) []Point {
	recent := lastByDate(logs, n)
	points := make([]Point, 0, len(recent))
	for _, log := range recent {
		points = append(points, Point{Date: log.Date, Value: log.Energy})
	}
	return points
}

// SleepSeries returns the sleep hours of the last n logs, oldest first.
func SleepSeries(logs []dailylog.DailyLog, n int) []SleepPoint {
	recent := lastByDate(logs, n)
	points := make([]SleepPoint, 0, len(recent))
	for _, log := range recent {
		points = append(points, SleepPoint{Date: log.Date, Hours: log.SleepHours, Quality: log.Energy})
	}
	return points
}

// WeeklyMood averages the mood of the last 28 logs in blocks of seven,
// oldest block first. A trailing partial block is averaged over its size.
func WeeklyMood(logs []dailylog.DailyLog) []WeekMood {
	recent := lastByDate(logs, 28)
	weeks := []WeekMood{}
	for start := 0; start < len(recent); start += 7 {
		end := min(start+7, len(recent))
		sum := 0.0
		for _, log := range recent[start:end] {
			sum += MoodScore(log.Mood)
		}
		weeks = append(weeks, WeekMood{
			Label: fmt.Sprintf("Week %d", start/7+1),
			Value: sum / float64(end-start),
		})
	}
	return weeks
}

func lastByDate(logs []dailylog.DailyLog, n int) []dailylog.DailyLog {
	sorted := append([]dailylog.DailyLog(nil), logs...)
	dailylog.SortByDateAsc(sorted)
	if n > 0 && len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}
