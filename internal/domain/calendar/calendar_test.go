package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClock_TodayUsesLocation(t *testing.T) {
	instant := time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)

	require.Equal(t, "2024-03-10", Clock{NowFunc: func() time.Time { return instant }, Location: time.UTC}.Today())

	tokyo := time.FixedZone("JST", 9*60*60)
	require.Equal(t, "2024-03-11", Clock{NowFunc: func() time.Time { return instant }, Location: tokyo}.Today())
}

func TestFixed(t *testing.T) {
	instant := time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)
	clock := Fixed(instant)
	require.Equal(t, instant, clock.Now())
	require.Equal(t, "2024-01-05", clock.Today())
}

func TestDaysBetween(t *testing.T) {
	days, err := DaysBetween("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Equal(t, 30, days)

	days, err = DaysBetween("2024-03-01", "2024-02-28")
	require.NoError(t, err)
	require.Equal(t, -2, days)

	_, err = DaysBetween("2024-13-01", "2024-01-01")
	require.Error(t, err)
}

