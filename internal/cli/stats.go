package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rpggio/selflab/internal/domain/stats"
)

var insightsFlag bool

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		Long:  "Show active and completed experiment counts, total logs, the current streak and per-experiment progress. With --insights, print the chart series instead.",
		RunE:  runStats,
	}
	cmd.Flags().BoolVar(&insightsFlag, "insights", false, "Print energy, sleep and weekly mood series")

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	out := cmd.OutOrStdout()
	if insightsFlag {
		insights, err := app.Stats.Insights(cmd.Context(), stats.DefaultSeriesLength)
		if err != nil {
			return fmt.Errorf("insights: %w", err)
		}
		if textFormat() {
			return writeInsightsText(out, insights)
		}
		return printJSON(out, insights)
	}

	snapshot, err := app.Stats.Compute(cmd.Context())
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	if textFormat() {
		return writeSnapshotText(out, snapshot)
	}
	return printJSON(out, snapshot)
}

func writeSnapshotText(w io.Writer, s *stats.Snapshot) error {
	if _, err := fmt.Fprintf(w, "Active experiments:    %d\nCompleted experiments: %d\nTotal logs:            %d\nCurrent streak:        %d\n",
		s.ActiveExperiments, s.CompletedExperiments, s.TotalLogs, s.CurrentStreak); err != nil {
		return err
	}
	for _, p := range s.Progress {
		if _, err := fmt.Fprintf(w, "  %-30s %5.1f%%  %d days left\n", p.Name, p.Progress, p.DaysLeft); err != nil {
			return err
		}
	}
	return nil
}

func writeInsightsText(w io.Writer, in *stats.Insights) error {
	fmt.Fprintln(w, "Energy:")
	for _, p := range in.Energy {
		fmt.Fprintf(w, "  %s  %.0f\n", p.Date, p.Value)
	}
	fmt.Fprintln(w, "Sleep:")
	for _, p := range in.Sleep {
		fmt.Fprintf(w, "  %s  %.1fh  quality %.0f\n", p.Date, p.Hours, p.Quality)
	}
	fmt.Fprintln(w, "Weekly mood:")
	for _, m := range in.WeeklyMood {
		if _, err := fmt.Fprintf(w, "  %-7s %.2f\n", m.Label, m.Value); err != nil {
			return err
		}
	}
	return nil
}
