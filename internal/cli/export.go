package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpggio/selflab/internal/kvstore"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all collections as JSON",
		Long:  "Export experiments, daily logs, templates and wiki entries as one JSON object keyed by store key.",
		RunE:  runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	experiments, err := app.Experiments.List(ctx)
	if err != nil {
		return fmt.Errorf("export experiments: %w", err)
	}
	logs, err := app.DailyLogs.List(ctx)
	if err != nil {
		return fmt.Errorf("export daily logs: %w", err)
	}
	templates, err := app.Templates.List(ctx)
	if err != nil {
		return fmt.Errorf("export templates: %w", err)
	}
	entries, err := app.Wiki.List(ctx)
	if err != nil {
		return fmt.Errorf("export wiki entries: %w", err)
	}

	return printJSON(cmd.OutOrStdout(), map[string]any{
		kvstore.KeyExperiments: experiments,
		kvstore.KeyDailyLogs:   logs,
		kvstore.KeyTemplates:   templates,
		kvstore.KeyWikiEntries: entries,
	})
}
