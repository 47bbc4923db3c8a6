package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpggio/selflab/internal/domain/template"
)

var (
	templateQuery      string
	templateCategory   string
	templateDifficulty string
)

func init() {
	cmd := &cobra.Command{
		Use:     "templates [id]",
		Aliases: []string{"template"},
		Short:   "List experiment templates, or show one by id",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runTemplates,
	}
	cmd.Flags().StringVarP(&templateQuery, "query", "q", "", "Match name or description")
	cmd.Flags().StringVar(&templateCategory, "category", "", "Only this category")
	cmd.Flags().StringVar(&templateDifficulty, "difficulty", "", "Only this difficulty: Beginner, Intermediate or Advanced")

	RootCmd.AddCommand(cmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		tmpl, err := app.Templates.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(out, tmpl)
	}

	templates, err := app.Templates.Search(cmd.Context(), template.SearchOptions{
		Query:      templateQuery,
		Category:   templateCategory,
		Difficulty: template.Difficulty(templateDifficulty),
	})
	if err != nil {
		return fmt.Errorf("list templates: %w", err)
	}
	if !textFormat() {
		return printJSON(out, templates)
	}
	for _, t := range templates {
		if _, err := fmt.Fprintf(out, "%-22s %-14s %-12s %3dd  %s\n", t.ID, t.Category, t.Difficulty, t.Duration, t.Name); err != nil {
			return err
		}
	}
	return nil
}
