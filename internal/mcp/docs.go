package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `selflab tracks personal self-experiments: Experiments, Daily Logs, a Template catalog and a Wiki.

Core concepts:
- Experiment: a protocol with a hypothesis, a date range (start_date..end_date), variables and metrics. Status is active, completed or paused.
- Daily Log: one record per calendar date (sleep hours, mood, energy 1-10, protocol adherence per experiment id). Saving a log for a date that already has one replaces it.
- Template: read-only experiment blueprints to copy from.
- Wiki: free-form notes with tags, categories and related links.
- Streak: consecutive days with a log, ending today. Missing today's log means a streak of 0.

Typical workflow:
1) get_stats to orient (active experiments with date-derived progress, current streak).
2) save_daily_log once per day; recent_daily_logs to review.
3) list_templates then create_experiment to start something new.
4) get_insights for energy, sleep and weekly mood series.

Dates are YYYY-MM-DD. Progress values stored on experiments are advisory; get_stats derives progress from the date range.

Docs:
- selflab://docs/index
- selflab://docs/logging
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "selflab://docs/index",
		Name:        "docs_index",
		Title:       "selflab docs index",
		Description: "What the tools do and how the records relate.",
		Content: `# selflab

## Tools

- Experiments: ` + "`list_experiments`" + `, ` + "`get_experiment`" + `, ` + "`create_experiment`" + `, ` + "`update_experiment`" + `, ` + "`delete_experiment`" + `
- Daily logs: ` + "`list_daily_logs`" + `, ` + "`get_daily_log`" + `, ` + "`save_daily_log`" + `, ` + "`recent_daily_logs`" + `
- Templates: ` + "`list_templates`" + `, ` + "`search_templates`" + `, ` + "`get_template`" + `
- Wiki: ` + "`list_wiki_entries`" + `, ` + "`search_wiki_entries`" + `, ` + "`get_wiki_entry`" + `, ` + "`create_wiki_entry`" + `, ` + "`update_wiki_entry`" + `, ` + "`delete_wiki_entry`" + `, ` + "`list_wiki_categories`" + `, ` + "`list_wiki_tags`" + `
- Derived: ` + "`get_stats`" + `, ` + "`get_insights`" + `
- Operations: ` + "`store_health`" + `

## Relationships

Daily logs reference experiments through the keys of ` + "`protocols`" + `. The reference is a plain id:
deleting an experiment leaves old logs untouched.

## Limits

- Deleting an unknown id is not an error; the result reports ` + "`deleted: false`" + `.
- Writes are best effort. If ` + "`store_health`" + ` reports a failure, recent changes may not be durable.
`,
	},
	{
		URI:         "selflab://docs/logging",
		Name:        "docs_logging",
		Title:       "Daily logging guide",
		Description: "How daily logs are keyed, replaced and summarized.",
		Content: `# Daily logging

- One log per date. ` + "`save_daily_log`" + ` for an existing date keeps the original id and creation time and replaces everything else.
- Omit ` + "`date`" + ` to log today (in the server's configured timezone).
- Mood is one of very-low, low, neutral, good, excellent. Weekly mood averages score them 1, 3, 5, 7, 9.
- Energy is 1-10. Sleep hours are 0-24.
- ` + "`protocols`" + ` maps experiment ids to whether the protocol was followed that day.

## Streaks

The streak counts back from today: today, yesterday, the day before, and so on until a day is missing.
No log today means a streak of 0 even if yesterday's chain is long.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
