package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/selflab/internal/domain/dailylog"
	"github.com/rpggio/selflab/internal/domain/experiment"
	"github.com/rpggio/selflab/internal/domain/stats"
	"github.com/rpggio/selflab/internal/domain/template"
	"github.com/rpggio/selflab/internal/domain/wiki"
)

func registerTools(server *sdkmcp.Server, svc Services) {
	registerExperimentTools(server, svc.Experiments)
	registerDailyLogTools(server, svc.DailyLogs)
	registerTemplateTools(server, svc.Templates)
	registerWikiTools(server, svc.Wiki)
	registerStatsTools(server, svc.Stats, svc.Store)
}

func registerExperimentTools(server *sdkmcp.Server, experiments ExperimentService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_experiments",
		Description: "List experiments in creation order, optionally filtered by status",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListExperimentsParams) (*sdkmcp.CallToolResult, ListExperimentsResponse, error) {
		var (
			list []experiment.Experiment
			err  error
		)
		if in.Status != "" {
			list, err = experiments.FilterByStatus(ctx, in.Status)
		} else {
			list, err = experiments.List(ctx)
		}
		if err != nil {
			return nil, ListExperimentsResponse{}, toolError(err)
		}
		return nil, ListExperimentsResponse{Experiments: list}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_experiment",
		Description: "Get one experiment by ID",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDParams) (*sdkmcp.CallToolResult, ExperimentResponse, error) {
		exp, err := experiments.Get(ctx, in.ID)
		if err != nil {
			return nil, ExperimentResponse{}, toolError(err)
		}
		return nil, ExperimentResponse{Experiment: *exp}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_experiment",
		Description: "Create an experiment with a hypothesis, date range, variables and metrics",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in CreateExperimentParams) (*sdkmcp.CallToolResult, ExperimentResponse, error) {
		exp, err := experiments.Create(ctx, experiment.CreateRequest{
			Name:       in.Name,
			Hypothesis: in.Hypothesis,
			Duration:   in.Duration,
			StartDate:  in.StartDate,
			EndDate:    in.EndDate,
			Variables:  in.Variables,
			Metrics:    in.Metrics,
			Notes:      in.Notes,
			Status:     in.Status,
		})
		if err != nil {
			return nil, ExperimentResponse{}, toolError(err)
		}
		return nil, ExperimentResponse{Experiment: *exp}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_experiment",
		Description: "Change selected fields of an experiment; omitted fields are kept",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateExperimentParams) (*sdkmcp.CallToolResult, ExperimentResponse, error) {
		exp, err := experiments.Update(ctx, in.ID, experiment.Patch{
			Name:       in.Name,
			Hypothesis: in.Hypothesis,
			Duration:   in.Duration,
			StartDate:  in.StartDate,
			EndDate:    in.EndDate,
			Variables:  in.Variables,
			Metrics:    in.Metrics,
			Notes:      in.Notes,
			Status:     in.Status,
			Progress:   in.Progress,
		})
		if err != nil {
			return nil, ExperimentResponse{}, toolError(err)
		}
		return nil, ExperimentResponse{Experiment: *exp}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_experiment",
		Description: "Delete an experiment; reports deleted=false for an unknown ID",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDParams) (*sdkmcp.CallToolResult, DeleteResponse, error) {
		deleted, err := experiments.Delete(ctx, in.ID)
		if err != nil {
			return nil, DeleteResponse{}, toolError(err)
		}
		return nil, DeleteResponse{Deleted: deleted}, nil
	})
}

func registerDailyLogTools(server *sdkmcp.Server, logs DailyLogService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_daily_logs",
		Description: "List every daily log in store order",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ListDailyLogsResponse, error) {
		list, err := logs.List(ctx)
		if err != nil {
			return nil, ListDailyLogsResponse{}, toolError(err)
		}
		return nil, ListDailyLogsResponse{Logs: list}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_daily_log",
		Description: "Get the log for a date (default today); found=false when none was recorded",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetDailyLogParams) (*sdkmcp.CallToolResult, DailyLogResponse, error) {
		var (
			log *dailylog.DailyLog
			err error
		)
		if in.Date == "" {
			log, err = logs.Today(ctx)
		} else {
			log, err = logs.GetByDate(ctx, in.Date)
		}
		if err != nil {
			return nil, DailyLogResponse{}, toolError(err)
		}
		return nil, DailyLogResponse{Found: log != nil, Log: log}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "save_daily_log",
		Description: "Record the metrics for a date, replacing any log already saved for that date",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SaveDailyLogParams) (*sdkmcp.CallToolResult, DailyLogResponse, error) {
		log, err := logs.Upsert(ctx, dailylog.UpsertRequest{
			Date:          in.Date,
			SleepHours:    in.SleepHours,
			Mood:          in.Mood,
			Energy:        in.Energy,
			Notes:         in.Notes,
			Protocols:     in.Protocols,
			CustomMetrics: in.CustomMetrics,
		})
		if err != nil {
			return nil, DailyLogResponse{}, toolError(err)
		}
		return nil, DailyLogResponse{Found: true, Log: log}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "recent_daily_logs",
		Description: "List the most recent logs, newest first",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in RecentDailyLogsParams) (*sdkmcp.CallToolResult, ListDailyLogsResponse, error) {
		list, err := logs.Recent(ctx, in.Limit)
		if err != nil {
			return nil, ListDailyLogsResponse{}, toolError(err)
		}
		return nil, ListDailyLogsResponse{Logs: list}, nil
	})
}

func registerTemplateTools(server *sdkmcp.Server, templates TemplateService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_templates",
		Description: "List the built-in experiment templates",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ListTemplatesResponse, error) {
		list, err := templates.List(ctx)
		if err != nil {
			return nil, ListTemplatesResponse{}, toolError(err)
		}
		return nil, ListTemplatesResponse{Templates: list}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_templates",
		Description: "Filter the template catalog by text, category and difficulty",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SearchTemplatesParams) (*sdkmcp.CallToolResult, ListTemplatesResponse, error) {
		list, err := templates.Search(ctx, template.SearchOptions{
			Query:      in.Query,
			Category:   in.Category,
			Difficulty: in.Difficulty,
		})
		if err != nil {
			return nil, ListTemplatesResponse{}, toolError(err)
		}
		return nil, ListTemplatesResponse{Templates: list}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_template",
		Description: "Get one experiment template by ID",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDParams) (*sdkmcp.CallToolResult, TemplateResponse, error) {
		tmpl, err := templates.Get(ctx, in.ID)
		if err != nil {
			return nil, TemplateResponse{}, toolError(err)
		}
		return nil, TemplateResponse{Template: *tmpl}, nil
	})
}

func registerWikiTools(server *sdkmcp.Server, entries WikiService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_wiki_entries",
		Description: "List wiki entries in creation order",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ListWikiEntriesResponse, error) {
		list, err := entries.List(ctx)
		if err != nil {
			return nil, ListWikiEntriesResponse{}, toolError(err)
		}
		return nil, ListWikiEntriesResponse{Entries: list}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_wiki_entries",
		Description: "Filter wiki entries by text, category, status, visibility and tag",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SearchWikiEntriesParams) (*sdkmcp.CallToolResult, ListWikiEntriesResponse, error) {
		list, err := entries.Search(ctx, wiki.SearchOptions{
			Query:      in.Query,
			Category:   in.Category,
			Status:     in.Status,
			Visibility: in.Visibility,
			Tag:        in.Tag,
			Limit:      in.Limit,
			Offset:     in.Offset,
		})
		if err != nil {
			return nil, ListWikiEntriesResponse{}, toolError(err)
		}
		return nil, ListWikiEntriesResponse{Entries: list}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_wiki_entry",
		Description: "Get one wiki entry by ID",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDParams) (*sdkmcp.CallToolResult, WikiEntryResponse, error) {
		entry, err := entries.Get(ctx, in.ID)
		if err != nil {
			return nil, WikiEntryResponse{}, toolError(err)
		}
		return nil, WikiEntryResponse{Entry: *entry}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_wiki_entry",
		Description: "Create a wiki entry",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in CreateWikiEntryParams) (*sdkmcp.CallToolResult, WikiEntryResponse, error) {
		entry, err := entries.Create(ctx, wiki.CreateRequest{
			Title:        in.Title,
			Summary:      in.Summary,
			Content:      in.Content,
			Tags:         in.Tags,
			Category:     in.Category,
			Status:       in.Status,
			Priority:     in.Priority,
			IsPublic:     in.IsPublic,
			Rating:       in.Rating,
			Attachments:  toAttachments(in.Attachments),
			RelatedLinks: toLinks(in.RelatedLinks),
		})
		if err != nil {
			return nil, WikiEntryResponse{}, toolError(err)
		}
		return nil, WikiEntryResponse{Entry: *entry}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_wiki_entry",
		Description: "Change selected fields of a wiki entry; omitted fields are kept",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateWikiEntryParams) (*sdkmcp.CallToolResult, WikiEntryResponse, error) {
		entry, err := entries.Update(ctx, in.ID, wiki.Patch{
			Title:        in.Title,
			Summary:      in.Summary,
			Content:      in.Content,
			Tags:         in.Tags,
			Category:     in.Category,
			Status:       in.Status,
			Priority:     in.Priority,
			IsPublic:     in.IsPublic,
			Rating:       in.Rating,
			Attachments:  toAttachments(in.Attachments),
			RelatedLinks: toLinks(in.RelatedLinks),
		})
		if err != nil {
			return nil, WikiEntryResponse{}, toolError(err)
		}
		return nil, WikiEntryResponse{Entry: *entry}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_wiki_entry",
		Description: "Delete a wiki entry; reports deleted=false for an unknown ID",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDParams) (*sdkmcp.CallToolResult, DeleteResponse, error) {
		deleted, err := entries.Delete(ctx, in.ID)
		if err != nil {
			return nil, DeleteResponse{}, toolError(err)
		}
		return nil, DeleteResponse{Deleted: deleted}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_wiki_categories",
		Description: "List the distinct wiki categories, sorted",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, CategoriesResponse, error) {
		categories, err := entries.Categories(ctx)
		if err != nil {
			return nil, CategoriesResponse{}, toolError(err)
		}
		return nil, CategoriesResponse{Categories: categories}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_wiki_tags",
		Description: "List the distinct wiki tags, sorted",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, TagsResponse, error) {
		tags, err := entries.Tags(ctx)
		if err != nil {
			return nil, TagsResponse{}, toolError(err)
		}
		return nil, TagsResponse{Tags: tags}, nil
	})
}

func registerStatsTools(server *sdkmcp.Server, aggregator StatsService, store HealthChecker) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_stats",
		Description: "Summarize active and completed experiments, log count, current streak and per-experiment progress",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, stats.Snapshot, error) {
		snap, err := aggregator.Compute(ctx)
		if err != nil {
			return nil, stats.Snapshot{}, toolError(err)
		}
		return nil, *snap, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_insights",
		Description: "Energy and sleep series plus weekly mood averages over recent logs",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetInsightsParams) (*sdkmcp.CallToolResult, stats.Insights, error) {
		insights, err := aggregator.Insights(ctx, in.Limit)
		if err != nil {
			return nil, stats.Insights{}, toolError(err)
		}
		return nil, *insights, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "store_health",
		Description: "Report whether the most recent write reached the store",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, StoreHealthResponse, error) {
		if store == nil {
			return nil, StoreHealthResponse{Healthy: true}, nil
		}
		if err := store.Health(); err != nil {
			return nil, StoreHealthResponse{Healthy: false, Error: err.Error()}, nil
		}
		return nil, StoreHealthResponse{Healthy: true}, nil
	})
}
