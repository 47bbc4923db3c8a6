package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/selflab/internal/domain/dailylog"
	"github.com/rpggio/selflab/internal/domain/experiment"
	"github.com/rpggio/selflab/internal/domain/stats"
	"github.com/rpggio/selflab/internal/domain/template"
	"github.com/rpggio/selflab/internal/domain/wiki"
)

// ExperimentService defines experiment operations needed by MCP.
type ExperimentService interface {
	List(ctx context.Context) ([]experiment.Experiment, error)
	Get(ctx context.Context, id string) (*experiment.Experiment, error)
	FilterByStatus(ctx context.Context, status experiment.Status) ([]experiment.Experiment, error)
	Create(ctx context.Context, req experiment.CreateRequest) (*experiment.Experiment, error)
	Update(ctx context.Context, id string, patch experiment.Patch) (*experiment.Experiment, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// DailyLogService defines daily log operations needed by MCP.
type DailyLogService interface {
	List(ctx context.Context) ([]dailylog.DailyLog, error)
	GetByDate(ctx context.Context, date string) (*dailylog.DailyLog, error)
	Today(ctx context.Context) (*dailylog.DailyLog, error)
	Recent(ctx context.Context, n int) ([]dailylog.DailyLog, error)
	Upsert(ctx context.Context, req dailylog.UpsertRequest) (*dailylog.DailyLog, error)
}

// TemplateService defines template operations needed by MCP.
type TemplateService interface {
	List(ctx context.Context) ([]template.Template, error)
	Get(ctx context.Context, id string) (*template.Template, error)
	Search(ctx context.Context, opts template.SearchOptions) ([]template.Template, error)
}

// WikiService defines wiki operations needed by MCP.
type WikiService interface {
	List(ctx context.Context) ([]wiki.Entry, error)
	Get(ctx context.Context, id string) (*wiki.Entry, error)
	Create(ctx context.Context, req wiki.CreateRequest) (*wiki.Entry, error)
	Update(ctx context.Context, id string, patch wiki.Patch) (*wiki.Entry, error)
	Delete(ctx context.Context, id string) (bool, error)
	Categories(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
	Search(ctx context.Context, opts wiki.SearchOptions) ([]wiki.Entry, error)
}

// StatsService defines the derived views needed by MCP.
type StatsService interface {
	Compute(ctx context.Context) (*stats.Snapshot, error)
	Insights(ctx context.Context, n int) (*stats.Insights, error)
}

// HealthChecker reports the store's last write failure.
type HealthChecker interface {
	Health() error
}

// Services contains all domain services needed by MCP.
type Services struct {
	Experiments ExperimentService
	DailyLogs   DailyLogService
	Templates   TemplateService
	Wiki        WikiService
	Stats       StatsService
	Store       HealthChecker
}

// Config contains server configuration.
type Config struct {
	Services Services
	Version  string
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "selflab",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
