package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rpggio/selflab/internal/config"
	"github.com/rpggio/selflab/internal/domain/calendar"
	"github.com/rpggio/selflab/internal/domain/dailylog"
	"github.com/rpggio/selflab/internal/domain/experiment"
	"github.com/rpggio/selflab/internal/domain/stats"
	"github.com/rpggio/selflab/internal/domain/template"
	"github.com/rpggio/selflab/internal/domain/wiki"
	"github.com/rpggio/selflab/internal/idgen"
	"github.com/rpggio/selflab/internal/kvstore"
	"github.com/rpggio/selflab/internal/mcp"
	"github.com/rpggio/selflab/internal/redisstore"
	"github.com/rpggio/selflab/internal/sqlite"
	"github.com/rpggio/selflab/internal/storage"
)

// App holds the opened store and the services built on it.
type App struct {
	Store       *kvstore.Store
	Experiments *experiment.Service
	DailyLogs   *dailylog.Service
	Templates   *template.Service
	Wiki        *wiki.Service
	Stats       *stats.Aggregator
	Logger      *slog.Logger
}

// Open connects the configured backend, builds the services and seeds the
// template catalog and sample wiki entries into empty collections. A nil
// logger falls back to slog.Default.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	backend, err := openBackend(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	store := kvstore.New(backend, logger)

	ids, err := idgen.New(idgen.Scheme(cfg.ID.Scheme))
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	clock := calendar.System(loc)

	repos := storage.New(store)
	app := &App{
		Store:       store,
		Experiments: experiment.NewService(repos.Experiments, ids, clock, logger),
		DailyLogs:   dailylog.NewService(repos.DailyLogs, ids, clock, logger),
		Templates:   template.NewService(repos.Templates, logger),
		Wiki:        wiki.NewService(repos.Wiki, ids, clock, logger),
		Stats:       stats.NewAggregator(repos.Experiments, repos.DailyLogs, clock),
		Logger:      logger,
	}

	if err := app.Templates.Seed(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	if err := app.Wiki.Seed(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	logger.Debug("store opened", "backend", cfg.Store.Backend, "id_scheme", cfg.ID.Scheme)
	return app, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// MCPServices exposes the app's services to the MCP server.
func (a *App) MCPServices() mcp.Services {
	return mcp.Services{
		Experiments: a.Experiments,
		DailyLogs:   a.DailyLogs,
		Templates:   a.Templates,
		Wiki:        a.Wiki,
		Stats:       a.Stats,
		Store:       a.Store,
	}
}

func openBackend(ctx context.Context, cfg config.StoreConfig) (kvstore.Backend, error) {
	switch cfg.Backend {
	case "memory":
		return kvstore.NewMemoryBackend(), nil
	case "file":
		backend, err := kvstore.NewFileBackend(cfg.Path)
		if err != nil {
			return nil, err
		}
		return backend, nil
	case "sqlite":
		if err := ensureDBDir(cfg.Path); err != nil {
			return nil, fmt.Errorf("prepare database path: %w", err)
		}
		db, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, err
		}
		return sqlite.NewKVBackend(db), nil
	case "redis":
		backend, err := redisstore.New(ctx, redisstore.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return backend, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
