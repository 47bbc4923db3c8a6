package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/rpggio/selflab/internal/mcp"
	"github.com/rpggio/selflab/internal/transport"
)

const shutdownTimeout = 5 * time.Second

var transportFlag string

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tracker over MCP",
		Long:  "Serve the tracker as an MCP server over stdio, or over streamable HTTP alongside /health and /api/stats.",
		RunE:  runServe,
	}
	cmd.Flags().StringVarP(&transportFlag, "transport", "t", "", "Transport: stdio or http (default from config)")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if transportFlag != "" {
		cfg.Transport = transportFlag
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	stdio := cfg.Transport == "stdio"

	logger, closeLog, err := newLogger(cfg, stdio)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer app.Close()

	mcpServer := mcp.NewServer(mcp.Config{
		Services: app.MCPServices(),
		Version:  Version,
		Logger:   logger,
	})

	if stdio {
		return runStdio(ctx, logger, mcpServer)
	}
	return runHTTP(ctx, logger, app, mcpServer, cfg.Addr())
}

func runStdio(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server) error {
	logger.Info("starting stdio transport")

	// Run blocks until stdin closes or ctx is canceled.
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server: %w", err)
	}
	logger.Info("shutting down")
	return nil
}

func runHTTP(ctx context.Context, logger *slog.Logger, app *App, mcpServer *sdkmcp.Server, addr string) error {
	router := transport.NewServer(transport.Config{
		MCP:    transport.NewMCPHandler(mcpServer),
		Stats:  app.Stats,
		Store:  app.Store,
		Logger: logger,
	})
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	return nil
}
