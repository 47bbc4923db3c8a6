package main

import (
	"context"
	"os"
	"os/exec"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/selflab/internal/cli"
)

const serveEnv = "SELFLAB_TEST_SERVE"

// TestMain lets the test binary double as the server process so the stdio
// test can spawn it without a separate build step.
func TestMain(m *testing.M) {
	if os.Getenv(serveEnv) == "1" {
		cli.RootCmd.SetArgs([]string{"serve", "--transport", "stdio", "--store", "memory"})
		os.Exit(cli.Execute())
	}
	os.Exit(m.Run())
}

func TestStdioProtocol(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, os.Args[0])
	cmd.Env = append(os.Environ(),
		serveEnv+"=1",
		"SELFLAB_CONFIG_PATH=",
		"SELFLAB_LOG_LEVEL=error",
	)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, &sdkmcp.CommandTransport{Command: cmd}, nil)
	require.NoError(t, err)
	defer session.Close()

	t.Run("ServerInfo", func(t *testing.T) {
		initResult := session.InitializeResult()
		require.NotNil(t, initResult)
		require.NotNil(t, initResult.ServerInfo)
		require.Equal(t, "selflab", initResult.ServerInfo.Name)
	})

	t.Run("ListTools", func(t *testing.T) {
		tools, err := session.ListTools(ctx, nil)
		require.NoError(t, err)

		names := make(map[string]bool)
		for _, tool := range tools.Tools {
			names[tool.Name] = true
		}
		for _, want := range []string{"create_experiment", "save_daily_log", "get_stats", "list_templates", "store_health"} {
			require.True(t, names[want], "missing tool %s", want)
		}
	})

	t.Run("CallTool", func(t *testing.T) {
		res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
			Name:      "list_templates",
			Arguments: map[string]any{},
		})
		require.NoError(t, err)
		require.False(t, res.IsError)
		require.NotNil(t, res.StructuredContent)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
			Name:      "save_daily_log",
			Arguments: map[string]any{"date": "2024-01-01", "energy": 42},
		})
		require.NoError(t, err)
		require.True(t, res.IsError)
	})
}
