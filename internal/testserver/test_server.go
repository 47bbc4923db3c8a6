// Package testserver runs the full HTTP stack against an in-memory store for
// end-to-end tests.
package testserver

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/selflab/internal/domain/calendar"
	"github.com/rpggio/selflab/internal/domain/dailylog"
	"github.com/rpggio/selflab/internal/domain/experiment"
	"github.com/rpggio/selflab/internal/domain/stats"
	"github.com/rpggio/selflab/internal/domain/template"
	"github.com/rpggio/selflab/internal/domain/wiki"
	"github.com/rpggio/selflab/internal/idgen"
	"github.com/rpggio/selflab/internal/kvstore"
	"github.com/rpggio/selflab/internal/mcp"
	"github.com/rpggio/selflab/internal/storage"
	"github.com/rpggio/selflab/internal/transport"
)

type TestServer struct {
	Server *httptest.Server
	Store  *kvstore.Store
	Clock  calendar.Clock
}

// New serves /mcp, /health and /api/stats over httptest with every clock
// reading pinned to now.
func New(t *testing.T, now time.Time) *TestServer {
	t.Helper()
	ctx := context.Background()

	store := kvstore.New(kvstore.NewMemoryBackend(), nil)
	repos := storage.New(store)
	clock := calendar.Fixed(now)
	ids := idgen.NewULID()

	templates := template.NewService(repos.Templates, nil)
	require.NoError(t, templates.Seed(ctx))
	entries := wiki.NewService(repos.Wiki, ids, clock, nil)
	require.NoError(t, entries.Seed(ctx))

	aggregator := stats.NewAggregator(repos.Experiments, repos.DailyLogs, clock)
	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Experiments: experiment.NewService(repos.Experiments, ids, clock, nil),
			DailyLogs:   dailylog.NewService(repos.DailyLogs, ids, clock, nil),
			Templates:   templates,
			Wiki:        entries,
			Stats:       aggregator,
			Store:       store,
		},
		Version: "test",
	})

	server := httptest.NewServer(transport.NewServer(transport.Config{
		MCP:   transport.NewMCPHandler(mcpServer),
		Stats: aggregator,
		Store: store,
	}))

	t.Cleanup(func() {
		server.Close()
		_ = store.Close()
	})

	return &TestServer{Server: server, Store: store, Clock: clock}
}

// Connect opens a streamable MCP client session against the server.
func (ts *TestServer) Connect(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint: ts.Server.URL + "/mcp",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return session
}

// CallTool invokes a tool, requires success and decodes its structured result.
func CallTool[T any](t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) T {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.False(t, res.IsError, "tool %s returned an error result", name)

	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}
