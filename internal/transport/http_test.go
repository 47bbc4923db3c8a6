package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/selflab/internal/domain/stats"
)

type statsStub struct {
	snap *stats.Snapshot
	err  error
}

func (s statsStub) Compute(context.Context) (*stats.Snapshot, error) {
	return s.snap, s.err
}

type healthStub struct {
	err error
}

func (h healthStub) Health() error { return h.err }

func TestHTTPServer_Health(t *testing.T) {
	server := httptest.NewServer(NewServer(Config{Store: healthStub{}}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHTTPServer_HealthDegraded(t *testing.T) {
	server := httptest.NewServer(NewServer(Config{Store: healthStub{err: errors.New("disk full")}}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "degraded", body["status"])
	require.Equal(t, "disk full", body["error"])
}

func TestHTTPServer_Stats(t *testing.T) {
	snap := &stats.Snapshot{ActiveExperiments: 2, TotalLogs: 5, CurrentStreak: 3}
	server := httptest.NewServer(NewServer(Config{Stats: statsStub{snap: snap}}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/api/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.EqualValues(t, 2, got["activeExperiments"])
	require.EqualValues(t, 3, got["currentStreak"])
}

func TestHTTPServer_StatsError(t *testing.T) {
	server := httptest.NewServer(NewServer(Config{Stats: statsStub{err: errors.New("boom")}}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/api/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

type pingResult struct {
	OK bool `json:"ok"`
}

func TestHTTPServer_MCPRoundTrip(t *testing.T) {
	mcpServer := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "test", Version: "test"}, nil)
	sdkmcp.AddTool(mcpServer, &sdkmcp.Tool{Name: "ping_store"}, func(context.Context, *sdkmcp.CallToolRequest, struct{}) (*sdkmcp.CallToolResult, pingResult, error) {
		return nil, pingResult{OK: true}, nil
	})

	server := httptest.NewServer(NewServer(Config{MCP: NewMCPHandler(mcpServer)}))
	t.Cleanup(server.Close)

	ctx := context.Background()
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "client", Version: "test"}, nil)
	session, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{Endpoint: server.URL + "/mcp"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tools.Tools, 1)
	require.Equal(t, "ping_store", tools.Tools[0].Name)
}
