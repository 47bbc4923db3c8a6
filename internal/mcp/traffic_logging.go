package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxPayloadLog caps how much of a request or result body reaches the log.
const maxPayloadLog = 2048

// trafficLoggingMiddleware logs each MCP exchange at debug level. Tool calls
// carry the tool name, and a tool that reports an error result is flagged
// even though the protocol call itself succeeded.
func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			attrs := []any{"direction", direction, "method", method}
			if id := sessionID(req); id != "" {
				attrs = append(attrs, "session_id", id)
			}
			params := requestParams(req)
			if tool := toolName(params); tool != "" {
				attrs = append(attrs, "tool", tool)
			}

			logger.Debug("mcp request", append(attrs, "params", formatPayload(params))...)

			start := time.Now()
			result, err := next(ctx, method, req)
			if strings.HasPrefix(method, "notifications/") {
				return result, err
			}

			attrs = append(attrs, "duration", time.Since(start))
			switch {
			case err != nil:
				attrs = append(attrs, "error", err)
			case isToolError(result):
				attrs = append(attrs, "tool_error", true, "result", formatPayload(result))
			default:
				attrs = append(attrs, "result", formatPayload(result))
			}
			logger.Debug("mcp response", attrs...)

			return result, err
		}
	}
}

func sessionID(req sdkmcp.Request) string {
	if req == nil {
		return ""
	}
	defer func() { recover() }()
	session := req.GetSession()
	if session == nil {
		return ""
	}
	return session.ID()
}

func requestParams(req sdkmcp.Request) sdkmcp.Params {
	if req == nil {
		return nil
	}
	defer func() { recover() }()
	return req.GetParams()
}

func toolName(params sdkmcp.Params) string {
	switch p := params.(type) {
	case *sdkmcp.CallToolParamsRaw:
		if p != nil {
			return p.Name
		}
	case *sdkmcp.CallToolParams:
		if p != nil {
			return p.Name
		}
	}
	return ""
}

func isToolError(result sdkmcp.Result) bool {
	res, ok := result.(*sdkmcp.CallToolResult)
	return ok && res != nil && res.IsError
}

func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	if len(data) > maxPayloadLog {
		return string(data[:maxPayloadLog]) + "...(truncated)"
	}
	return string(data)
}
