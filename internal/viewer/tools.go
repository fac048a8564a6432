package viewer

import (
	"context"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/jamesprial/dock-status/internal/tools"
)

const (
	toolNameSuggestions = "dock_suggestions"
	toolNameFetch       = "dock_fetch"
	toolNameDisplay     = "dock_display"
	toolNameStop        = "dock_stop"
)

// ViewerTools returns the tool registrations that drive v over MCP.
func ViewerTools(v Viewer, audit *zap.Logger) []tools.Registration {
	return []tools.Registration{
		dockSuggestions(v, audit),
		dockFetch(v, audit),
		dockDisplay(v, audit),
		dockStop(v, audit),
	}
}

// dockSuggestions constructs the dock_suggestions Registration.
func dockSuggestions(v Viewer, audit *zap.Logger) tools.Registration {
	tool := mcp.NewTool(toolNameSuggestions,
		mcp.WithDescription("Reload the dock status and list the MAC address of every known dock, lowercased, in the order the dock reports them."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		params := map[string]any{}

		ids := v.Load(ctx)
		if ids == nil {
			tools.LogAudit(audit, toolNameSuggestions, params, "error: "+MsgConnectionError, start)
			return tools.ErrorResult(MsgConnectionError), nil
		}

		tools.LogAudit(audit, toolNameSuggestions, params, "ok", start)
		return tools.JSONResult(ids), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// dockFetch constructs the dock_fetch Registration.
func dockFetch(v Viewer, audit *zap.Logger) tools.Registration {
	tool := mcp.NewTool(toolNameFetch,
		mcp.WithDescription("Select a dock by MAC address (case-insensitive) and show its cell voltage table. On success the display keeps refreshing until another dock is selected or dock_stop is called."),
		mcp.WithString("mac",
			mcp.Required(),
			mcp.Description("MAC address of the dock, e.g. aa:bb:cc:dd:ee:ff."),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		mac := req.GetString("mac", "")
		params := map[string]any{"mac": mac}

		if strings.TrimSpace(mac) == "" {
			tools.LogAudit(audit, toolNameFetch, params, "error: mac is required", start)
			return tools.ErrorResult("mac is required"), nil
		}

		out := v.Fetch(ctx, mac)
		tools.LogAudit(audit, toolNameFetch, params, string(out.State), start)
		return tools.JSONResult(out), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// dockDisplay constructs the dock_display Registration.
func dockDisplay(v Viewer, audit *zap.Logger) tools.Registration {
	tool := mcp.NewTool(toolNameDisplay,
		mcp.WithDescription("Return the viewer state and the current display content: a cell voltage table or a status message."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		snap := v.Snapshot()
		tools.LogAudit(audit, toolNameDisplay, map[string]any{}, "ok", start)
		return tools.JSONResult(snap), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// dockStop constructs the dock_stop Registration.
func dockStop(v Viewer, audit *zap.Logger) tools.Registration {
	tool := mcp.NewTool(toolNameStop,
		mcp.WithDescription("Stop refreshing the selected dock. The last display content is kept."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		v.Stop()
		tools.LogAudit(audit, toolNameStop, map[string]any{}, "ok", start)
		return tools.JSONResult(v.Snapshot()), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
