// Package tools provides shared helper utilities for MCP tool handlers.
package tools

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// JSONResult marshals v to indented JSON and returns an mcp.CallToolResult.
func JSONResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("error marshaling result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// ErrorResult returns an mcp.CallToolResult that describes an error condition.
func ErrorResult(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultText(fmt.Sprintf("error: %s", msg))
}

// LogAudit records a tool invocation on the audit logger, silently ignoring a
// nil logger.
func LogAudit(audit *zap.Logger, toolName string, params map[string]any, result string, start time.Time) {
	if audit == nil {
		return
	}
	audit.Info("tool invoked",
		zap.String("tool", toolName),
		zap.Any("params", params),
		zap.String("result", result),
		zap.Time("started", start),
		zap.Duration("duration", time.Since(start)),
	)
}
