// Package mcp exposes the portfolio aggregates as MCP tools so agents can
// query the same snapshot the dashboard renders.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ganot/portico/internal/domain/portfolio"
)

// Tool name constants.
const (
	ToolNameSummary  = "portfolio_summary"
	ToolNameProjects = "portfolio_projects"
	ToolNameRefresh  = "portfolio_refresh"
)

// SnapshotSource provides cached portfolio snapshots.
type SnapshotSource interface {
	GetOrLoad(ctx context.Context) portfolio.Snapshot
	Invalidate()
}

// SummaryInput is the (empty) input schema for the summary tool.
type SummaryInput struct{}

// ProjectsInput is the input schema for the project listing tool.
type ProjectsInput struct {
	Categories  []string `json:"categories,omitempty"   jsonschema:"restrict to these categories (empty means all)"`
	Phases      []string `json:"phases,omitempty"       jsonschema:"restrict to these lifecycle phases (empty means all)"`
	MinPriority int      `json:"min_priority,omitempty" jsonschema:"minimum priority level, 1-4"`
}

// RefreshInput is the (empty) input schema for the refresh tool.
type RefreshInput struct{}

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

type server struct {
	snapshots SnapshotSource
}

// NewServer creates an MCP server with the portfolio tools registered.
func NewServer(snapshots SnapshotSource, logger *slog.Logger) *sdkmcp.Server {
	srv := &server{snapshots: snapshots}

	s := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "portico",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Logger: logger,
	})

	sdkmcp.AddTool(s, &sdkmcp.Tool{
		Name:        ToolNameSummary,
		Description: "Aggregate portfolio statistics: totals, phase pipeline, risk vs impact, resource distribution",
	}, srv.handleSummary)

	sdkmcp.AddTool(s, &sdkmcp.Tool{
		Name:        ToolNameProjects,
		Description: "List portfolio projects, optionally filtered by category, phase, and minimum priority",
	}, srv.handleProjects)

	sdkmcp.AddTool(s, &sdkmcp.Tool{
		Name:        ToolNameRefresh,
		Description: "Drop the cached snapshot and reload it from the tracker database",
	}, srv.handleRefresh)

	return s
}

func (s *server) handleSummary(ctx context.Context, _ *sdkmcp.CallToolRequest, _ SummaryInput) (*sdkmcp.CallToolResult, ToolOutput, error) {
	snap := s.snapshots.GetOrLoad(ctx)
	return jsonResult(portfolio.Summarize(snap))
}

func (s *server) handleProjects(ctx context.Context, _ *sdkmcp.CallToolRequest, input ProjectsInput) (*sdkmcp.CallToolResult, ToolOutput, error) {
	snap := s.snapshots.GetOrLoad(ctx)
	filtered := portfolio.Filter(snap.Records, portfolio.FilterOptions{
		Categories:  input.Categories,
		Phases:      input.Phases,
		MinPriority: input.MinPriority,
	})

	return jsonResult(map[string]any{
		"projects":    filtered,
		"total":       len(snap.Records),
		"unavailable": snap.Unavailable,
	})
}

func (s *server) handleRefresh(ctx context.Context, _ *sdkmcp.CallToolRequest, _ RefreshInput) (*sdkmcp.CallToolResult, ToolOutput, error) {
	s.snapshots.Invalidate()
	snap := s.snapshots.GetOrLoad(ctx)
	return jsonResult(portfolio.Summarize(snap))
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*sdkmcp.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, ToolOutput{}, fmt.Errorf("encode result: %w", err)
	}

	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}
