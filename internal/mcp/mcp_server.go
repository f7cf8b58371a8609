// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/courtside/courtside/core"
	"github.com/courtside/courtside/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// dateParams are the optional date window arguments shared by every tool.
var dateParams = []mcp.ToolOption{
	mcp.WithString("start_date", mcp.Description("Inclusive start date (YYYY-MM-DD or YYYYMMDD). Defaults to the configured window.")),
	mcp.WithString("end_date", mcp.Description("Inclusive end date (YYYY-MM-DD or YYYYMMDD). Defaults to the configured window.")),
}

// NewMCPServer initializes and configures the courtside MCP server without starting it.
// base holds the records loaded at startup; every call derives its own session from it.
func NewMCPServer(baseCfg *contract.Config, base *core.Session) *server.MCPServer {
	s := server.NewMCPServer(
		"Courtside League Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		base:    base,
	}

	// --- 1. Tool: list_teams ---
	s.AddTool(mcp.NewTool("list_teams", withDates(
		mcp.WithDescription("List teams ranked by overall win percentage, with home, away and neutral splits."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of teams returned. Returns every team if omitted or 0.")),
	)...), h.handleListTeams)

	// --- 2. Tool: get_team ---
	s.AddTool(mcp.NewTool("get_team", withDates(
		mcp.WithDescription("Get the win/loss breakdown and game history of one team."),
		mcp.WithString("name", mcp.Description("Team name (case-insensitive).")),
		mcp.WithNumber("team_id", mcp.Description("Team ID. Takes precedence over name.")),
	)...), h.handleGetTeam)

	// --- 3. Tool: top_teams ---
	s.AddTool(mcp.NewTool("top_teams", withDates(
		mcp.WithDescription("Get the N teams with the best overall win percentage. Ties go to the lower team ID."),
		mcp.WithNumber("n", mcp.Description("Number of teams to return. Defaults to 10.")),
	)...), h.handleTopTeams)

	// --- 4. Tool: get_timeseries ---
	s.AddTool(mcp.NewTool("get_timeseries", withDates(
		mcp.WithDescription("Get the cumulative win percentage of one team after each game, in date order."),
		mcp.WithString("name", mcp.Description("Team name (case-insensitive).")),
		mcp.WithNumber("team_id", mcp.Description("Team ID. Takes precedence over name.")),
	)...), h.handleGetTimeseries)

	return s
}

func withDates(opts ...mcp.ToolOption) []mcp.ToolOption {
	return append(opts, dateParams...)
}

// StartMCPServer starts the courtside MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, base *core.Session) error {
	s := NewMCPServer(baseCfg, base)
	return server.ServeStdio(s)
}
