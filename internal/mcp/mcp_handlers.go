package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/courtside/courtside/core"
	"github.com/courtside/courtside/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	base    *core.Session
}

// requestConfig clones the base config and applies the date window of the request.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	start := request.GetString("start_date", "")
	end := request.GetString("end_date", "")
	if start == "" && end == "" {
		return cfg, nil
	}
	r, err := contract.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}
	cfg.DateRange = r
	return cfg, nil
}

// teamConfig adds the team selection of the request to cfg.
func teamConfig(cfg *contract.Config, request mcp.CallToolRequest) error {
	cfg.TeamName = request.GetString("name", "")
	cfg.TeamID = request.GetInt("team_id", 0)
	if cfg.TeamID < 0 {
		return fmt.Errorf("team_id must be positive (received %d)", cfg.TeamID)
	}
	if cfg.TeamName == "" && cfg.TeamID == 0 {
		return errors.New("either name or team_id is required")
	}
	return nil
}

// validLimit checks that n lies in [lowest, contract.MaxResultLimit].
func validLimit(name string, n, lowest int) error {
	if n < lowest || n > contract.MaxResultLimit {
		return fmt.Errorf("%s must be between %d and %d (received %d)", name, lowest, contract.MaxResultLimit, n)
	}
	return nil
}

func jsonResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListTeams(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date parameters: %v", err)), nil
	}
	// 0 lists every team
	limit := request.GetInt("limit", 0)
	if err := validLimit("limit", limit, 0); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg.ResultLimit = limit

	ranked, _, err := core.GetTeamsResults(core.WithSuppressHeader(ctx), cfg, h.base)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}
	return jsonResult(ranked)
}

func (h *toolHandler) handleGetTeam(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date parameters: %v", err)), nil
	}
	if err := teamConfig(cfg, request); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	detail, _, err := core.GetTeamResults(core.WithSuppressHeader(ctx), cfg, h.base)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}
	return jsonResult(detail)
}

func (h *toolHandler) handleTopTeams(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date parameters: %v", err)), nil
	}
	n := request.GetInt("n", contract.DefaultTopLimit)
	if err := validLimit("n", n, 1); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg.ResultLimit = n

	ranked, _, err := core.GetTopResults(core.WithSuppressHeader(ctx), cfg, h.base)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}
	return jsonResult(ranked)
}

func (h *toolHandler) handleGetTimeseries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date parameters: %v", err)), nil
	}
	if err := teamConfig(cfg, request); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, _, err := core.GetTimeseriesResults(core.WithSuppressHeader(ctx), cfg, h.base)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("timeseries query failed: %v", err)), nil
	}
	return jsonResult(result)
}
