package cmd

import (
	"github.com/courtside/courtside/core"
	"github.com/courtside/courtside/internal/mcp"
	"github.com/courtside/courtside/schema"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the courtside MCP server",
	Long: `Launch an MCP server over stdio that lets AI agents query league standings, team records and win percentage trends.

Records are loaded once at startup. Each tool call filters them to its own date window.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Headers would pollute stdio, which carries the protocol
		ctx := core.WithSuppressHeader(rootCtx)

		src, closeSource, err := core.OpenRecordSource(cfg)
		if err != nil {
			return err
		}
		base, err := core.LoadSession(ctx, src, schema.OpenDateRange())
		closeSource()
		if err != nil {
			return err
		}
		return mcp.StartMCPServer(ctx, cfg, base)
	},
}
