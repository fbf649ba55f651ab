package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/abdidvp/codeshift/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the codeshift MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start codeshift MCP server (stdio)",
		Long:  "Start the codeshift MCP server using stdio transport. This lets AI coding assistants convert, fix and test snippets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				projectPath, _ = cmd.Flags().GetString("config-dir")
			}
			a, err := loadAppAt(cmd, projectPath)
			if err != nil {
				return err
			}
			defer a.close()

			s := mcpadapter.NewCodeshiftMCPServer(a.conversions, a.tests)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to --config-dir)")

	return cmd
}
