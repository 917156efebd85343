package cli

import (
	mcpadapter "github.com/seokraft/seokraft/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the SEOKraft MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var contentPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start SEOKraft MCP server (stdio)",
		Long:  "Start the SEOKraft MCP server using stdio transport. This lets AI writing assistants validate metadata, audit content directories, and inspect live pages.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if contentPath == "" {
				contentPath = "."
			}
			s := mcpadapter.NewServer(contentPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&contentPath, "path", "", "Content path (defaults to current working directory)")

	return cmd
}
