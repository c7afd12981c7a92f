package main

import (
	"github.com/spf13/cobra"

	"github.com/barun-bash/forge/internal/cli"
	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve forge tools over MCP on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries protocol messages.
		cli.ColorEnabled = false
		project, _ := cmd.Flags().GetString("project")
		defaults, err := config.Load(project)
		if err != nil {
			return err
		}
		s, err := mcp.NewServer(mcp.WithDefaults(defaults), mcp.WithLogger(logger))
		if err != nil {
			return err
		}
		return s.ServeStdio()
	},
}

func init() {
	mcpCmd.Flags().String("project", ".", "Project directory holding .forge/export.yaml")
}
