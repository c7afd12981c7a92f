package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barun-bash/forge/internal/cli"
	"github.com/barun-bash/forge/internal/codegen/themes"
	"github.com/barun-bash/forge/internal/config"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List target frameworks and styling systems",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, cli.Heading("Targets"))
		for _, t := range config.Targets() {
			fmt.Fprintf(w, "  %-8s %s\n", t, cli.Muted(t.Description()))
		}
		fmt.Fprintln(w, cli.Heading("Styling systems"))
		for _, s := range config.Stylings() {
			name := string(s)
			if sys := themes.Registry(s); sys != nil {
				name = sys.Name
			}
			fmt.Fprintf(w, "  %-12s %s\n", s, cli.Muted(name+": "+s.Description()))
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write .forge/export.yaml with the current defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := exportConfig(cmd)
		if err != nil {
			return err
		}
		if diags := cfg.Validate(); len(diags) > 0 {
			cli.Diagnostics(cmd.OutOrStdout(), diags)
			return fmt.Errorf("invalid configuration")
		}
		project, _ := cmd.Flags().GetString("project")
		if err := config.Save(project, cfg); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cli.Success("saved "+cfg.String()))
		return nil
	},
}

func init() {
	f := initCmd.Flags()
	f.StringP("target", "t", "", "Target framework")
	f.StringP("styling", "s", "", "Styling system")
	f.Bool("typed", false, "Emit type annotations")
	f.Bool("a11y", false, "Add ARIA and role attributes")
	f.Bool("responsive", false, "Emit per-breakpoint rules")
	f.Bool("tests", false, "Emit a smoke test")
	f.String("project", ".", "Project directory")
}
