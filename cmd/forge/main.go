// Command forge exports component trees to framework source files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/barun-bash/forge/internal/cli"
	"github.com/barun-bash/forge/internal/version"
)

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:           "forge",
	Short:         "Export visual component trees to React, Vue, Svelte and Angular",
	Long:          "forge turns a framework-neutral component tree into idiomatic source for one target framework and styling system.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version.Info()
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log pipeline details to stderr")
	rootCmd.PersistentFlags().String("theme", "", "Color theme: default, dark, minimal")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// .env is optional; FORGE_* variables it sets feed the export config.
		_ = godotenv.Load()

		if noColor, _ := rootCmd.PersistentFlags().GetBool("no-color"); noColor {
			cli.ColorEnabled = false
		}
		theme, _ := rootCmd.PersistentFlags().GetString("theme")
		if theme == "" {
			theme = os.Getenv("FORGE_THEME")
		}
		if theme != "" {
			if err := cli.SetTheme(theme); err != nil {
				return err
			}
		}
		if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			logger = l
		}
		return nil
	}
	rootCmd.AddCommand(exportCmd, targetsCmd, initCmd, versionCmd, mcpCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the forge version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "forge v%s\n", version.Info())
	},
}

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.Error(err.Error()))
		os.Exit(1)
	}
}
