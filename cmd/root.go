package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/mj1618/a11y-bridge/internal/version"
	"github.com/spf13/cobra"
)

// fixtureEnv names the environment variable that supplies the default --fixture.
const fixtureEnv = "A11Y_FIXTURE"

var rootCmd = &cobra.Command{
	Use:   "a11y-bridge",
	Short: "Inspect and drive a widget tree through its accessibility adapters",
	Long: `a11y-bridge exposes a toolkit's widget tree as accessible objects with
roles, names, states, actions, values and focus, the way an assistive
technology sees it.

Elements are addressed by snapshot ID (--id), stable path ref (--ref) or
text match (--text).`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "auto", "Output format: auto, yaml, json, text")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON")
	rootCmd.PersistentFlags().String("fixture", os.Getenv(fixtureEnv), "Widget fixture to load (default $"+fixtureEnv+")")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("strict", false, "Panic on focus desync instead of logging it")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Read the root flag directly so subcommand flags cannot shadow it.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}
