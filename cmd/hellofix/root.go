package main

import (
	"os"

	"hellofix/internal/config"
	"hellofix/internal/fixture"
	"hellofix/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hellofix",
	Short: "hellofix - a known-simple fixture tool",
	Long: `hellofix is a deliberately simple fixture binary for validating tooling
(linters, formatters, analyzers, test harnesses) against a predictable input.

Run without arguments it replays the canonical sequence: greet "World",
then add 1 and 2, producing exactly two lines of output.`,
	Version:       version.Info(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Bare invocation executes the fixture sequence directly, so the
	// binary stays usable as plain sample input with no CLI knowledge.
	RunE: func(cmd *cobra.Command, args []string) error {
		return fixture.Run(os.Stdout)
	},
}

func init() {
	rootCmd.SetVersionTemplate(version.Full() + "\n")
}

// resolveFormat determines the effective output format.
// Precedence: CLI flag > HELLOFIX_FORMAT env var > config file > human
func resolveFormat(flagValue string) (OutputFormat, error) {
	if flagValue != "" {
		return ParseFormat(flagValue)
	}

	if env := os.Getenv("HELLOFIX_FORMAT"); env != "" {
		return ParseFormat(env)
	}

	cfg, err := config.Load(".")
	if err != nil {
		return "", err
	}
	return ParseFormat(cfg.Output.Format)
}
