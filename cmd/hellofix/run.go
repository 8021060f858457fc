package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hellofix/internal/envelope"
	"hellofix/internal/fixture"
)

var runFormat string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay the fixture sequence",
	Long: `Replay the canonical fixture sequence: greet "World", then add 1 and 2.

In human format the transcript is streamed to stdout exactly as the bare
invocation emits it. In json/yaml the transcript lines are wrapped in a
response envelope.

Examples:
  hellofix run                 # Hello, World! / 3
  hellofix run --format json   # envelope + transcript lines`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runFormat, "format", "", "Output format (human, json, yaml)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	start := time.Now()

	format, err := resolveFormat(runFormat)
	if err != nil {
		return err
	}

	if format == FormatHuman {
		return fixture.Run(os.Stdout)
	}

	lines, err := fixture.Transcript()
	if err != nil {
		return err
	}

	resp := &RunResponse{
		Meta:  envelope.New().WithDuration(start),
		Lines: lines,
	}
	output, err := FormatResponse(resp, format)
	if err != nil {
		return err
	}
	fmt.Println(output)
	return nil
}
