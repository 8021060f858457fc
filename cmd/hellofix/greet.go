package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hellofix/internal/envelope"
	"hellofix/internal/greeter"
)

var greetFormat string

var greetCmd = &cobra.Command{
	Use:   "greet [name]",
	Short: "Emit a greeting for a name",
	Long: `Emit "Hello, <name>!" for the given name. The name is unconstrained
text; omitting it greets "World".

Examples:
  hellofix greet                # Hello, World!
  hellofix greet harness        # Hello, harness!
  hellofix greet --format json  # envelope + message`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGreet,
}

func init() {
	greetCmd.Flags().StringVar(&greetFormat, "format", "", "Output format (human, json, yaml)")
	rootCmd.AddCommand(greetCmd)
}

func runGreet(cmd *cobra.Command, args []string) error {
	start := time.Now()

	name := "World"
	if len(args) == 1 {
		name = args[0]
	}

	format, err := resolveFormat(greetFormat)
	if err != nil {
		return err
	}

	if format == FormatHuman {
		// The emission is the observable outcome; the return value is
		// identical to the emitted line.
		_ = greeter.New(os.Stdout).Greet(name)
		return nil
	}

	message := greeter.New(io.Discard).Greet(name)
	resp := &GreetResponse{
		Meta:    envelope.New().WithDuration(start),
		Name:    name,
		Message: message,
	}
	output, err := FormatResponse(resp, format)
	if err != nil {
		return err
	}
	fmt.Println(output)
	return nil
}
