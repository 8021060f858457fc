package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hellofix/internal/calc"
	"hellofix/internal/envelope"
)

var calcFormat string

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Stateless arithmetic over two operands",
	Long: `Evaluate an arithmetic operation over two numeric operands.

Operands parse as integers when integral and floats otherwise; anything
non-numeric fails with a TYPE_MISMATCH error.

Examples:
  hellofix calc add 1 2         # 3
  hellofix calc sub 5 3         # 2
  hellofix calc add 1 2.5       # 3.5`,
}

var calcAddCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Return the sum of two operands",
	Args:  cobra.ExactArgs(2),
	RunE:  runCalcOp,
}

var calcSubCmd = &cobra.Command{
	Use:     "subtract <a> <b>",
	Aliases: []string{"sub"},
	Short:   "Return the difference of two operands",
	Args:    cobra.ExactArgs(2),
	RunE:    runCalcOp,
}

// runCalcOp resolves the operation from the subcommand name, including
// the "sub" alias.
func runCalcOp(cmd *cobra.Command, args []string) error {
	op, err := calc.ParseOp(cmd.CalledAs())
	if err != nil {
		return err
	}
	return runCalc(op, args)
}

func init() {
	calcCmd.PersistentFlags().StringVar(&calcFormat, "format", "", "Output format (human, json, yaml)")
	calcCmd.AddCommand(calcAddCmd)
	calcCmd.AddCommand(calcSubCmd)
	rootCmd.AddCommand(calcCmd)
}

func runCalc(op calc.Op, args []string) error {
	start := time.Now()

	a, err := calc.ParseOperand(args[0])
	if err != nil {
		return err
	}
	b, err := calc.ParseOperand(args[1])
	if err != nil {
		return err
	}

	result, err := calc.New().Apply(op, a, b)
	if err != nil {
		return err
	}

	format, err := resolveFormat(calcFormat)
	if err != nil {
		return err
	}

	if format == FormatHuman {
		fmt.Println(formatOperand(result))
		return nil
	}

	resp := &CalcResponse{
		Meta:   envelope.New().WithDuration(start),
		Op:     string(op),
		A:      a,
		B:      b,
		Result: result,
	}
	output, err := FormatResponse(resp, format)
	if err != nil {
		return err
	}
	fmt.Println(output)
	return nil
}
