// Package calc provides stateless arithmetic over numeric operands.
//
// Two API surfaces exist. The generic functions (Add, Subtract) are for
// typed callers and make unsupported operand types a compile error. The
// Calculator.Apply path accepts dynamic operands from the CLI boundary,
// where operand types are only known after parsing, and reports
// unsupported types as a TYPE_MISMATCH error.
package calc

import (
	"fmt"
	"strconv"
	"strings"

	"hellofix/internal/errors"
)

// Number constrains operands to types supporting + and -.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add returns the arithmetic sum of its two operands.
func Add[T Number](a, b T) T {
	return a + b
}

// Subtract returns a minus b.
func Subtract[T Number](a, b T) T {
	return a - b
}

// Op identifies a calculator operation.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
)

// ParseOp resolves an operation name, accepting the short form "sub".
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(s) {
	case "add":
		return OpAdd, nil
	case "subtract", "sub":
		return OpSubtract, nil
	default:
		return "", errors.New(errors.OpUnknown,
			fmt.Sprintf("unknown operation %q (expected add or subtract)", s), nil)
	}
}

// Calculator is a stateless arithmetic capability. It carries no fields
// and no invariants across calls; the zero value is ready to use and any
// number of instances behave identically.
type Calculator struct{}

// New constructs a Calculator.
func New() *Calculator {
	return &Calculator{}
}

// Apply evaluates op over dynamic operands. Supported operand types are
// int64 and float64; a mixed int64/float64 pair is promoted to float64.
// Anything else fails with a TYPE_MISMATCH error.
func (c *Calculator) Apply(op Op, a, b interface{}) (interface{}, error) {
	ai, aIsInt := a.(int64)
	bi, bIsInt := b.(int64)
	if aIsInt && bIsInt {
		switch op {
		case OpAdd:
			return Add(ai, bi), nil
		case OpSubtract:
			return Subtract(ai, bi), nil
		}
		return nil, errors.New(errors.OpUnknown, fmt.Sprintf("unknown operation %q", op), nil)
	}

	af, err := toFloat(a)
	if err != nil {
		return nil, err
	}
	bf, err := toFloat(b)
	if err != nil {
		return nil, err
	}

	switch op {
	case OpAdd:
		return Add(af, bf), nil
	case OpSubtract:
		return Subtract(af, bf), nil
	}
	return nil, errors.New(errors.OpUnknown, fmt.Sprintf("unknown operation %q", op), nil)
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, errors.New(errors.TypeMismatch,
			fmt.Sprintf("operand %v (%T) does not support arithmetic", v, v), nil)
	}
}

// ParseOperand converts a CLI argument to a numeric operand: int64 when
// the text is integral, float64 otherwise. Non-numeric text fails with a
// TYPE_MISMATCH error.
func ParseOperand(s string) (interface{}, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	return nil, errors.New(errors.TypeMismatch,
		fmt.Sprintf("operand %q is not numeric", s), nil)
}
