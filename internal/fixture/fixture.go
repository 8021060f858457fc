// Package fixture replays the canonical demonstration sequence this tool
// exists to provide: a known-simple transcript that harnesses can diff
// byte-for-byte.
package fixture

import (
	"fmt"
	"io"

	"hellofix/internal/calc"
	"hellofix/internal/greeter"
)

// GreetName is the literal name the sequence greets.
const GreetName = "World"

// Operands of the demonstration addition.
const (
	AddLeft  int64 = 1
	AddRight int64 = 2
)

// Run executes the fixed sequence against w: greet "World" (the emitted
// line is the observable outcome, the return value is discarded), then
// construct one calculator, add 1 and 2, and emit the result. Exactly two
// lines are written: "Hello, World!" and "3".
func Run(w io.Writer) error {
	g := greeter.New(w)
	_ = g.Greet(GreetName)

	c := calc.New()
	result, err := c.Apply(calc.OpAdd, AddLeft, AddRight)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, result)
	return nil
}

// Transcript runs the sequence and returns its output lines without the
// trailing newlines. Used by structured output formats, which wrap the
// transcript instead of streaming it.
func Transcript() ([]string, error) {
	var buf lineBuffer
	if err := Run(&buf); err != nil {
		return nil, err
	}
	return buf.lines, nil
}

type lineBuffer struct {
	lines   []string
	partial string
}

func (b *lineBuffer) Write(p []byte) (int, error) {
	for _, c := range p {
		if c == '\n' {
			b.lines = append(b.lines, b.partial)
			b.partial = ""
			continue
		}
		b.partial += string(c)
	}
	return len(p), nil
}
