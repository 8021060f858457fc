// Package greeter formats and emits greeting messages.
package greeter

import (
	"fmt"
	"io"
	"os"
)

// Greeter writes greetings to a single output channel.
type Greeter struct {
	w io.Writer
}

// New creates a Greeter writing to w. A nil writer means stdout.
func New(w io.Writer) *Greeter {
	if w == nil {
		w = os.Stdout
	}
	return &Greeter{w: w}
}

// Greet emits "Hello, <name>!" as one line and returns the message.
// The returned value is textually identical to what was emitted,
// without the trailing newline. It cannot fail: any text value is a
// valid name, including the empty string.
func (g *Greeter) Greet(name string) string {
	message := fmt.Sprintf("Hello, %s!", name)
	_, _ = fmt.Fprintln(g.w, message)
	return message
}
