package greeter

import (
	"bytes"
	"strings"
	"testing"
)

func TestGreet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"world", "World", "Hello, World!"},
		{"empty name", "", "Hello, !"},
		{"whitespace name", "  ", "Hello,   !"},
		{"unicode name", "wörld 世界", "Hello, wörld 世界!"},
		{"name with punctuation", "O'Brien, Jr.", "Hello, O'Brien, Jr.!"},
		{"name containing template chars", "{name}", "Hello, {name}!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			g := New(buf)

			got := g.Greet(tt.input)

			if got != tt.want {
				t.Errorf("Greet(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if buf.String() != tt.want+"\n" {
				t.Errorf("emitted %q, want %q", buf.String(), tt.want+"\n")
			}
		})
	}
}

func TestGreetReturnMatchesEmission(t *testing.T) {
	buf := &bytes.Buffer{}
	g := New(buf)

	got := g.Greet("harness")

	emitted := strings.TrimSuffix(buf.String(), "\n")
	if got != emitted {
		t.Errorf("return value %q differs from emitted line %q", got, emitted)
	}
}

func TestNewNilWriterDefaultsToStdout(t *testing.T) {
	g := New(nil)
	if g.w == nil {
		t.Error("New(nil) should fall back to a usable writer")
	}
}
