package main

import "hellofix/internal/envelope"

// GreetResponse is the structured response of the greet command.
type GreetResponse struct {
	Meta    envelope.Meta `json:"meta" yaml:"meta"`
	Name    string        `json:"name" yaml:"name"`
	Message string        `json:"message" yaml:"message"`
}

// CalcResponse is the structured response of the calc subcommands.
type CalcResponse struct {
	Meta   envelope.Meta `json:"meta" yaml:"meta"`
	Op     string        `json:"op" yaml:"op"`
	A      interface{}   `json:"a" yaml:"a"`
	B      interface{}   `json:"b" yaml:"b"`
	Result interface{}   `json:"result" yaml:"result"`
}

// RunResponse is the structured response of the run command: the fixture
// transcript line by line.
type RunResponse struct {
	Meta  envelope.Meta `json:"meta" yaml:"meta"`
	Lines []string      `json:"lines" yaml:"lines"`
}
