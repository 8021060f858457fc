package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	hferrors "hellofix/internal/errors"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatHuman OutputFormat = "human"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case FormatHuman:
		return FormatHuman, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", hferrors.New(hferrors.FormatUnsupported,
			fmt.Sprintf("unsupported format %q (expected human, json, or yaml)", s), nil)
	}
}

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatYAML:
		return formatYAML(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", hferrors.New(hferrors.FormatUnsupported,
			fmt.Sprintf("unsupported format %q", format), nil)
	}
}

func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func formatYAML(resp interface{}) (string, error) {
	data, err := yaml.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *GreetResponse:
		return v.Message, nil
	case *CalcResponse:
		return formatOperand(v.Result), nil
	case *RunResponse:
		return strings.Join(v.Lines, "\n"), nil
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

// formatOperand renders a numeric result the way the fixture does: integral
// values print without a decimal point.
func formatOperand(v interface{}) string {
	return fmt.Sprintf("%v", v)
}
