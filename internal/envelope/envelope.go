// Package envelope provides a standardized metadata wrapper for structured
// CLI responses. Every json/yaml response carries the same envelope so
// harnesses can assert on tool identity and trace individual runs.
package envelope

import (
	"time"

	"github.com/google/uuid"

	"hellofix/internal/version"
)

// Meta holds response metadata.
type Meta struct {
	Tool        string `json:"tool" yaml:"tool"`
	Version     string `json:"version" yaml:"version"`
	RunID       string `json:"runId" yaml:"runId"`
	GeneratedAt string `json:"generatedAt" yaml:"generatedAt"`
	DurationMs  int64  `json:"durationMs" yaml:"durationMs"`
}

// New creates a Meta for the current run with a fresh run ID.
func New() Meta {
	return Meta{
		Tool:        "hellofix",
		Version:     version.Version,
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// WithDuration returns a copy of m recording the elapsed time since start.
func (m Meta) WithDuration(start time.Time) Meta {
	m.DurationMs = time.Since(start).Milliseconds()
	return m
}
