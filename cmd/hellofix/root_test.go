package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	hferrors "hellofix/internal/errors"
	"hellofix/internal/logging"
)

// captureStdout swaps os.Stdout for a pipe while fn runs. Command RunE
// functions resolve os.Stdout at call time, so the swap is visible to them.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	runErr := fn()

	_ = w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured stdout: %v", err)
	}
	return string(data), runErr
}

func writeConfigFile(t *testing.T, dir, format string) {
	t.Helper()
	content := `{"version": 1, "output": {"format": "` + format + `"}}`
	if err := os.WriteFile(filepath.Join(dir, "hellofix.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveFormatPrecedence(t *testing.T) {
	t.Run("flag beats env", func(t *testing.T) {
		t.Setenv("HELLOFIX_FORMAT", "yaml")

		got, err := resolveFormat("json")
		if err != nil {
			t.Fatalf("resolveFormat: %v", err)
		}
		if got != FormatJSON {
			t.Errorf("format = %q, want %q", got, FormatJSON)
		}
	})

	t.Run("env beats config file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfigFile(t, dir, "yaml")
		t.Chdir(dir)
		t.Setenv("HELLOFIX_FORMAT", "json")

		got, err := resolveFormat("")
		if err != nil {
			t.Fatalf("resolveFormat: %v", err)
		}
		if got != FormatJSON {
			t.Errorf("format = %q, want %q", got, FormatJSON)
		}
	})

	t.Run("config file beats default", func(t *testing.T) {
		dir := t.TempDir()
		writeConfigFile(t, dir, "yaml")
		t.Chdir(dir)
		t.Setenv("HELLOFIX_FORMAT", "")

		got, err := resolveFormat("")
		if err != nil {
			t.Fatalf("resolveFormat: %v", err)
		}
		if got != FormatYAML {
			t.Errorf("format = %q, want %q", got, FormatYAML)
		}
	})

	t.Run("defaults to human", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HELLOFIX_FORMAT", "")

		got, err := resolveFormat("")
		if err != nil {
			t.Fatalf("resolveFormat: %v", err)
		}
		if got != FormatHuman {
			t.Errorf("format = %q, want %q", got, FormatHuman)
		}
	})

	t.Run("rejects unknown flag value", func(t *testing.T) {
		_, err := resolveFormat("xml")
		if err == nil {
			t.Fatal("resolveFormat should reject unknown formats")
		}
		if code := hferrors.CodeOf(err); code != hferrors.FormatUnsupported {
			t.Errorf("error code = %q, want %q", code, hferrors.FormatUnsupported)
		}
	})
}

func TestRootCommandRunsFixtureSequence(t *testing.T) {
	out, err := captureStdout(t, func() error {
		rootCmd.SetArgs([]string{})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := "Hello, World!\n3\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestGreetCommandDefaultsToWorld(t *testing.T) {
	t.Setenv("HELLOFIX_FORMAT", "human")

	out, err := captureStdout(t, func() error {
		rootCmd.SetArgs([]string{"greet"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if out != "Hello, World!\n" {
		t.Errorf("output = %q, want %q", out, "Hello, World!\n")
	}
}

func TestCalcCommandAdd(t *testing.T) {
	t.Setenv("HELLOFIX_FORMAT", "human")

	out, err := captureStdout(t, func() error {
		rootCmd.SetArgs([]string{"calc", "add", "1", "2"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if out != "3\n" {
		t.Errorf("output = %q, want %q", out, "3\n")
	}
}

func TestCalcCommandSubAlias(t *testing.T) {
	t.Setenv("HELLOFIX_FORMAT", "human")

	out, err := captureStdout(t, func() error {
		rootCmd.SetArgs([]string{"calc", "sub", "5", "3"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if out != "2\n" {
		t.Errorf("output = %q, want %q", out, "2\n")
	}
}

func TestCalcCommandRejectsNonNumericOperand(t *testing.T) {
	t.Setenv("HELLOFIX_FORMAT", "human")

	rootCmd.SetArgs([]string{"calc", "add", "one", "2"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("Execute should fail for a non-numeric operand")
	}
	if code := hferrors.CodeOf(err); code != hferrors.TypeMismatch {
		t.Errorf("error code = %q, want %q", code, hferrors.TypeMismatch)
	}
}

func TestLoggerConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `{"version": 1, "logging": {"format": "json", "level": "debug"}}`
	if err := os.WriteFile(filepath.Join(dir, "hellofix.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got := loggerConfig(loadConfigOrDefault(dir))

	if got.Format != logging.JSONFormat {
		t.Errorf("Format = %q, want %q", got.Format, logging.JSONFormat)
	}
	if got.Level != logging.DebugLevel {
		t.Errorf("Level = %q, want %q", got.Level, logging.DebugLevel)
	}
}

func TestLoggerConfigEnvOverride(t *testing.T) {
	t.Setenv("HELLOFIX_LOGGING_LEVEL", "error")

	got := loggerConfig(loadConfigOrDefault(t.TempDir()))

	if got.Level != logging.ErrorLevel {
		t.Errorf("Level = %q, want %q", got.Level, logging.ErrorLevel)
	}
}

func TestLoadConfigOrDefaultBadConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hellofix.json"), []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := loadConfigOrDefault(dir)

	if cfg.Logging.Level != "info" {
		t.Errorf("broken config should fall back to defaults, got level %q", cfg.Logging.Level)
	}
}
