package main

import (
	"os"

	"hellofix/internal/config"
	"hellofix/internal/logging"
)

func main() {
	logger := logging.NewLogger(loggerConfig(loadConfigOrDefault(".")))

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}

// loadConfigOrDefault loads the configuration, falling back to defaults
// on error. Startup must not die before the command itself can report a
// usable error about the broken config.
func loadConfigOrDefault(dir string) *config.Config {
	cfg, err := config.Load(dir)
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// loggerConfig maps the logging section of the configuration onto the
// logger. HELLOFIX_LOGGING_LEVEL and HELLOFIX_LOGGING_FORMAT override the
// file values through the config loader's env binding.
func loggerConfig(cfg *config.Config) logging.Config {
	return logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.ParseLevel(cfg.Logging.Level),
	}
}
