package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	hferrors "hellofix/internal/errors"
)

// Config represents the complete hellofix configuration
type Config struct {
	Version int           `json:"version" mapstructure:"version"`
	Output  OutputConfig  `json:"output" mapstructure:"output"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	// Format is the default response format: human, json, or yaml
	Format string `json:"format" mapstructure:"format"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Output: OutputConfig{
			Format: "human",
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Load loads configuration from <dir>/hellofix.json, with HELLOFIX_*
// environment variables taking precedence over file values. A missing
// file yields the defaults.
func Load(dir string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("version", 1)
	v.SetDefault("output.format", "human")
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	// Configure viper
	v.SetConfigName("hellofix")
	v.SetConfigType("json")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("HELLOFIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, hferrors.New(hferrors.ConfigInvalid, "failed to read config", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, hferrors.New(hferrors.ConfigInvalid, "failed to parse config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to <dir>/hellofix.json
func (c *Config) Save(dir string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "hellofix.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return hferrors.New(hferrors.ConfigInvalid, "unsupported config version", nil).
			WithDetails(map[string]int{"version": c.Version})
	}

	switch c.Output.Format {
	case "human", "json", "yaml":
	default:
		return hferrors.New(hferrors.ConfigInvalid, "unknown output format", nil).
			WithDetails(map[string]string{"format": c.Output.Format})
	}

	return nil
}
