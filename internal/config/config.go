package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all gseq configuration.
type Config struct {
	// Output formatting defaults, overridden by command-line flags
	Format FormatConfig `yaml:"format"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// FormatConfig holds the default output settings.
type FormatConfig struct {
	Separator  string `yaml:"separator"`
	Terminator string `yaml:"terminator"`
	EqualWidth bool   `yaml:"equal_width"`
}

// MarshalYAML writes separator and terminator double-quoted. yaml.v3 would
// otherwise emit "\n" as a block scalar that loads back as "".
func (f FormatConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Separator  *yaml.Node `yaml:"separator"`
		Terminator *yaml.Node `yaml:"terminator"`
		EqualWidth bool       `yaml:"equal_width"`
	}{
		Separator:  quoted(f.Separator),
		Terminator: quoted(f.Terminator),
		EqualWidth: f.EqualWidth,
	}, nil
}

func quoted(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: s}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Format: FormatConfig{
			Separator:  "\n",
			Terminator: "\n",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if sep, ok := os.LookupEnv("GSEQ_SEPARATOR"); ok {
		c.Format.Separator = sep
	}
	if term, ok := os.LookupEnv("GSEQ_TERMINATOR"); ok {
		c.Format.Terminator = term
	}
	if level := os.Getenv("GSEQ_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if debug := os.Getenv("GSEQ_DEBUG"); debug != "" {
		if on, err := strconv.ParseBool(debug); err == nil {
			c.Logging.DebugMode = on
		}
	}
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidFormats lists the accepted log encodings.
var ValidFormats = []string{"console", "json"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if !contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging format: %s (valid: %v)", c.Logging.Format, ValidFormats)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
