package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avikara/costflow/pkg/validation"
)

// OutputConfig controls where and how the final record set is written.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format" validate:"omitempty,oneof=csv json"`
}

// Config is the engine's runtime configuration.
type Config struct {
	Provider    string `yaml:"provider" validate:"required,oneof=memory postgres"`
	DatabaseURL string `yaml:"database_url"`
	HospitalID  string `yaml:"hospital_id"`
	DriverMap   string `yaml:"driver_map"`
	LogLevel    string `yaml:"log_level"`

	Output OutputConfig `yaml:"output"`
}

// DefaultConfig returns a config suitable for fixture-driven runs.
func DefaultConfig() *Config {
	return &Config{
		Provider: "memory",
		LogLevel: "info",
		Output:   OutputConfig{Format: "csv"},
	}
}

// LoadConfig reads a YAML config file, applying defaults for omitted fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	return validation.NewConfigValidator("Config").
		When(c.Provider == "postgres", func(cv *validation.ConfigValidator) {
			cv.Required("DatabaseURL", c.DatabaseURL)
		}).
		Validate()
}
