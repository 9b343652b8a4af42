// Package config provides configuration loading and validation for .vvresults.yaml.
package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/errors"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/schema"
)

// Config represents the complete .vvresults.yaml configuration.
type Config struct {
	Mode           string        `yaml:"mode,omitempty"`
	StderrPolicy   string        `yaml:"stderr_policy,omitempty"`
	Representative bool          `yaml:"representative,omitempty"`
	Languages      []string      `yaml:"languages,omitempty"`
	Include        []string      `yaml:"include,omitempty"`
	Exclude        []string      `yaml:"exclude,omitempty"`
	Format         string        `yaml:"format,omitempty"`
	Color          string        `yaml:"color,omitempty"`
	Export         *ExportConfig `yaml:"export,omitempty"`
}

// ExportConfig holds defaults for the export command.
type ExportConfig struct {
	Format string `yaml:"format,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// Default returns the configuration used when no file or flag sets a value.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses a .vvresults.yaml file without applying defaults.
func Load(path string) (*Config, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, errors.WithPath(err, path)
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configError("failed to parse config file", err)
	}
	return &cfg, nil
}

// LoadAndValidate reads a config file, checks it against the config schema,
// applies defaults, validates, and returns warnings for unknown fields.
func LoadAndValidate(path string) (*Config, []string, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}

	cfg, warnings, err := LoadWithWarnings(data)
	if err != nil {
		return nil, nil, errors.WithPath(err, path)
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, warnings, errors.WithPath(&errors.VVError{Kind: errors.KindValidation, Message: "invalid configuration", Cause: err}, path)
	}
	return cfg, warnings, nil
}

// LoadWithWarnings parses YAML config data, validates it against the
// embedded schema, and reports unknown fields as warnings.
func LoadWithWarnings(data []byte) (*Config, []string, error) {
	cfg, err := parse(data)
	if err != nil {
		return nil, nil, err
	}

	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, nil, configError("failed to parse config file", err)
	}
	if tree == nil {
		// An empty file is a valid, empty configuration.
		return cfg, nil, nil
	}

	if err := schema.ValidateConfigValue(tree); err != nil {
		return nil, nil, &errors.VVError{Kind: errors.KindValidation, Message: "config does not match schema", Cause: err}
	}

	return cfg, detectUnknownFields(tree), nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.NotFound("config file", path)
	}
	if err != nil {
		return nil, errors.WithPath(configError("failed to read config file", err), path)
	}
	return data, nil
}

func configError(message string, cause error) *errors.VVError {
	return &errors.VVError{Kind: errors.KindConfig, Message: message, Cause: cause}
}

// String renders the effective configuration as YAML.
func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("<unprintable config: %v>", err)
	}
	return string(data)
}
