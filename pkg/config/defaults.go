package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultConfigYAML string

//go:embed template.yml
var templateConfigYAML string

// Default returns the built-in configuration.
//
// The embedded default.yml is the single source of the default values; a
// decode failure there is a build defect and panics.
//
// Returns:
//   - *Config: A fresh copy of the default configuration
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err != nil {
		panic("config: embedded default.yml is invalid: " + err.Error())
	}
	return &cfg
}

// GetDefaultConfig returns the embedded default configuration YAML.
//
// Returns:
//   - string: the default configuration as YAML
func GetDefaultConfig() string {
	return defaultConfigYAML
}

// GetTemplateConfig returns the commented starter configuration written by `config --init`.
//
// Returns:
//   - string: the template configuration as YAML
func GetTemplateConfig() string {
	return templateConfigYAML
}
