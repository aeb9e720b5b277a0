// Package config loads, validates and documents the spm-outdated configuration.
//
// Configuration comes from, in order of preference, an explicit --config
// path, a .spm-outdated.yml file in the target directory, or the embedded
// defaults. Values in a file are layered over the defaults, so a file only
// needs the keys it changes.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/spmoutdated/pkg/errors"
	"github.com/ajxudir/spmoutdated/pkg/verbose"
)

// DefaultMaxConfigFileSize caps the size of configuration files (1MB).
const DefaultMaxConfigFileSize int64 = 1 << 20

// LoadConfig loads configuration from the specified path or defaults.
//
// If configPath is provided, it loads that specific config file.
// Otherwise, it looks for .spm-outdated.yml in workDir.
// If no config is found, it returns the built-in default configuration.
//
// Parameters:
//   - configPath: path to the config file, or empty to search workDir
//   - workDir: directory searched for .spm-outdated.yml
//   - logger: Diagnostic sink, nil for none
//
// Returns:
//   - *Config: the loaded and validated configuration
//   - error: *errors.ExitError with ExitConfigError when a file cannot be read,
//     or errors.ValidationErrors when it is invalid
func LoadConfig(configPath, workDir string, logger *log.Logger) (*Config, error) {
	logger = verbose.OrDiscard(logger)

	path := configPath
	if path == "" {
		local := filepath.Join(workDir, FileName)
		if _, err := os.Stat(local); err != nil {
			logger.Debug("using built-in default configuration")
			return Default(), nil
		}
		path = local
	}

	logger.Debug("loading config", "path", path)
	data, err := readConfigFile(path, DefaultMaxConfigFileSize)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to read config file: %w", err))
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
//
// Unknown keys are rejected.
//
// Parameters:
//   - data: YAML configuration data
//
// Returns:
//   - *Config: the merged configuration
//   - error: errors.ValidationErrors describing every problem found
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := decodeStrict(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readConfigFile reads path after checking its size against maxSize.
func readConfigFile(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), maxSize)
	}
	return os.ReadFile(path)
}

// decodeStrict decodes data into cfg with unknown-field checking.
// An empty document leaves cfg unchanged.
func decodeStrict(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return decodeErrors(err)
	}
	return nil
}

// Marshal renders cfg as YAML, as printed by `config --show-effective`.
func Marshal(cfg *Config) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return "", err
	}
	if err := encoder.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
