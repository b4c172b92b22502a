// Package config loads the process-wide runtime configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LoggingSettings defines logging configuration.
type LoggingSettings struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// RuntimeConfig holds the process-wide runtime settings.
type RuntimeConfig struct {
	Runtime struct {
		ID string `yaml:"id"` // auto-generated if not provided

		// VisibilityMask restricts which devices each backend exposes,
		// e.g. "hip:0,2;cuda:1". Backends that cannot honor it report a
		// policy mismatch and enumerate unfiltered.
		VisibilityMask string `yaml:"visibility_mask"`
	} `yaml:"runtime"`

	Logging LoggingSettings `yaml:"logging"`
}

// Default returns the configuration used when no config file is provided.
func Default() *RuntimeConfig {
	cfg := &RuntimeConfig{}
	cfg.Runtime.ID = uuid.New().String()
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "text"
	return cfg
}

// LoadRuntimeConfig reads and parses a YAML config file.
func LoadRuntimeConfig(path string) (*RuntimeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg RuntimeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Runtime.ID == "" {
		cfg.Runtime.ID = uuid.New().String()
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	return &cfg, nil
}

// HasVisibilityMask reports whether the visibility mask names the given
// backend, either globally ("0,1") or with a backend prefix ("hip:0,1").
func (c *RuntimeConfig) HasVisibilityMask(backend string) bool {
	mask := strings.TrimSpace(c.Runtime.VisibilityMask)
	if mask == "" {
		return false
	}

	for _, part := range strings.Split(mask, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, _, found := strings.Cut(part, ":")
		if !found {
			// A bare device list applies to every backend.
			return true
		}
		if strings.EqualFold(strings.TrimSpace(name), backend) {
			return true
		}
	}
	return false
}

// VisibleDevices returns the device indices the mask selects for a backend,
// or nil when the mask does not constrain it.
func (c *RuntimeConfig) VisibleDevices(backend string) []int {
	mask := strings.TrimSpace(c.Runtime.VisibilityMask)
	if mask == "" {
		return nil
	}

	for _, part := range strings.Split(mask, ";") {
		part = strings.TrimSpace(part)
		name, list, found := strings.Cut(part, ":")
		if !found || !strings.EqualFold(strings.TrimSpace(name), backend) {
			continue
		}

		var devices []int
		for _, field := range strings.Split(list, ",") {
			idx, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || idx < 0 {
				continue
			}
			devices = append(devices, idx)
		}
		return devices
	}
	return nil
}
